package controllers

import (
	"strconv"

	"github.com/BETACRD01/delibery-sub000/pkg/resp"
	"github.com/BETACRD01/delibery-sub000/services"
	"github.com/BETACRD01/delibery-sub000/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(svc *services.CartService) *CartController { return &CartController{Svc: svc} }

// GET /cart
func (cc *CartController) Get(c *gin.Context) {
	cart, subtotal, err := cc.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /cart/items
func (cc *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Svc.Add(utils.CurrentUserID(c), &req); err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, gin.H{"added": true})
}

type UpdateQtyRequest struct {
	Qty int `json:"qty"`
}

// PATCH /cart/items/:id
func (cc *CartController) UpdateQty(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Svc.UpdateQty(utils.CurrentUserID(c), uint(id), req.Qty); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /cart/items/:id
func (cc *CartController) Remove(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := cc.Svc.RemoveItem(utils.CurrentUserID(c), uint(id)); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (cc *CartController) Clear(c *gin.Context) {
	if err := cc.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
