package controllers

import (
	"strconv"

	"github.com/BETACRD01/delibery-sub000/pkg/resp"
	"github.com/BETACRD01/delibery-sub000/services"
	"github.com/BETACRD01/delibery-sub000/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders/checkout
func (oc *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := oc.Svc.CheckoutFromCart(utils.CurrentUserID(c), &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, out)
}

// POST /orders/direct
func (oc *OrderController) CreateDirect(c *gin.Context) {
	var req services.DirectOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := oc.Svc.CreateDirect(utils.CurrentUserID(c), &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := oc.Svc.ListForClient(utils.CurrentUserID(c), limit)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	detail, err := oc.Svc.DetailForClient(utils.CurrentUserID(c), uint(id))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, detail)
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// POST /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Svc.CancelByClient(utils.CurrentUserID(c), uint(id), req.Reason); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}
