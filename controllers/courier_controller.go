package controllers

import (
	"strconv"

	"github.com/BETACRD01/delibery-sub000/pkg/resp"
	"github.com/BETACRD01/delibery-sub000/services"
	"github.com/BETACRD01/delibery-sub000/utils"
	"github.com/gin-gonic/gin"
)

type CourierController struct {
	Orders  *services.OrderService
	Courier *services.CourierService
}

func NewCourierController(orders *services.OrderService, courier *services.CourierService) *CourierController {
	return &CourierController{Orders: orders, Courier: courier}
}

// GET /courier/orders/available
func (cc *CourierController) AvailableOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := cc.Orders.ListAwaitingCourier(limit)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /courier/orders/:id/accept
func (cc *CourierController) Accept(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := cc.Orders.AcceptByCourier(utils.CurrentUserID(c), uint(id)); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"accepted": true})
}

// POST /courier/orders/:id/pickup
func (cc *CourierController) Pickup(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := cc.Orders.MarkInTransit(utils.CurrentUserID(c), uint(id)); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"inTransit": true})
}

// POST /courier/orders/:id/deliver
func (cc *CourierController) Deliver(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := cc.Orders.MarkDelivered(utils.CurrentUserID(c), uint(id)); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"delivered": true})
}

type AvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// PATCH /courier/availability
func (cc *CourierController) SetAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Courier.SetAvailability(utils.CurrentUserID(c), *req.Available); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"available": *req.Available})
}

// GET /courier/status
func (cc *CourierController) Status(c *gin.Context) {
	st, err := cc.Courier.GetStatus(utils.CurrentUserID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, st)
}

// GET /courier/work
func (cc *CourierController) CurrentWork(c *gin.Context) {
	o, err := cc.Courier.CurrentWork(utils.CurrentUserID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"order": o})
}

// PUT /courier/profile
func (cc *CourierController) UpsertProfile(c *gin.Context) {
	var req services.UpsertCourierProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Courier.UpsertProfile(utils.CurrentUserID(c), &req); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"saved": true})
}
