package controllers

import (
	"strconv"

	"github.com/BETACRD01/delibery-sub000/pkg/resp"
	"github.com/BETACRD01/delibery-sub000/repository"
	"github.com/BETACRD01/delibery-sub000/utils"
	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Payments *repository.PaymentRepository
	Orders   *repository.OrderRepository
}

func NewPaymentController(pr *repository.PaymentRepository, or *repository.OrderRepository) *PaymentController {
	return &PaymentController{Payments: pr, Orders: or}
}

// GET /orders/:id/payment (order owner only)
func (pc *PaymentController) ForOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := pc.Orders.GetOrderForClient(utils.CurrentUserID(c), uint(id)); err != nil {
		writeErr(c, err)
		return
	}
	p, err := pc.Payments.GetByOrder(uint(id))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, p)
}
