package controllers

import (
	"strconv"

	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/BETACRD01/delibery-sub000/pkg/resp"
	"github.com/BETACRD01/delibery-sub000/repository"
	"github.com/BETACRD01/delibery-sub000/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AdminController struct {
	DB     *gorm.DB
	Orders *services.OrderService
	Rules  *repository.CommissionRuleRepository
}

func NewAdminController(db *gorm.DB, orders *services.OrderService, rules *repository.CommissionRuleRepository) *AdminController {
	return &AdminController{DB: db, Orders: orders, Rules: rules}
}

// GET /admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	var orders, delivered, cancelled, users int64
	if err := ac.DB.Model(&entity.Order{}).Count(&orders).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	ac.DB.Model(&entity.Order{}).Where("state = ?", entity.StateDelivered).Count(&delivered)
	ac.DB.Model(&entity.Order{}).Where("state = ?", entity.StateCancelled).Count(&cancelled)
	ac.DB.Model(&entity.User{}).Count(&users)

	var profit struct{ Total decimal.Decimal }
	ac.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(platform_profit), 0) AS total").
		Where("state = ?", entity.StateDelivered).
		Scan(&profit)

	resp.OK(c, gin.H{
		"orders": orders, "delivered": delivered, "cancelled": cancelled,
		"users": users, "platformProfit": profit.Total,
	})
}

// GET /admin/orders/:id
func (ac *AdminController) OrderDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	detail, err := ac.Orders.Detail(uint(id))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, detail)
}

// POST /admin/orders/:id/cancel
func (ac *AdminController) CancelOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ac.Orders.Cancel(uint(id), req.Reason, "admin"); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}

// GET /admin/commission-rules
func (ac *AdminController) CommissionRules(c *gin.Context) {
	var rules []entity.CommissionRule
	if err := ac.DB.Order("subject, subject_id").Find(&rules).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rules})
}

type UpsertRuleRequest struct {
	Subject   string           `json:"subject" binding:"required,oneof=provider courier"`
	SubjectID *uint            `json:"subjectId"`
	Percent   *decimal.Decimal `json:"percent"`
	Flat      *decimal.Decimal `json:"flat"`
}

// PUT /admin/commission-rules
func (ac *AdminController) UpsertCommissionRule(c *gin.Context) {
	var req UpsertRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Percent == nil && req.Flat == nil {
		resp.BadRequest(c, "percent or flat is required")
		return
	}
	rule := &entity.CommissionRule{
		Subject:   req.Subject,
		SubjectID: req.SubjectID,
		Percent:   req.Percent,
		Flat:      req.Flat,
	}
	if err := ac.Rules.Upsert(rule); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rule)
}

type CreateProviderRequest struct {
	Name    string   `json:"name" binding:"required"`
	Address string   `json:"address"`
	Phone   string   `json:"phone"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	UserID  uint     `json:"userId" binding:"required"`
}

// POST /admin/providers — providers are onboarded by an admin, the linked
// user gets the provider role.
func (ac *AdminController) CreateProvider(c *gin.Context) {
	var req CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p := entity.Provider{
		Name: req.Name, Address: req.Address, Phone: req.Phone,
		Lat: req.Lat, Lng: req.Lng, Active: true, UserID: req.UserID,
	}
	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		return tx.Model(&entity.User{}).Where("id = ?", req.UserID).
			Update("role", "provider").Error
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, p)
}
