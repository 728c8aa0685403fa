package controllers

import (
	"strconv"

	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/BETACRD01/delibery-sub000/pkg/resp"
	"github.com/BETACRD01/delibery-sub000/services"
	"github.com/BETACRD01/delibery-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProviderController struct {
	Orders  *services.OrderService
	Catalog *services.CatalogService
}

func NewProviderController(orders *services.OrderService, catalog *services.CatalogService) *ProviderController {
	return &ProviderController{Orders: orders, Catalog: catalog}
}

// GET /provider/orders?providerId=&state=&page=&limit=
func (pc *ProviderController) ListOrders(c *gin.Context) {
	providerID, _ := strconv.Atoi(c.Query("providerId"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var state *entity.OrderState
	if s := c.Query("state"); s != "" {
		st := entity.OrderState(s)
		state = &st
	}

	out, err := pc.Orders.ListForProvider(utils.CurrentUserID(c), uint(providerID), state, page, limit)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /provider/orders/:id/confirm
func (pc *ProviderController) ConfirmOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := pc.Orders.ConfirmByProvider(utils.CurrentUserID(c), uint(id)); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"confirmed": true})
}

// GET /provider/products
func (pc *ProviderController) ListProducts(c *gin.Context) {
	items, err := pc.Catalog.ListMine(utils.CurrentUserID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /provider/products
func (pc *ProviderController) CreateProduct(c *gin.Context) {
	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := pc.Catalog.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, p)
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"imageUrl"`
	Available   *bool            `json:"available"`
	TrackStock  *bool            `json:"trackStock"`
	Stock       *int             `json:"stock"`
}

// PATCH /provider/products/:id
func (pc *ProviderController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if req.TrackStock != nil {
		updates["track_stock"] = *req.TrackStock
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := pc.Catalog.Update(utils.CurrentUserID(c), uint(id), updates); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}
