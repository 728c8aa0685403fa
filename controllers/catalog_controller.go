package controllers

import (
	"strconv"

	"github.com/BETACRD01/delibery-sub000/pkg/resp"
	"github.com/BETACRD01/delibery-sub000/services"
	"github.com/gin-gonic/gin"
)

// CatalogController is the public browse surface.
type CatalogController struct{ Svc *services.CatalogService }

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: svc}
}

// GET /products?q=&limit=
func (cc *CatalogController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := cc.Svc.Browse(c.Query("q"), limit)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /products/:id
func (cc *CatalogController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := cc.Svc.Get(uint(id))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, p)
}
