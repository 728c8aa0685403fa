package services

import (
	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/BETACRD01/delibery-sub000/repository"
	"gorm.io/gorm"
)

// InventoryService owns stock reservations. Reserve and Release run inside
// the caller's transaction so a failed checkout rolls every prior decrement
// back with the rest of the unit of work.
type InventoryService struct {
	Products *repository.ProductRepository
}

func NewInventoryService(products *repository.ProductRepository) *InventoryService {
	return &InventoryService{Products: products}
}

// Reserve decrements stock for a stock-tracked product, conditionally and in
// one statement: there is no window where two callers can both pass a stock
// check and oversell. Products that do not track stock are always
// reservable; only their sales counter moves.
func (s *InventoryService) Reserve(tx *gorm.DB, p *entity.Product, qty int) error {
	if !p.TrackStock {
		return s.Products.BumpSold(tx, p.ID, qty)
	}

	affected, err := s.Products.DecrementStockGuard(tx, p.ID, qty)
	if err != nil {
		return err
	}
	if affected == 0 {
		var row struct{ Stock int }
		if err := tx.Model(&entity.Product{}).Select("stock").
			Where("id = ?", p.ID).First(&row).Error; err != nil {
			row.Stock = 0
		}
		return &InsufficientStockError{
			ProductID:   p.ID,
			ProductName: p.Name,
			Requested:   qty,
			Available:   row.Stock,
		}
	}
	return nil
}

// Release returns previously reserved units, e.g. on cancellation restock.
func (s *InventoryService) Release(tx *gorm.DB, productID uint, qty int) error {
	return s.Products.IncrementStock(tx, productID, qty)
}
