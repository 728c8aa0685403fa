package services

import (
	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/BETACRD01/delibery-sub000/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr}
}

type AddToCartIn struct {
	ProductID uint   `json:"productId" binding:"required"`
	Qty       int    `json:"qty" binding:"min=1"`
	Note      string `json:"note"`
}

func (s *CartService) Get(userID uint) (*entity.Cart, decimal.Decimal, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	subtotal := decimal.Zero
	for _, it := range c.Items {
		subtotal = subtotal.Add(it.Subtotal)
	}
	return c, subtotal, nil
}

// Add puts a product line in the cart, snapshotting its current price. Lines
// from different providers coexist; checkout decides what that means for
// fees.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	p, err := s.ProductRepo.GetBasics(in.ProductID)
	if err != nil {
		return err
	}
	if !p.Available {
		return ErrProductUnavailable
	}

	line := &entity.CartItem{
		ProductID: p.ID,
		Qty:       in.Qty,
		UnitPrice: p.Price,
		Subtotal:  p.Price.Mul(decimal.NewFromInt(int64(in.Qty))),
		Note:      in.Note,
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
