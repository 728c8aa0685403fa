package repository

import (
	"errors"

	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart; an empty in-memory cart when none
// exists yet, so callers never see a not-found for a merely empty cart.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// UpsertItem merges into an existing line for the same product+note, else
// inserts a new one.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ? AND note = ?", cartID, row.ProductID, row.Note).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		exist.Subtotal = exist.UnitPrice.Mul(decimal.NewFromInt(int64(exist.Qty)))
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, userID, itemID)
	}
	// item must belong to the user's cart
	return tx.Exec(`
		UPDATE cart_items
		   SET qty = ?, subtotal = unit_price * ?
		 WHERE id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)
	`, qty, qty, itemID, userID).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	return tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
