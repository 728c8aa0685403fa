package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	Qty int `json:"qty"`
	// snapshot of the product price when the line was added
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"unitPrice"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	Note      string          `json:"note"`
}
