package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Qty int `json:"qty"`
	// price snapshot at add-to-cart time, immutable afterwards
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"unitPrice"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	Note      string          `json:"note"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"` // preload only for order detail

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"` // preload when the product name is needed
}
