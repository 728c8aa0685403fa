package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is the payment *record* for an order. Gateway settlement is owned
// externally; this core only creates the pending record at checkout and flips
// it at cash-on-delivery settlement or refund.
type Payment struct {
	gorm.Model
	Reference string          `gorm:"size:40;uniqueIndex" json:"reference"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Method    PaymentMethod   `gorm:"size:20" json:"method"`
	State     PaymentState    `gorm:"size:20;index" json:"state"`
	PaidAt    *time.Time      `json:"paidAt,omitempty"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"` // preload only for payment detail
}
