package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// Format: DL-2025-000123. Assigned once at creation, never rewritten.
	OrderNumber string `gorm:"size:20;uniqueIndex" json:"orderNumber"`

	Kind  OrderKind  `gorm:"size:30" json:"kind"`
	State OrderState `gorm:"size:30;index" json:"state"`

	ClientID uint `json:"clientId"`
	Client   User `json:"-"` // preload only for detail endpoints

	// nil for multi-provider carts; per-item providers live on the products
	ProviderID *uint     `json:"providerId,omitempty"`
	Provider   *Provider `json:"-"`

	// nil until a courier accepts
	CourierID *uint    `json:"courierId,omitempty"`
	Courier   *Courier `json:"-"`

	Description     string   `json:"description"`
	DeliveryAddress string   `json:"deliveryAddress"`
	DeliveryLat     *float64 `json:"deliveryLat,omitempty"`
	DeliveryLng     *float64 `json:"deliveryLng,omitempty"`
	DeliveryNotes   string   `json:"deliveryNotes"`

	// Money snapshot taken at creation: Total = Subtotal + ShippingFee + ServiceFee
	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	ShippingFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"shippingFee"`
	ServiceFee  decimal.Decimal `gorm:"type:decimal(10,2)" json:"serviceFee"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	PaymentMethod PaymentMethod `gorm:"size:20" json:"paymentMethod"`
	PaymentState  PaymentState  `gorm:"size:20;index" json:"paymentState"`

	// Settlement figures. nil until delivered, then write-once.
	CourierCommission  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"courierCommission,omitempty"`
	ProviderCommission *decimal.Decimal `gorm:"type:decimal(10,2)" json:"providerCommission,omitempty"`
	PlatformProfit     *decimal.Decimal `gorm:"type:decimal(10,2)" json:"platformProfit,omitempty"`

	CourierAccepted bool `json:"courierAccepted"`

	DeliveredAt  *time.Time `json:"deliveredAt,omitempty"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`
	CancelReason string     `json:"cancelReason,omitempty"`
	CancelledBy  string     `json:"cancelledBy,omitempty"`

	Items    []OrderItem    `json:"items,omitempty"`
	Payments []Payment      `json:"-"`
	History  []OrderHistory `json:"-"`

	ChatRoom *ChatRoom `gorm:"foreignKey:OrderID;references:ID" json:"-"`
}

// Terminal reports whether the order reached a final state. Terminal orders
// accept no further transitions and no further stock changes.
func (o *Order) Terminal() bool {
	return o.State == StateDelivered || o.State == StateCancelled
}
