package entity

import (
	"gorm.io/gorm"
)

// OrderHistory is the audit trail of state changes, appended in the same
// transaction as the transition it records.
type OrderHistory struct {
	gorm.Model
	OrderID   uint       `gorm:"index" json:"orderId"`
	FromState OrderState `gorm:"size:30" json:"fromState"`
	ToState   OrderState `gorm:"size:30" json:"toState"`
	Actor     string     `gorm:"size:100" json:"actor"`
	Note      string     `json:"note"`
}
