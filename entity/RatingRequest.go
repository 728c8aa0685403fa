package entity

import (
	"gorm.io/gorm"
)

// RatingRequest is written when an order is delivered so the rating flow can
// prompt the client. Aggregating ratings is out of this backend's hands.
type RatingRequest struct {
	gorm.Model
	OrderID  uint `gorm:"uniqueIndex" json:"orderId"`
	ClientID uint `json:"clientId"`
}
