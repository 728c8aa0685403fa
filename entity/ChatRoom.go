package entity

import (
	"gorm.io/gorm"
)

// ChatRoom is provisioned exactly once per order when a courier accepts.
// The unique index on OrderID is the dedup guard.
type ChatRoom struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex" json:"orderId"`
	Order   Order `json:"-"`

	Messages []Message `gorm:"foreignKey:RoomID" json:"-"`
}
