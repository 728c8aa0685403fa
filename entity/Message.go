package entity

import (
	"gorm.io/gorm"
)

type Message struct {
	gorm.Model
	Body string `json:"body"`
	// text | system
	Kind string `gorm:"size:20;default:text" json:"kind"`

	RoomID uint     `gorm:"index" json:"roomId"`
	Room   ChatRoom `gorm:"foreignKey:RoomID" json:"-"`

	SenderID uint `json:"senderId"`
	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
}
