package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"size:200;uniqueIndex" json:"email"`
	Password  string `json:"-"`
	FirstName string `gorm:"size:100" json:"firstName"`
	LastName  string `gorm:"size:100" json:"lastName"`
	Phone     string `gorm:"size:30" json:"phone"`
	// client | provider | courier | admin
	Role string `gorm:"size:20" json:"role"`

	Orders []Order `gorm:"foreignKey:ClientID" json:"-"`
}
