package entity

import (
	"gorm.io/gorm"
)

type Courier struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	VehiclePlate string `gorm:"size:20" json:"vehiclePlate"`
	Zone         string `gorm:"size:100" json:"zone"`

	// Available=false while offline or carrying an active order.
	Available  bool `gorm:"default:false" json:"available"`
	Deliveries int  `json:"deliveries"`

	Orders []Order `json:"-"`
}
