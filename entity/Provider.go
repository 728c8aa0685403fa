package entity

import (
	"gorm.io/gorm"
)

type Provider struct {
	gorm.Model
	Name    string `gorm:"size:200" json:"name"`
	Address string `json:"address"`
	Phone   string `gorm:"size:30" json:"phone"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	Active  bool   `gorm:"default:true" json:"active"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	Products []Product `json:"-"`
	Orders   []Order   `json:"-"`
}
