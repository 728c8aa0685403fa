package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string          `gorm:"size:200" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Available   bool            `gorm:"default:true" json:"available"`

	// TrackStock=false means the product is always reservable.
	TrackStock bool `json:"trackStock"`
	Stock      int  `json:"stock"`
	TimesSold  int  `json:"timesSold"`

	ProviderID uint     `json:"providerId"`
	Provider   Provider `json:"-"`
}
