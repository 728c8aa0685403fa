package configs

import (
	"github.com/BETACRD01/delibery-sub000/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source+"?_busy_timeout=5000"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	MigrateAll(db)
}

// MigrateAll is shared with tests, which run against their own in-memory DB.
func MigrateAll(d *gorm.DB) error {
	return d.AutoMigrate(
		&entity.User{},
		&entity.Provider{}, &entity.Product{},
		&entity.Courier{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderHistory{}, &entity.OrderCounter{},
		&entity.Payment{},
		&entity.CommissionRule{},
		&entity.ChatRoom{}, &entity.Message{},
		&entity.RatingRequest{},
	)
}
