package configs

import (
	"log"

	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedCommissionRules inserts the default policy rows when none exist yet.
// Runtime overrides (per provider, per courier) are managed through the
// admin surface, not here.
func SeedCommissionRules(cfg *Config) error {
	db := DB()

	var count int64
	db.Model(&entity.CommissionRule{}).Count(&count)
	if count > 0 {
		return nil
	}

	providerRate := cfg.ProviderCommissionRate
	courierRate := cfg.CourierShippingRate
	rules := []entity.CommissionRule{
		{Subject: entity.CommissionSubjectProvider, Percent: &providerRate},
		{Subject: entity.CommissionSubjectCourier, Percent: &courierRate},
	}
	for i := range rules {
		if err := db.Create(&rules[i]).Error; err != nil {
			return err
		}
	}
	log.Println("default commission rules seeded")
	return nil
}

// SeedDemo loads a small demo catalog for local development.
func SeedDemo() error {
	db := DB()
	if getEnv("SEED_DEMO", "") == "" {
		return nil
	}

	var count int64
	db.Model(&entity.Provider{}).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	owner := entity.User{Email: "demo-provider@delibery.local", Password: string(hash),
		FirstName: "Demo", LastName: "Provider", Role: "provider"}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	prov := entity.Provider{Name: "Tienda Demo", Address: "Av. Principal 123", UserID: owner.ID, Active: true}
	if err := db.Create(&prov).Error; err != nil {
		return err
	}

	products := []entity.Product{
		{Name: "Almuerzo del día", Price: decimal.RequireFromString("3.50"), ProviderID: prov.ID, Available: true},
		{Name: "Agua 600ml", Price: decimal.RequireFromString("0.75"), ProviderID: prov.ID, Available: true, TrackStock: true, Stock: 48},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}
	log.Println("demo catalog seeded")
	return nil
}
