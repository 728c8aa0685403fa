package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// RestockPolicy controls what happens to reserved stock when an order is
// cancelled. Cancellation after a courier already left with the goods is a
// business judgment call, so it is configuration, not code.
type RestockPolicy string

const (
	RestockAlways        RestockPolicy = "always"
	RestockBeforeTransit RestockPolicy = "before_transit"
	RestockNever         RestockPolicy = "never"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// order numbers look like DL-2025-000123
	OrderPrefix string

	// settlement defaults; per-provider/per-courier rules in the DB override these
	ProviderCommissionRate decimal.Decimal // share of the order subtotal
	CourierShippingRate    decimal.Decimal // share of the shipping fee
	MinPlatformProfit      decimal.Decimal

	// service fee charged on multi-provider carts
	ServiceFeeTwoProviders  decimal.Decimal
	ServiceFeeManyProviders decimal.Decimal

	RestockOnCancel RestockPolicy
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "delibery.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(24) * time.Hour,

		OrderPrefix: getEnv("ORDER_PREFIX", "DL"),

		ProviderCommissionRate: getEnvDecimal("PROVIDER_COMMISSION_RATE", "0.15"),
		CourierShippingRate:    getEnvDecimal("COURIER_SHIPPING_RATE", "1.00"),
		MinPlatformProfit:      getEnvDecimal("MIN_PLATFORM_PROFIT", "0.00"),

		ServiceFeeTwoProviders:  getEnvDecimal("SERVICE_FEE_TWO_PROVIDERS", "0.25"),
		ServiceFeeManyProviders: getEnvDecimal("SERVICE_FEE_MANY_PROVIDERS", "0.50"),

		RestockOnCancel: RestockPolicy(getEnv("RESTOCK_ON_CANCEL", string(RestockAlways))),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvDecimal(key, fallback string) decimal.Decimal {
	raw := getEnv(key, fallback)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatalf("invalid decimal for %s: %q", key, raw)
	}
	return d
}

func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
