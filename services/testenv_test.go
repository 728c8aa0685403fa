package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/BETACRD01/delibery-sub000/configs"
	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/BETACRD01/delibery-sub000/events"
	"github.com/BETACRD01/delibery-sub000/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	DB         *gorm.DB
	Cfg        *configs.Config
	Orders     *OrderService
	Carts      *CartService
	Inventory  *InventoryService
	Numbers    *OrderNumberService
	Settlement *SettlementService
	Dispatcher *events.Dispatcher

	OrderRepo   *repository.OrderRepository
	ProductRepo *repository.ProductRepository
	CartRepo    *repository.CartRepository
	PaymentRepo *repository.PaymentRepository
	CourierRepo *repository.CourierRepository
	RuleRepo    *repository.CommissionRuleRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, configs.MigrateAll(db))

	cfg := &configs.Config{
		JWTSecret:               "test-secret",
		JWTTTL:                  time.Hour,
		OrderPrefix:             "DL",
		ProviderCommissionRate:  dec("0.15"),
		CourierShippingRate:     dec("1.00"),
		MinPlatformProfit:       dec("0.00"),
		ServiceFeeTwoProviders:  dec("0.25"),
		ServiceFeeManyProviders: dec("0.50"),
		RestockOnCancel:         configs.RestockAlways,
	}

	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	ruleRepo := repository.NewCommissionRuleRepository(db)
	courierRepo := repository.NewCourierRepository(db)
	providerRepo := repository.NewProviderRepository(db)

	dispatcher := events.NewDispatcher()
	inventory := NewInventoryService(productRepo)
	numbers := NewOrderNumberService(counterRepo, cfg.OrderPrefix)
	settlement := NewSettlementService(ruleRepo, cfg)
	orders := NewOrderService(db, cfg,
		orderRepo, cartRepo, providerRepo, courierRepo, paymentRepo,
		inventory, numbers, settlement, dispatcher)
	carts := NewCartService(db, cartRepo, productRepo)

	return &testEnv{
		DB: db, Cfg: cfg,
		Orders: orders, Carts: carts,
		Inventory: inventory, Numbers: numbers, Settlement: settlement,
		Dispatcher:  dispatcher,
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		CartRepo:    cartRepo,
		PaymentRepo: paymentRepo,
		CourierRepo: courierRepo,
		RuleRepo:    ruleRepo,
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func (e *testEnv) createUser(t *testing.T, role string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:    fmt.Sprintf("%s-%d@test.local", role, time.Now().UnixNano()),
		Password: "x",
		Role:     role,
	}
	require.NoError(t, e.DB.Create(u).Error)
	return u
}

func (e *testEnv) createProvider(t *testing.T) *entity.Provider {
	t.Helper()
	owner := e.createUser(t, "provider")
	p := &entity.Provider{Name: "Provider", Active: true, UserID: owner.ID}
	require.NoError(t, e.DB.Create(p).Error)
	return p
}

func (e *testEnv) createCourier(t *testing.T) *entity.Courier {
	t.Helper()
	u := e.createUser(t, "courier")
	c := &entity.Courier{UserID: u.ID, Available: true}
	require.NoError(t, e.DB.Create(c).Error)
	return c
}

func (e *testEnv) createProduct(t *testing.T, providerID uint, price string, trackStock bool, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:       fmt.Sprintf("product-%d", time.Now().UnixNano()),
		Price:      dec(price),
		Available:  true,
		TrackStock: trackStock,
		Stock:      stock,
		ProviderID: providerID,
	}
	require.NoError(t, e.DB.Create(p).Error)
	return p
}

func (e *testEnv) addToCart(t *testing.T, userID uint, p *entity.Product, qty int) {
	t.Helper()
	require.NoError(t, e.Carts.Add(userID, &AddToCartIn{ProductID: p.ID, Qty: qty}))
}

// checkoutOrder runs a full checkout for a fresh client against the given
// products (one unit each) and returns the created order.
func (e *testEnv) checkout(t *testing.T, clientID uint, shipping string) *entity.Order {
	t.Helper()
	out, err := e.Orders.CheckoutFromCart(clientID, &CheckoutReq{
		DeliveryAddress: "Av. Siempre Viva 742",
		PaymentMethod:   entity.MethodCash,
		ShippingFee:     dec(shipping),
	})
	require.NoError(t, err)
	o, err := e.OrderRepo.GetOrder(out.ID)
	require.NoError(t, err)
	return o
}
