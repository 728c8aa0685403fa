package services

import (
	"strings"

	"github.com/BETACRD01/delibery-sub000/configs"
	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/BETACRD01/delibery-sub000/events"
	"github.com/BETACRD01/delibery-sub000/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB  *gorm.DB
	Cfg *configs.Config

	Repo         *repository.OrderRepository
	CartRepo     *repository.CartRepository
	ProviderRepo *repository.ProviderRepository
	CourierRepo  *repository.CourierRepository
	PaymentRepo  *repository.PaymentRepository

	Inventory  *InventoryService
	Numbers    *OrderNumberService
	Settlement *SettlementService
	Events     *events.Dispatcher
}

func NewOrderService(
	db *gorm.DB,
	cfg *configs.Config,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	providerRepo *repository.ProviderRepository,
	courierRepo *repository.CourierRepository,
	paymentRepo *repository.PaymentRepository,
	inventory *InventoryService,
	numbers *OrderNumberService,
	settlement *SettlementService,
	dispatcher *events.Dispatcher,
) *OrderService {
	return &OrderService{
		DB: db, Cfg: cfg,
		Repo: repo, CartRepo: cartRepo, ProviderRepo: providerRepo,
		CourierRepo: courierRepo, PaymentRepo: paymentRepo,
		Inventory: inventory, Numbers: numbers, Settlement: settlement,
		Events: dispatcher,
	}
}

// ----- DTOs from controllers -----

type CheckoutReq struct {
	DeliveryAddress string               `json:"deliveryAddress" binding:"required"`
	DeliveryLat     *float64             `json:"deliveryLat"`
	DeliveryLng     *float64             `json:"deliveryLng"`
	DeliveryNotes   string               `json:"deliveryNotes"`
	PaymentMethod   entity.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=cash card transfer"`
	// quote from the shipping collaborator, taken as an opaque priced value
	ShippingFee decimal.Decimal `json:"shippingFee"`
}

type CreateOrderRes struct {
	ID          uint            `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	Total       decimal.Decimal `json:"total"`
}

// CheckoutFromCart turns the user's cart into an order in one atomic unit of
// work: validate, reserve stock (fail-fast), snapshot totals, number, persist
// order + items + pending payment, clear the cart. Any failure rolls the
// whole transaction back, reservations included. The created event fires
// after commit, best-effort.
func (s *OrderService) CheckoutFromCart(clientID uint, req *CheckoutReq) (*CreateOrderRes, error) {
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return nil, ErrInvalidAddress
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = entity.MethodCash
	}
	if req.ShippingFee.IsNegative() {
		req.ShippingFee = decimal.Zero
	}

	cart, err := s.CartRepo.GetCartWithItems(clientID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// price from cart snapshots; detect the provider set to pick the kind
	subtotal := decimal.Zero
	providers := make(map[uint]struct{})
	for _, it := range cart.Items {
		if it.Product.ID == 0 || !it.Product.Available {
			return nil, ErrProductUnavailable
		}
		subtotal = subtotal.Add(it.Subtotal)
		providers[it.Product.ProviderID] = struct{}{}
	}

	kind := entity.KindSingleProvider
	var providerID *uint
	if len(providers) > 1 {
		kind = entity.KindMultiProviderCart
	} else {
		for pid := range providers {
			id := pid
			providerID = &id
		}
	}

	serviceFee := s.serviceFeeFor(len(providers))
	total := subtotal.Add(req.ShippingFee).Add(serviceFee)

	var out CreateOrderRes
	var orderID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// reserve first: the transaction rollback releases every decrement
		// made before a failing line
		for i := range cart.Items {
			it := &cart.Items[i]
			if err := s.Inventory.Reserve(tx, &it.Product, it.Qty); err != nil {
				return err
			}
		}

		number, err := s.Numbers.Next(tx)
		if err != nil {
			return err
		}

		order := entity.Order{
			OrderNumber:     number,
			Kind:            kind,
			State:           entity.StateAwaitingCourier,
			ClientID:        clientID,
			ProviderID:      providerID,
			DeliveryAddress: req.DeliveryAddress,
			DeliveryLat:     req.DeliveryLat,
			DeliveryLng:     req.DeliveryLng,
			DeliveryNotes:   req.DeliveryNotes,
			Subtotal:        subtotal,
			ShippingFee:     req.ShippingFee,
			ServiceFee:      serviceFee,
			Total:           total,
			PaymentMethod:   req.PaymentMethod,
			PaymentState:    entity.PayPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				ProductID: it.ProductID,
				Qty:       it.Qty,
				UnitPrice: it.UnitPrice,
				Subtotal:  it.Subtotal,
				Note:      it.Note,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		payment := entity.Payment{
			Reference: uuid.NewString(),
			Amount:    total,
			Method:    req.PaymentMethod,
			State:     entity.PayPending,
			OrderID:   order.ID,
		}
		if err := s.PaymentRepo.CreatePayment(tx, &payment); err != nil {
			return err
		}

		if err := s.CartRepo.ClearCart(tx, clientID); err != nil {
			return err
		}

		if err := s.Repo.AppendHistory(tx, &entity.OrderHistory{
			OrderID:   order.ID,
			FromState: "",
			ToState:   entity.StateAwaitingCourier,
			Actor:     "client",
			Note:      "order created from cart",
		}); err != nil {
			return err
		}

		orderID = order.ID
		out = CreateOrderRes{ID: order.ID, OrderNumber: order.OrderNumber, Total: order.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Events.Publish(events.Event{
		Name:        events.OrderCreated,
		OrderID:     orderID,
		OrderNumber: out.OrderNumber,
		Payload:     map[string]any{"clientId": clientID, "total": out.Total.String()},
	})
	return &out, nil
}

// ----- Direct errands -----

type DirectOrderReq struct {
	Description     string               `json:"description" binding:"required"`
	DeliveryAddress string               `json:"deliveryAddress" binding:"required"`
	DeliveryLat     *float64             `json:"deliveryLat"`
	DeliveryLng     *float64             `json:"deliveryLng"`
	PaymentMethod   entity.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=cash card transfer"`
	ShippingFee     decimal.Decimal      `json:"shippingFee"`
}

// CreateDirect places a courier errand: no goods provider, no catalog items,
// the courier runs the described task for the shipping fee.
func (s *OrderService) CreateDirect(clientID uint, req *DirectOrderReq) (*CreateOrderRes, error) {
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return nil, ErrInvalidAddress
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = entity.MethodCash
	}
	if req.ShippingFee.IsNegative() {
		req.ShippingFee = decimal.Zero
	}

	var out CreateOrderRes
	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		number, err := s.Numbers.Next(tx)
		if err != nil {
			return err
		}

		order := entity.Order{
			OrderNumber:     number,
			Kind:            entity.KindDirectCourier,
			State:           entity.StateAwaitingCourier,
			ClientID:        clientID,
			Description:     req.Description,
			DeliveryAddress: req.DeliveryAddress,
			DeliveryLat:     req.DeliveryLat,
			DeliveryLng:     req.DeliveryLng,
			Subtotal:        decimal.Zero,
			ShippingFee:     req.ShippingFee,
			ServiceFee:      decimal.Zero,
			Total:           req.ShippingFee,
			PaymentMethod:   req.PaymentMethod,
			PaymentState:    entity.PayPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		payment := entity.Payment{
			Reference: uuid.NewString(),
			Amount:    order.Total,
			Method:    req.PaymentMethod,
			State:     entity.PayPending,
			OrderID:   order.ID,
		}
		if err := s.PaymentRepo.CreatePayment(tx, &payment); err != nil {
			return err
		}

		if err := s.Repo.AppendHistory(tx, &entity.OrderHistory{
			OrderID: order.ID,
			ToState: entity.StateAwaitingCourier,
			Actor:   "client",
			Note:    "direct errand created",
		}); err != nil {
			return err
		}

		orderID = order.ID
		out = CreateOrderRes{ID: order.ID, OrderNumber: order.OrderNumber, Total: order.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Events.Publish(events.Event{
		Name:        events.OrderCreated,
		OrderID:     orderID,
		OrderNumber: out.OrderNumber,
		Payload:     map[string]any{"clientId": clientID, "kind": string(entity.KindDirectCourier)},
	})
	return &out, nil
}

func (s *OrderService) serviceFeeFor(providerCount int) decimal.Decimal {
	switch {
	case providerCount >= 3:
		return s.Cfg.ServiceFeeManyProviders
	case providerCount == 2:
		return s.Cfg.ServiceFeeTwoProviders
	default:
		return decimal.Zero
	}
}

// ----- Reads -----

func (s *OrderService) ListForClient(clientID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForClient(clientID, limit)
}

type OrderDetail struct {
	Order   entity.Order           `json:"order"`
	Items   []entity.OrderItem     `json:"items"`
	History []entity.OrderHistory  `json:"history"`
}

func (s *OrderService) DetailForClient(clientID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForClient(clientID, orderID)
	if err != nil {
		return nil, err
	}
	return s.detail(o)
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	return s.detail(o)
}

func (s *OrderService) detail(o *entity.Order) (*OrderDetail, error) {
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	history, err := s.Repo.ListHistory(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items, History: history}, nil
}

type ProviderOrderListOut struct {
	Items []repository.ProviderOrderSummary `json:"items"`
	Total int64                             `json:"total"`
	Page  int                               `json:"page"`
	Limit int                               `json:"limit"`
}

func (s *OrderService) ListForProvider(userID, providerID uint, state *entity.OrderState, page, limit int) (*ProviderOrderListOut, error) {
	ok, err := s.ProviderRepo.IsOwnedBy(providerID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	items, total, err := s.Repo.ListOrdersForProvider(providerID, state, page, limit)
	if err != nil {
		return nil, err
	}
	return &ProviderOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) ListAwaitingCourier(limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListAwaitingCourier(limit)
}
