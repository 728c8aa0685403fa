package repository

import (
	"strings"
	"time"

	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderForUpdate reads the order inside the caller's transaction. The
// guarded UPDATEs below are what actually serialize concurrent writers; this
// read just provides the snapshot to validate against.
func (r *OrderRepository) GetOrderForUpdate(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderWithItems preloads items and their products (needed at settlement
// to resolve each item's provider).
func (r *OrderRepository) GetOrderWithItems(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := tx.Preload("Items").Preload("Items.Product").First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders (client) summary rows
type OrderSummary struct {
	ID          uint              `json:"id"`
	OrderNumber string            `json:"orderNumber"`
	Kind        entity.OrderKind  `json:"kind"`
	State       entity.OrderState `json:"state"`
	Total       decimal.Decimal   `json:"total"`
	CreatedAt   time.Time         `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForClient(clientID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, kind, state, total, created_at").
		Where("client_id = ?", clientID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) GetOrderForClient(clientID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND client_id = ?", orderID, clientID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// Provider-side listing with the client's name joined in.
type ProviderOrderSummary struct {
	ID          uint              `json:"id"`
	OrderNumber string            `json:"orderNumber"`
	ClientID    uint              `json:"clientId"`
	ClientName  string            `json:"clientName"`
	State       entity.OrderState `json:"state"`
	Total       decimal.Decimal   `json:"total"`
	CreatedAt   time.Time         `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForProvider(providerID uint, state *entity.OrderState, page, limit int) ([]ProviderOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	dbCount := r.DB.Table("orders AS o").
		Where("o.provider_id = ? AND o.deleted_at IS NULL", providerID)
	if state != nil && *state != "" {
		dbCount = dbCount.Where("o.state = ?", *state)
	}
	if err := dbCount.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []struct {
		ID          uint
		OrderNumber string
		ClientID    uint
		State       entity.OrderState
		Total       decimal.Decimal
		CreatedAt   time.Time
		FirstName   string
		LastName    string
	}
	db := r.DB.Table("orders AS o").
		Select("o.id, o.order_number, o.client_id, o.state, o.total, o.created_at, u.first_name, u.last_name").
		Joins("JOIN users u ON u.id = o.client_id").
		Where("o.provider_id = ? AND o.deleted_at IS NULL", providerID)
	if state != nil && *state != "" {
		db = db.Where("o.state = ?", *state)
	}
	if err := db.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]ProviderOrderSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, ProviderOrderSummary{
			ID:          row.ID,
			OrderNumber: row.OrderNumber,
			ClientID:    row.ClientID,
			ClientName:  strings.TrimSpace(row.FirstName + " " + row.LastName),
			State:       row.State,
			Total:       row.Total,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, total, nil
}

// ListAwaitingCourier returns the open work pool couriers pick from.
func (r *OrderRepository) ListAwaitingCourier(limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, kind, state, total, created_at").
		Where("state = ? AND courier_id IS NULL", entity.StateAwaitingCourier).
		Order("id ASC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// ---------------- Guarded transitions ----------------

// UpdateStateGuard applies `updates` only while the order is still in `from`.
// Zero rows affected means another writer moved the order first; the caller
// maps that to a conflict after having validated the state it read.
func (r *OrderRepository) UpdateStateGuard(tx *gorm.DB, orderID uint, from entity.OrderState, updates map[string]any) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND state = ?", orderID, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// AssignCourierGuard claims the order for a courier. The courier_id IS NULL
// condition makes the claim first-wins: a second courier (or a second call by
// the same courier) affects zero rows.
func (r *OrderRepository) AssignCourierGuard(tx *gorm.DB, orderID, courierID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND courier_id IS NULL AND state IN ?", orderID,
			[]entity.OrderState{entity.StateAwaitingCourier, entity.StateInPreparation}).
		Updates(map[string]any{
			"courier_id":       courierID,
			"courier_accepted": true,
		})
	return res.RowsAffected, res.Error
}

// HasActiveOrderForCourier reports whether the courier already carries an
// order that has not reached a terminal state.
func (r *OrderRepository) HasActiveOrderForCourier(courierID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("courier_id = ? AND state NOT IN ?", courierID,
			[]entity.OrderState{entity.StateDelivered, entity.StateCancelled}).
		Count(&cnt).Error
	return cnt > 0, err
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, qty, unit_price, subtotal, note, product_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

// ---------------- History ----------------

func (r *OrderRepository) AppendHistory(tx *gorm.DB, h *entity.OrderHistory) error {
	return tx.Create(h).Error
}

func (r *OrderRepository) ListHistory(orderID uint) ([]entity.OrderHistory, error) {
	var out []entity.OrderHistory
	err := r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&out).Error
	return out, err
}
