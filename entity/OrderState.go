package entity

// OrderKind classifies how an order was placed.
type OrderKind string

const (
	KindSingleProvider    OrderKind = "single_provider"
	KindDirectCourier     OrderKind = "direct_courier"
	KindMultiProviderCart OrderKind = "multi_provider_cart"
)

// OrderState is the order lifecycle. Forward-only, except to cancelled:
//
//	awaiting_courier -> in_preparation -> in_transit -> delivered
//
// cancelled is reachable from every non-terminal state.
type OrderState string

const (
	StateAwaitingCourier OrderState = "awaiting_courier"
	StateInPreparation   OrderState = "in_preparation"
	StateInTransit       OrderState = "in_transit"
	StateDelivered       OrderState = "delivered"
	StateCancelled       OrderState = "cancelled"
)

type PaymentState string

const (
	PayPending  PaymentState = "pending"
	PayPaid     PaymentState = "paid"
	PayRefunded PaymentState = "refunded"
)

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
)
