package services

import (
	"errors"
	"fmt"
)

// Caller mistakes / stale state. Surfaced directly, never retried.
var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidAddress    = errors.New("delivery address is required")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrAlreadyTerminal   = errors.New("order is already finalized")
	ErrForbidden         = errors.New("forbidden")

	ErrProductUnavailable = errors.New("product is not available")
	ErrCourierBusy        = errors.New("courier already has an active order")
	ErrCourierRequired    = errors.New("order has no assigned courier")
	ErrInvalidPrice       = errors.New("price must not be negative")
)

// Transient contention: the caller lost a race on the same order and must
// re-read state before retrying.
var ErrConcurrentModification = errors.New("order was modified concurrently")

// ErrInsufficientStock matches any InsufficientStockError via errors.Is.
var ErrInsufficientStock = errors.New("insufficient stock")

type InsufficientStockError struct {
	ProductID   uint
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
