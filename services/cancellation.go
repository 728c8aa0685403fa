package services

import (
	"time"

	"github.com/BETACRD01/delibery-sub000/configs"
	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/BETACRD01/delibery-sub000/events"
	"gorm.io/gorm"
)

// Cancel aborts a non-terminal order. Stock goes back per the configured
// restock policy, a paid payment flips to refunded, and the assigned courier
// (if any) is freed. Delivered and cancelled orders are rejected outright so
// a settled order can never be unwound.
func (s *OrderService) Cancel(orderID uint, reason, actor string) error {
	var orderNumber string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderWithItems(tx, orderID)
		if err != nil {
			return err
		}
		if o.Terminal() {
			return ErrAlreadyTerminal
		}

		now := time.Now()
		updates := map[string]any{
			"state":         entity.StateCancelled,
			"cancelled_at":  now,
			"cancel_reason": reason,
			"cancelled_by":  actor,
		}
		refund := o.PaymentState == entity.PayPaid
		if refund {
			updates["payment_state"] = entity.PayRefunded
		}
		n, err := s.Repo.UpdateStateGuard(tx, o.ID, o.State, updates)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrConcurrentModification
		}

		if s.shouldRestock(o.State) {
			for _, it := range o.Items {
				if err := s.Inventory.Release(tx, it.ProductID, it.Qty); err != nil {
					return err
				}
			}
		}

		if refund {
			if _, err := s.PaymentRepo.MarkRefundedGuard(tx, o.ID); err != nil {
				return err
			}
		}

		if o.CourierID != nil {
			if err := s.CourierRepo.SetAvailability(tx, *o.CourierID, true); err != nil {
				return err
			}
		}

		orderNumber = o.OrderNumber
		return s.Repo.AppendHistory(tx, &entity.OrderHistory{
			OrderID: o.ID, FromState: o.State, ToState: entity.StateCancelled,
			Actor: actor, Note: reason,
		})
	})
	if err != nil {
		return err
	}

	s.Events.Publish(events.Event{
		Name:        events.OrderCancelled,
		OrderID:     orderID,
		OrderNumber: orderNumber,
		Payload:     map[string]any{"reason": reason, "by": actor},
	})
	return nil
}

// CancelByClient lets a client abort their own order.
func (s *OrderService) CancelByClient(clientID, orderID uint, reason string) error {
	if _, err := s.Repo.GetOrderForClient(clientID, orderID); err != nil {
		return err
	}
	return s.Cancel(orderID, reason, "client")
}

func (s *OrderService) shouldRestock(from entity.OrderState) bool {
	switch s.Cfg.RestockOnCancel {
	case configs.RestockNever:
		return false
	case configs.RestockBeforeTransit:
		return from != entity.StateInTransit
	default:
		return true
	}
}
