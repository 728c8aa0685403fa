package services

import (
	"fmt"
	"time"

	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/BETACRD01/delibery-sub000/events"
	"gorm.io/gorm"
)

// Lifecycle transitions. Every writer follows the same shape: read the order
// inside the transaction, validate the snapshot, then apply a guarded UPDATE
// conditioned on the state it read. Zero rows affected after a valid snapshot
// means another writer got there first and the caller sees a conflict.

// ConfirmByProvider moves a single-provider order into preparation. Only the
// owning provider may confirm, and only once a courier has taken the order.
func (s *OrderService) ConfirmByProvider(userID, orderID uint) error {
	provider, err := s.ProviderRepo.GetByUserID(userID)
	if err != nil {
		return err
	}

	var from, to entity.OrderState
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderForUpdate(tx, orderID)
		if err != nil {
			return err
		}
		if o.Kind != entity.KindSingleProvider || o.ProviderID == nil || *o.ProviderID != provider.ID {
			return ErrForbidden
		}
		if o.Terminal() {
			return ErrInvalidTransition
		}
		if o.State != entity.StateAwaitingCourier {
			return ErrInvalidTransition
		}
		if o.CourierID == nil {
			return ErrCourierRequired
		}

		n, err := s.Repo.UpdateStateGuard(tx, o.ID, o.State, map[string]any{
			"state": entity.StateInPreparation,
		})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrConcurrentModification
		}

		from, to = o.State, entity.StateInPreparation
		return s.Repo.AppendHistory(tx, &entity.OrderHistory{
			OrderID: o.ID, FromState: from, ToState: to,
			Actor: "provider", Note: "order confirmed, preparing",
		})
	})
	return err
}

// AcceptByCourier claims an open order for the courier. The claim is
// first-wins on courier_id and happens at most once per order, so the
// assignment event fires exactly once. A repeat call by the courier that
// already holds the order is a no-op success.
func (s *OrderService) AcceptByCourier(userID, orderID uint) error {
	courier, err := s.CourierRepo.GetByUserID(userID)
	if err != nil {
		return err
	}

	busy, err := s.Repo.HasActiveOrderForCourier(courier.ID)
	if err != nil {
		return err
	}
	if busy {
		return ErrCourierBusy
	}

	var claimed bool
	var orderNumber string
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderForUpdate(tx, orderID)
		if err != nil {
			return err
		}
		if o.Terminal() {
			return ErrInvalidTransition
		}
		if o.CourierID != nil {
			if *o.CourierID == courier.ID {
				return nil // already ours
			}
			return ErrConcurrentModification
		}
		if o.State != entity.StateAwaitingCourier {
			return ErrInvalidTransition
		}

		n, err := s.Repo.AssignCourierGuard(tx, o.ID, courier.ID)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrConcurrentModification
		}
		if err := s.CourierRepo.SetAvailability(tx, courier.ID, false); err != nil {
			return err
		}

		claimed = true
		orderNumber = o.OrderNumber
		return s.Repo.AppendHistory(tx, &entity.OrderHistory{
			OrderID: o.ID, FromState: o.State, ToState: o.State,
			Actor: "courier", Note: fmt.Sprintf("courier %d accepted", courier.ID),
		})
	})
	if err != nil {
		return err
	}

	if claimed {
		s.Events.Publish(events.Event{
			Name:        events.OrderCourierAssigned,
			OrderID:     orderID,
			OrderNumber: orderNumber,
			Payload:     map[string]any{"courierId": courier.ID},
		})
	}
	return nil
}

// MarkInTransit is called by the assigned courier after pickup. Direct
// errands skip preparation, so awaiting_courier is also a valid origin once
// the courier holds the order.
func (s *OrderService) MarkInTransit(userID, orderID uint) error {
	courier, err := s.CourierRepo.GetByUserID(userID)
	if err != nil {
		return err
	}

	var orderNumber string
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderForUpdate(tx, orderID)
		if err != nil {
			return err
		}
		if o.CourierID == nil || *o.CourierID != courier.ID {
			return ErrForbidden
		}
		if o.Terminal() {
			return ErrInvalidTransition
		}
		if o.State != entity.StateInPreparation && o.State != entity.StateAwaitingCourier {
			return ErrInvalidTransition
		}

		n, err := s.Repo.UpdateStateGuard(tx, o.ID, o.State, map[string]any{
			"state": entity.StateInTransit,
		})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrConcurrentModification
		}

		orderNumber = o.OrderNumber
		return s.Repo.AppendHistory(tx, &entity.OrderHistory{
			OrderID: o.ID, FromState: o.State, ToState: entity.StateInTransit,
			Actor: "courier", Note: "picked up, on the way",
		})
	})
	if err != nil {
		return err
	}

	s.Events.Publish(events.Event{
		Name:        events.OrderInTransit,
		OrderID:     orderID,
		OrderNumber: orderNumber,
	})
	return nil
}

// MarkDelivered finalizes the order: settlement figures are computed and
// written in the same transaction as the state change, so they are populated
// at most once. Cash payments flip to paid on handover. Repeat calls on a
// delivered order succeed without touching anything.
func (s *OrderService) MarkDelivered(userID, orderID uint) error {
	courier, err := s.CourierRepo.GetByUserID(userID)
	if err != nil {
		return err
	}

	var fired bool
	var orderNumber, settlementNote string
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderWithItems(tx, orderID)
		if err != nil {
			return err
		}
		if o.CourierID == nil || *o.CourierID != courier.ID {
			return ErrForbidden
		}
		if o.State == entity.StateDelivered {
			return nil // idempotent
		}
		if o.State != entity.StateInTransit {
			return ErrInvalidTransition
		}

		b, err := s.Settlement.Settle(o)
		if err != nil {
			return err
		}

		now := time.Now()
		updates := map[string]any{
			"state":               entity.StateDelivered,
			"delivered_at":        now,
			"courier_commission":  b.CourierCommission,
			"provider_commission": b.ProviderCommission,
			"platform_profit":     b.PlatformProfit,
		}
		if o.PaymentMethod == entity.MethodCash && o.PaymentState == entity.PayPending {
			updates["payment_state"] = entity.PayPaid
		}
		n, err := s.Repo.UpdateStateGuard(tx, o.ID, o.State, updates)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrConcurrentModification
		}

		if o.PaymentMethod == entity.MethodCash {
			if _, err := s.PaymentRepo.MarkPaidGuard(tx, o.ID, now); err != nil {
				return err
			}
		}

		if err := s.CourierRepo.IncrementDeliveries(tx, courier.ID); err != nil {
			return err
		}
		if err := s.CourierRepo.SetAvailability(tx, courier.ID, true); err != nil {
			return err
		}

		settlementNote = fmt.Sprintf("delivered; courier %s, provider %s, platform %s",
			b.CourierCommission.StringFixed(2),
			b.ProviderCommission.StringFixed(2),
			b.PlatformProfit.StringFixed(2))
		if b.Clamped {
			settlementNote += " (profit clamped)"
		}
		fired = true
		orderNumber = o.OrderNumber
		return s.Repo.AppendHistory(tx, &entity.OrderHistory{
			OrderID: o.ID, FromState: o.State, ToState: entity.StateDelivered,
			Actor: "courier", Note: settlementNote,
		})
	})
	if err != nil {
		return err
	}

	if fired {
		s.Events.Publish(events.Event{
			Name:        events.OrderDelivered,
			OrderID:     orderID,
			OrderNumber: orderNumber,
			Payload:     map[string]any{"settlement": settlementNote},
		})
	}
	return nil
}
