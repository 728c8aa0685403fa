package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	d := NewDispatcher()

	var a, b []Event
	d.Subscribe(OrderCreated, func(e Event) { a = append(a, e) })
	d.Subscribe(OrderCreated, func(e Event) { b = append(b, e) })
	d.Subscribe(OrderDelivered, func(e Event) { t.Fatal("wrong event delivered") })

	d.Publish(Event{Name: OrderCreated, OrderID: 7, OrderNumber: "DL-2025-000007"})

	require.Len(t, a, 1)
	require.Len(t, b, 1)
	require.Equal(t, uint(7), a[0].OrderID)
}

func TestPanickingHandlerDoesNotStopOthers(t *testing.T) {
	d := NewDispatcher()

	var reached bool
	d.Subscribe(OrderCancelled, func(Event) { panic("broken consumer") })
	d.Subscribe(OrderCancelled, func(Event) { reached = true })

	require.NotPanics(t, func() {
		d.Publish(Event{Name: OrderCancelled, OrderID: 1})
	})
	require.True(t, reached)
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	d := NewDispatcher()
	require.NotPanics(t, func() {
		d.Publish(Event{Name: OrderInTransit, OrderID: 1})
	})
}
