// Package events is the in-process dispatcher for order side effects
// (notifications, chat provisioning, rating prompts). Services publish after
// their transaction commits; handler failures are logged and never bubble
// back into the order operation.
package events

import (
	"log"
	"sync"
)

type Name string

const (
	OrderCreated         Name = "order.created"
	OrderCourierAssigned Name = "order.courier_assigned"
	OrderInTransit       Name = "order.in_transit"
	OrderDelivered       Name = "order.delivered"
	OrderCancelled       Name = "order.cancelled"
)

type Event struct {
	Name        Name
	OrderID     uint
	OrderNumber string
	// minimal extra payload; keyed per event (clientId, courierId, reason...)
	Payload map[string]any
}

type Handler func(Event)

type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Name][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Name][]Handler)}
}

func (d *Dispatcher) Subscribe(n Name, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[n] = append(d.handlers[n], h)
}

// Publish runs the handlers for the event, best-effort. A panicking handler
// is recovered so one broken consumer cannot take down the others.
func (d *Dispatcher) Publish(e Event) {
	d.mu.RLock()
	hs := d.handlers[e.Name]
	d.mu.RUnlock()

	for _, h := range hs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("event handler panic on %s (order %s): %v", e.Name, e.OrderNumber, r)
				}
			}()
			h(e)
		}()
	}
}
