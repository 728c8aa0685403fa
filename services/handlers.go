package services

import (
	"log"

	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/BETACRD01/delibery-sub000/events"
	"gorm.io/gorm"
)

// OrderNotifier pushes order lifecycle updates to connected clients. The
// websocket hub implements it; tests pass nil and nothing is pushed.
type OrderNotifier interface {
	NotifyOrder(orderID uint, event string, payload map[string]any)
}

// RegisterOrderHandlers wires the lifecycle side effects: chat room
// provisioning when a courier takes the order, a rating prompt on delivery,
// and status pushes for every event. Handlers run after the triggering
// transaction committed, so a failure here never rolls an order back.
func RegisterOrderHandlers(d *events.Dispatcher, db *gorm.DB, chat *ChatService, notifier OrderNotifier) {
	notify := func(e events.Event) {
		log.Printf("order %s: %s", e.OrderNumber, e.Name)
		if notifier != nil {
			notifier.NotifyOrder(e.OrderID, string(e.Name), e.Payload)
		}
	}

	d.Subscribe(events.OrderCreated, notify)
	d.Subscribe(events.OrderInTransit, notify)
	d.Subscribe(events.OrderCancelled, notify)

	d.Subscribe(events.OrderCourierAssigned, func(e events.Event) {
		room, err := chat.EnsureRoom(e.OrderID)
		if err != nil {
			log.Printf("order %s: chat room provisioning failed: %v", e.OrderNumber, err)
		} else if _, err := chat.SendMessage(room.ID, 0, "system", "courier assigned"); err != nil {
			log.Printf("order %s: system message failed: %v", e.OrderNumber, err)
		}
		notify(e)
	})

	d.Subscribe(events.OrderDelivered, func(e events.Event) {
		var o entity.Order
		if err := db.First(&o, e.OrderID).Error; err != nil {
			log.Printf("order %s: rating request load failed: %v", e.OrderNumber, err)
		} else {
			req := entity.RatingRequest{OrderID: o.ID, ClientID: o.ClientID}
			if err := db.Where(entity.RatingRequest{OrderID: o.ID}).
				FirstOrCreate(&req).Error; err != nil {
				log.Printf("order %s: rating request failed: %v", e.OrderNumber, err)
			}
		}
		notify(e)
	})
}
