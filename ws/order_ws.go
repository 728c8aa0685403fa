package ws

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub pushes lifecycle updates for a single order to whoever watches it
// (the client tracking their delivery, the courier on the road). It
// implements services.OrderNotifier.
type OrderHub struct {
	mu      sync.Mutex
	clients map[uint]map[*websocket.Conn]bool // orderID -> set of conns
}

func NewOrderHub() *OrderHub {
	return &OrderHub{clients: make(map[uint]map[*websocket.Conn]bool)}
}

type orderUpdate struct {
	OrderID uint           `json:"orderId"`
	Event   string         `json:"event"`
	Payload map[string]any `json:"payload,omitempty"`
}

func (h *OrderHub) NotifyOrder(orderID uint, event string, payload map[string]any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients[orderID] {
		if err := conn.WriteJSON(orderUpdate{OrderID: orderID, Event: event, Payload: payload}); err != nil {
			log.Printf("ws write error: %v", err)
			conn.Close()
			delete(h.clients[orderID], conn)
		}
	}
}

// WS route: /ws/orders/:id
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	var orderID uint
	fmt.Sscan(c.Param("id"), &orderID)
	if orderID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid order id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.mu.Lock()
	if h.clients[orderID] == nil {
		h.clients[orderID] = make(map[*websocket.Conn]bool)
	}
	h.clients[orderID][conn] = true
	h.mu.Unlock()

	// drain until the peer hangs up; updates flow one way
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		h.mu.Lock()
		delete(h.clients[orderID], conn)
		h.mu.Unlock()
		conn.Close()
	}()
}
