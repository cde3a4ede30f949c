// ================== internal/features/stream/hub.go ==================
package stream

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Collections that can be subscribed to.
const (
	CollectionReports = "reports"
	CollectionStaff   = "staff"
	CollectionTickets = "tickets"
)

// Snapshot is one full-collection state. Subscribers always receive complete
// snapshots, never deltas: consumers re-run their projections over the whole
// set on every event.
type Snapshot struct {
	Collection string      `json:"collection"`
	Items      interface{} `json:"items"`
	At         time.Time   `json:"at"`
}

// Subscription ties one websocket connection to one collection.
type Subscription struct {
	Conn       *websocket.Conn
	Collection string
}

// Hub fans collection snapshots out to subscribed admin clients.
type Hub struct {
	clients    map[string]map[*websocket.Conn]bool // collection -> set of clients
	broadcast  chan Snapshot
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan Snapshot),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
	}
}

// Run processes register/unregister/broadcast events until the process
// exits. Call it once, in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.Collection] == nil {
				h.clients[sub.Collection] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.Collection][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.Collection][sub.Conn]; ok {
				delete(h.clients[sub.Collection], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case snapshot := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[snapshot.Collection] {
				if err := conn.WriteJSON(snapshot); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[snapshot.Collection], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues a snapshot for every subscriber of its collection.
func (h *Hub) Publish(snapshot Snapshot) {
	h.broadcast <- snapshot
}

// Subscribe registers a connection for a collection's snapshots.
func (h *Hub) Subscribe(sub Subscription) {
	h.register <- sub
}

// Unsubscribe removes a connection and closes it. Must be called on
// teardown so listeners do not leak.
func (h *Hub) Unsubscribe(sub Subscription) {
	h.unregister <- sub
}

// SubscriberCount reports how many clients follow a collection.
func (h *Hub) SubscriberCount(collection string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[collection])
}

// ValidCollection reports whether a collection name can be subscribed to.
func ValidCollection(name string) bool {
	switch name {
	case CollectionReports, CollectionStaff, CollectionTickets:
		return true
	}
	return false
}
