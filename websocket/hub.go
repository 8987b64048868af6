package websocket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"home-maintenance-server/metrics"
)

const (
	EventBookingCreated = "booking.created"
	EventBookingUpdated = "booking.updated"
	EventBookingDeleted = "booking.deleted"
)

// Message is the envelope pushed to admin feed clients
type Message struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// Hub fans booking events out to connected admins. Run owns the client set;
// every other method talks to it through channels.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client
	count      chan chan int
	done       chan struct{}
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *Message, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		count:      make(chan chan int),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's main loop and returns when ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			metrics.AdminFeedClients.Set(0)
			log.Info().Msg("🛑 Admin feed hub stopped")
			return

		case client := <-h.register:
			h.clients[client] = true
			metrics.AdminFeedClients.Set(float64(len(h.clients)))
			log.Info().Str("user_id", client.userID).Msg("🔌 Admin feed client registered")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				metrics.AdminFeedClients.Set(float64(len(h.clients)))
				log.Info().Str("user_id", client.userID).Msg("🔌 Admin feed client unregistered")
			}

		case message := <-h.broadcast:
			h.broadcastMessage(message)

		case reply := <-h.count:
			reply <- len(h.clients)
		}
	}
}

func (h *Hub) broadcastMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Error().Err(err).Str("type", message.Type).Msg("❌ Error marshaling message")
		return
	}

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Slow consumer, drop it
			close(client.send)
			delete(h.clients, client)
			metrics.AdminFeedClients.Set(float64(len(h.clients)))
		}
	}
}

// Publish queues an event for every connected admin. It never blocks the
// caller; when the queue is full the event is dropped.
func (h *Hub) Publish(eventType string, data interface{}) {
	message := &Message{
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}

	select {
	case h.broadcast <- message:
	default:
		log.Warn().Str("type", eventType).Msg("⚠️ Admin feed queue full, dropping event")
	}
}

// ClientCount returns the number of connected clients, or 0 once the hub
// has stopped
func (h *Hub) ClientCount() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}
