package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"hostelhelper/backend/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// statusChannel is the Redis Pub/Sub channel carrying complaint status
// updates. Every server instance subscribes, so an update lands on the
// student's socket no matter which instance holds it.
const statusChannel = "complaints:updates"

// StatusUpdate is the broadcast payload for a complaint status change.
type StatusUpdate struct {
	TicketID   string `json:"ticketId"`
	StudentID  string `json:"studentId"`
	Status     string `json:"status"`
	Resolution string `json:"resolution,omitempty"`
}

// Hub tracks connected websocket clients and fans complaint status
// updates out to the owning student's connections.
type Hub struct {
	Redis        *redis.Client
	RegisterCh   chan *WebSocketClient
	UnregisterCh chan *WebSocketClient

	clients map[*WebSocketClient]bool
	updates chan StatusUpdate
}

func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		Redis:        rdb,
		RegisterCh:   make(chan *WebSocketClient),
		UnregisterCh: make(chan *WebSocketClient),
		clients:      make(map[*WebSocketClient]bool),
		updates:      make(chan StatusUpdate, 16),
	}
}

// ComplaintStatusChanged publishes a status change. Delivery to sockets
// happens through the Pub/Sub listener, local ones included.
func (h *Hub) ComplaintStatusChanged(ticketID, studentID, status, resolution string) {
	payload, err := json.Marshal(StatusUpdate{
		TicketID:   ticketID,
		StudentID:  studentID,
		Status:     status,
		Resolution: resolution,
	})
	if err != nil {
		log.Printf("Error encoding status update for %s: %v", ticketID, err)
		return
	}
	if err := h.Redis.Publish(context.Background(), statusChannel, payload).Err(); err != nil {
		log.Printf("Error publishing status update for %s: %v", ticketID, err)
	}
}

// startPubSubListener feeds Redis Pub/Sub messages into the hub loop.
func (h *Hub) startPubSubListener(ctx context.Context) {
	if h.Redis == nil {
		return
	}
	go func() {
		pubsub := h.Redis.Subscribe(ctx, statusChannel)
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var update StatusUpdate
			if err := json.Unmarshal([]byte(msg.Payload), &update); err != nil {
				log.Printf("Error unmarshalling Redis message: %v", err)
				continue
			}
			h.updates <- update
		}
	}()
}

// Run owns the client registry. Register, unregister and fan-out all go
// through this loop, so no locking is needed.
func (h *Hub) Run(ctx context.Context) {
	h.startPubSubListener(ctx)

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.RegisterCh:
			h.clients[client] = true

		case client := <-h.UnregisterCh:
			delete(h.clients, client)

		case update := <-h.updates:
			msg := models.ChatMessage{
				ID:        uuid.New().String(),
				Type:      models.MessageTypeBot,
				Text:      statusUpdateText(update),
				Timestamp: time.Now(),
			}
			for client := range h.clients {
				if client.StudentID != update.StudentID {
					continue
				}
				select {
				case client.Send <- msg:
				default:
					// Slow client, drop the connection. Closing it makes
					// the client's read pump exit and unregister; the
					// pumps stay the only owners of the Send channel.
					delete(h.clients, client)
					client.Conn.Close()
				}
			}
		}
	}
}

func statusUpdateText(u StatusUpdate) string {
	text := fmt.Sprintf("Update on your complaint %s: status is now %s.", u.TicketID, u.Status)
	if u.Resolution != "" {
		text += " Resolution: " + u.Resolution
	}
	return text
}
