package chat

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"hostelhelper/backend/internal/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// inboundFrame is what the browser sends over the socket.
type inboundFrame struct {
	Text string `json:"text"`
}

// WebSocketClient pumps one student's conversation over a websocket. Each
// inbound frame is one user turn; the engine reply is written back as a
// bot-typed ChatMessage.
type WebSocketClient struct {
	StudentID string
	Conn      *websocket.Conn
	Engine    *Engine
	Hub       *Hub

	// Send stays open for the client's whole lifetime: both the read
	// pump and the hub write to it, so nobody may close it. done is
	// closed by the read pump on its way out and tells the write pump
	// to finish.
	Send chan models.ChatMessage
	done chan struct{}
}

// NewWebSocketClient binds a connection to a student's conversation.
func NewWebSocketClient(studentID string, conn *websocket.Conn, engine *Engine, hub *Hub) *WebSocketClient {
	return &WebSocketClient{
		StudentID: studentID,
		Conn:      conn,
		Engine:    engine,
		Hub:       hub,
		Send:      make(chan models.ChatMessage, 16),
		done:      make(chan struct{}),
	}
}

// Run registers with the hub and starts the read and write pumps. It
// returns immediately; the pumps own the connection from here on.
func (c *WebSocketClient) Run() {
	c.Hub.RegisterCh <- c
	go c.writePump()
	go c.readPump()
}

func (c *WebSocketClient) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c
		c.Conn.Close()
		close(c.done)
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error reading message: %v", err)
			}
			break
		}

		var frame inboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			log.Printf("Error decoding JSON from student %s: %v", c.StudentID, err)
			continue
		}
		if frame.Text == "" {
			continue
		}

		reply := c.Engine.HandleMessage(context.Background(), c.StudentID, frame.Text)
		select {
		case c.Send <- models.ChatMessage{
			ID:        uuid.New().String(),
			Type:      models.MessageTypeBot,
			Text:      reply.Text,
			Timestamp: time.Now(),
		}:
		default:
			// Write pump is not keeping up; the next read will fail
			// once the connection is torn down.
			log.Printf("Dropping reply for student %s: send buffer full", c.StudentID)
		}
	}
}

func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case <-c.done:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case message := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))

			data, err := json.Marshal(message)
			if err != nil {
				log.Printf("Error encoding JSON for student %s: %v", c.StudentID, err)
				continue
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(data)

			// Drain anything already queued into the same frame batch.
			n := len(c.Send)
			for i := 0; i < n; i++ {
				next := <-c.Send
				extra, _ := json.Marshal(next)
				w.Write(extra)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
