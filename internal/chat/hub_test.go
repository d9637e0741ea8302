package chat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hostelhelper/backend/internal/models"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

// dialTestConn returns both ends of a live websocket connection.
func dialTestConn(t *testing.T) (server, peer *websocket.Conn, cleanup func()) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	connCh := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		connCh <- conn
	}))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	peer, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial: %v", err)
	}
	server = <-connCh

	return server, peer, func() {
		peer.Close()
		server.Close()
		srv.Close()
	}
}

// TestHubDropsSlowClientKeepingSendOpen verifies a client whose send
// buffer is full gets its connection torn down while the Send channel
// stays open, so a reply queued by the read pump afterwards cannot hit a
// closed channel.
func TestHubDropsSlowClientKeepingSendOpen(t *testing.T) {
	// Arrange
	serverConn, peer, cleanup := dialTestConn(t)
	defer cleanup()

	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := NewWebSocketClient("student-1", serverConn, nil, hub)
	hub.RegisterCh <- client
	for i := 0; i < cap(client.Send); i++ {
		client.Send <- models.ChatMessage{Text: "queued"}
	}

	// Act - fan a status update out to the saturated client
	hub.updates <- StatusUpdate{TicketID: "TICKET-TEST123", StudentID: "student-1", Status: "resolved"}

	// Assert - the hub closed the connection
	peer.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := peer.ReadMessage()
	assert.Error(t, err)

	// The queued messages are intact and the channel still accepts a
	// late reply.
	assert.Len(t, client.Send, cap(client.Send))
	<-client.Send
	client.Send <- models.ChatMessage{Text: "late reply"}
}

// TestHubUnregisterLeavesSendOpen verifies unregistering never closes the
// Send channel; the pumps own its lifetime.
func TestHubUnregisterLeavesSendOpen(t *testing.T) {
	// Arrange
	serverConn, _, cleanup := dialTestConn(t)
	defer cleanup()

	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := NewWebSocketClient("student-1", serverConn, nil, hub)
	hub.RegisterCh <- client

	// Act
	hub.UnregisterCh <- client

	// Assert
	client.Send <- models.ChatMessage{Text: "after unregister"}
	assert.Len(t, client.Send, 1)
}

func TestStatusUpdateText(t *testing.T) {
	// Arrange
	update := StatusUpdate{TicketID: "TICKET-ABC1234", Status: "resolved", Resolution: "Cleaned the tank"}

	// Act
	text := statusUpdateText(update)

	// Assert
	assert.Equal(t, "Update on your complaint TICKET-ABC1234: status is now resolved. Resolution: Cleaned the tank", text)
}
