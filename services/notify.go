package services

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type refreshClient struct {
	conn *websocket.Conn
	send chan []byte
}

// NotifyHub pushes a refresh ping to every connected dashboard after a
// mutation, inviting the client to reload. It never pushes data.
type NotifyHub struct {
	mu      sync.Mutex
	clients map[*refreshClient]bool
}

func NewNotifyHub() *NotifyHub {
	return &NotifyHub{clients: make(map[*refreshClient]bool)}
}

func (h *NotifyHub) ServeWs(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "WebSocket upgrade failed: " + err.Error()})
		return
	}
	client := &refreshClient{conn: conn, send: make(chan []byte, 8)}
	h.mu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mu.Unlock()
	log.Infof("Dashboard connected. Total clients: %d", total)

	go client.writePump()
	go h.readPump(client)
}

// BroadcastRefresh notifies every open dashboard that the collections
// changed. Slow clients are skipped rather than blocked on.
func (h *NotifyHub) BroadcastRefresh() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client.send <- []byte(`{"event":"refresh"}`):
		default:
		}
	}
}

func (h *NotifyHub) readPump(client *refreshClient) {
	defer func() {
		client.conn.Close()
		h.mu.Lock()
		delete(h.clients, client)
		close(client.send)
		total := len(h.clients)
		h.mu.Unlock()
		log.Infof("Dashboard disconnected. Total clients: %d", total)
	}()
	for {
		// Clients only listen; drain until the connection drops.
		if _, _, err := client.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *refreshClient) writePump() {
	defer c.conn.Close()
	for {
		message, ok := <-c.send
		if !ok {
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			break
		}
		c.conn.WriteMessage(websocket.TextMessage, message)
	}
}
