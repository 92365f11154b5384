package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	xlogger "SentiPulse/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pingInterval   = 30 * time.Second
	sendBufferSize = 8
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans refresh results out to connected websocket clients.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	log     *xlogger.Logger
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub(log *xlogger.Logger) *Hub {
	return &Hub{clients: make(map[*client]struct{}), log: log}
}

func (h *Hub) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/live", h.Serve)
}

// Serve upgrades the connection and keeps it open until the peer
// disconnects.
func (h *Hub) Serve(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	cl := &client{conn: conn, send: make(chan []byte, sendBufferSize)}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.log.Debug("websocket client connected", xlogger.Int("clients", n))

	go h.writeLoop(cl)
	go h.readLoop(cl)
	return nil
}

// Broadcast marshals v once and queues it to every client. Clients too
// slow to drain their buffer are dropped.
func (h *Hub) Broadcast(v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		h.log.Warn("broadcast marshal failed", xlogger.Error(err))
		return
	}

	h.mu.RLock()
	stale := make([]*client, 0)
	for cl := range h.clients {
		select {
		case cl.send <- payload:
		default:
			stale = append(stale, cl)
		}
	}
	h.mu.RUnlock()

	for _, cl := range stale {
		h.drop(cl)
	}
}

// Close disconnects all clients.
func (h *Hub) Close() error {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for cl := range h.clients {
		clients = append(clients, cl)
	}
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	for _, cl := range clients {
		close(cl.send)
	}
	return nil
}

func (h *Hub) writeLoop(cl *client) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-cl.send:
			if !ok {
				_ = cl.conn.WriteControl(websocket.CloseMessage, nil, time.Now().Add(writeWait))
				return
			}
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readLoop discards inbound frames; it exists to detect disconnects.
func (h *Hub) readLoop(cl *client) {
	defer h.drop(cl)
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) drop(cl *client) {
	h.mu.Lock()
	if _, ok := h.clients[cl]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, cl)
	h.mu.Unlock()
	close(cl.send)
	cl.conn.Close()
}
