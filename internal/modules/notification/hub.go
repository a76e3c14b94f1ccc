package notification

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Hub tracks one dashboard connection per user. A second connection for
// the same user replaces the first. The mutex also serializes writes:
// websocket connections allow at most one concurrent writer.
type Hub struct {
	mu    sync.Mutex
	conns map[int64]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{conns: make(map[int64]*websocket.Conn)}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.conns[userID]; ok && old != nil {
		_ = old.Close()
	}
	h.conns[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drop(userID)
}

// SendToUser pushes one event to the user's dashboard, if connected. A
// failed write drops the connection; the dashboard reconnects on its own.
func (h *Hub) SendToUser(userID int64, message any) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn, ok := h.conns[userID]
	if !ok || conn == nil {
		return false
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(message); err != nil {
		h.drop(userID)
		return false
	}
	return true
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID := range h.conns {
		h.drop(userID)
	}
}

// drop closes and forgets a connection. Callers must hold mu.
func (h *Hub) drop(userID int64) {
	if conn, ok := h.conns[userID]; ok && conn != nil {
		_ = conn.Close()
	}
	delete(h.conns, userID)
}
