package api

import (
	"net/http"
	"sync"

	"guestbook/logger"
	"guestbook/metrics"
	"guestbook/models"

	"github.com/gorilla/websocket"
)

// Hub manages live-feed websocket clients and pushes each newly stored
// submission to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub { return &Hub{clients: make(map[*websocket.Conn]struct{})} }

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
	logger.Info("live-feed client connected", logger.FieldKV("remote_addr", conn.RemoteAddr().String()))
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	_ = conn.Close()
	logger.Info("live-feed client disconnected", logger.FieldKV("remote_addr", conn.RemoteAddr().String()))
}

func (h *Hub) Broadcast(sub models.Submission) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if err := c.WriteJSON(sub); err != nil {
			logger.Error("websocket write error", err, logger.FieldKV("remote_addr", c.RemoteAddr().String()))
		}
	}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("websocket upgrade failed", err)
		return
	}
	s.hub.Add(conn)
	metrics.IncWSConnections()
	go func() {
		defer func() { s.hub.Remove(conn); metrics.DecWSConnections() }()
		for {
			// Viewers only listen; reads just detect the peer going away.
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
