package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/fredcamaral/decksite/internal/domain/ports"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 512
)

// reloadHub tracks connected browsers and fans reload events out to them.
type reloadHub struct {
	clients   map[string]chan ports.UpdateEvent
	broadcast chan ports.UpdateEvent
	mu        sync.RWMutex
	done      chan struct{}
	doneOnce  sync.Once
}

func newReloadHub() *reloadHub {
	return &reloadHub{
		clients:   make(map[string]chan ports.UpdateEvent),
		broadcast: make(chan ports.UpdateEvent, 256),
		done:      make(chan struct{}),
	}
}

// Run fans broadcast events out to every registered client until the
// context is cancelled. Slow clients are dropped rather than blocking the
// rest.
func (h *reloadHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.doneOnce.Do(func() { close(h.done) })
			return
		case event := <-h.broadcast:
			h.mu.Lock()
			for id, send := range h.clients {
				select {
				case send <- event:
				default:
					close(send)
					delete(h.clients, id)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *reloadHub) register(id string, send chan ports.UpdateEvent) {
	h.mu.Lock()
	h.clients[id] = send
	h.mu.Unlock()
}

func (h *reloadHub) unregister(id string) {
	h.mu.Lock()
	if send, ok := h.clients[id]; ok {
		delete(h.clients, id)
		close(send)
	}
	h.mu.Unlock()
}

// Broadcast sends an event to all connected clients.
func (h *reloadHub) Broadcast(event ports.UpdateEvent) {
	select {
	case h.broadcast <- event:
	case <-h.done:
		// Hub is shutting down
	}
}

// CloseAll closes all client connections.
func (h *reloadHub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, send := range h.clients {
		close(send)
		delete(h.clients, id)
	}
}

// reloadClient is one connected browser.
type reloadClient struct {
	id     string
	conn   *websocket.Conn
	send   chan ports.UpdateEvent
	hub    *reloadHub
	logger *HTTPLogger
}

// createUpgrader creates a WebSocket upgrader with origin validation
func (s *Server) createUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return s.isValidOrigin(r)
		},
	}
}

// handleWebSocket handles WebSocket upgrade requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := s.createUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("WebSocket upgrade failed: %v", err)
		return
	}

	client := &reloadClient{
		id:     uuid.New().String(),
		conn:   conn,
		send:   make(chan ports.UpdateEvent, 16),
		hub:    s.hub,
		logger: s.logger,
	}
	s.hub.register(client.id, client.send)

	go client.writePump()
	go client.readPump()

	event := ports.UpdateEvent{
		Type:      "connected",
		Timestamp: time.Now(),
		Data:      map[string]string{"message": "Connected to decksite preview"},
	}
	select {
	case client.send <- event:
	default:
		// Client's send channel is full
	}
}

// readPump drains the connection; browsers only send pongs and close
// frames, so anything else is logged and ignored.
func (c *reloadClient) readPump() {
	defer func() {
		c.hub.unregister(c.id)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket connection error: %v", err)
			}
			break
		}
		c.logger.Debug("ignoring message from client %s: %s", c.id, message)
	}
}

// writePump pumps events to the WebSocket connection
func (c *reloadClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// BroadcastReload sends a reload event to all connected clients
func (s *Server) BroadcastReload() {
	_ = s.NotifyClients(ports.UpdateEvent{
		Type:      ports.EventTypeReload,
		Timestamp: time.Now(),
		Data:      map[string]interface{}{"message": "Site rebuilt"},
	})
}

// BroadcastFileChange sends a file change event to all connected clients
func (s *Server) BroadcastFileChange(filename string) {
	_ = s.NotifyClients(ports.UpdateEvent{
		Type:      ports.EventTypeFileChange,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"file":    filename,
			"message": "File changed",
		},
	})
}

// isValidOrigin validates WebSocket connection origins.
func (s *Server) isValidOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")

	// Allow empty origin (same-origin requests)
	if origin == "" {
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		s.logger.Warn("WebSocket connection rejected: invalid origin %q: %v", origin, err)
		return false
	}

	hostname := originURL.Hostname()
	switch hostname {
	case "localhost", "127.0.0.1", "0.0.0.0", "::1":
		return true
	}

	// Allow private network ranges so LAN devices can preview.
	if strings.HasPrefix(hostname, "192.168.") ||
		strings.HasPrefix(hostname, "10.") ||
		isPrivateClassB(hostname) {
		return true
	}

	// Otherwise fall back to the configured CORS whitelist.
	for _, allowed := range s.config.GetCORSOrigins() {
		if allowed == "*" || originURL.String() == allowed {
			return true
		}
		if strings.HasPrefix(allowed, "*.") &&
			strings.HasSuffix(hostname, strings.TrimPrefix(allowed, "*.")) {
			return true
		}
	}

	s.logger.Warn("WebSocket connection rejected: origin %q not allowed", originURL.String())
	return false
}

// isPrivateClassB checks for 172.16.0.0 to 172.31.255.255 range
func isPrivateClassB(hostname string) bool {
	if !strings.HasPrefix(hostname, "172.") {
		return false
	}

	parts := strings.Split(hostname, ".")
	if len(parts) < 2 {
		return false
	}

	switch parts[1] {
	case "16", "17", "18", "19", "20", "21", "22", "23", "24", "25", "26", "27", "28", "29", "30", "31":
		return true
	default:
		return false
	}
}
