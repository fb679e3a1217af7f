package ws

import (
	"net/http"
	"sync"
	"time"

	"MarketLens/internal/domain/models"
	xlogger "MarketLens/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(*http.Request) bool { return true },
	EnableCompression: true,
}

type client struct {
	conn *websocket.Conn
	out  chan envelope
	done chan struct{}
}

type envelope struct {
	Type    string           `json:"type"`
	Alert   *models.Anomaly  `json:"alert,omitempty"`
	History []models.Anomaly `json:"history,omitempty"`
}

// Hub pushes anomaly alerts to connected dashboard clients. New connections
// receive the retained alert history, then live alerts as they are detected.
// Slow clients never block a broadcast; their channel just drops.
type Hub struct {
	logger *xlogger.Logger

	mu      sync.RWMutex
	clients map[*client]struct{}
	history []models.Anomaly
	limit   int
}

func NewHub(logger *xlogger.Logger, historyLimit int) *Hub {
	if historyLimit <= 0 {
		historyLimit = 50
	}
	return &Hub{
		logger:  logger,
		clients: make(map[*client]struct{}),
		history: make([]models.Anomaly, 0, historyLimit),
		limit:   historyLimit,
	}
}

// Broadcast records the anomaly in history and fans it out.
func (h *Hub) Broadcast(a models.Anomaly) {
	h.mu.Lock()
	h.history = append(h.history, a)
	if len(h.history) > h.limit {
		h.history = h.history[len(h.history)-h.limit:]
	}
	h.mu.Unlock()

	alert := a
	msg := envelope{Type: "alert", Alert: &alert}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.out <- msg:
		default:
		}
	}
}

// History returns a copy of the retained alerts.
func (h *Hub) History() []models.Anomaly {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]models.Anomaly, len(h.history))
	copy(out, h.history)
	return out
}

// ClientCount reports connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/alerts", h.Serve)
}

// Serve upgrades the connection and pumps alerts until the peer goes away.
func (h *Hub) Serve(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	cl := &client{conn: conn, out: make(chan envelope, 64), done: make(chan struct{})}
	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()

	h.logger.Debug("ws client connected", xlogger.String("remote", conn.RemoteAddr().String()))

	go h.writer(cl)

	// History replay is always sent, even when empty.
	select {
	case cl.out <- envelope{Type: "history", History: h.History()}:
	default:
	}

	h.reader(cl)

	close(cl.done)
	h.mu.Lock()
	delete(h.clients, cl)
	h.mu.Unlock()

	h.logger.Debug("ws client disconnected", xlogger.String("remote", conn.RemoteAddr().String()))
	return nil
}

func (h *Hub) writer(cl *client) {
	ping := time.NewTicker(45 * time.Second)
	defer ping.Stop()
	for {
		select {
		case msg := <-cl.out:
			_ = cl.conn.WriteJSON(msg)
		case <-ping.C:
			_ = cl.conn.WriteMessage(websocket.PingMessage, nil)
		case <-cl.done:
			return
		}
	}
}

func (h *Hub) reader(cl *client) {
	_ = cl.conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	})
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}
