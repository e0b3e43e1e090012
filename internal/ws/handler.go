package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-delivery-service/internal/config"
	"github.com/s21platform/chat-delivery-service/internal/fanout"
	"github.com/s21platform/chat-delivery-service/internal/model"
)

const (
	ActionJoin   = "join"
	ActionLeave  = "leave"
	ActionTyping = "typing"

	FrameJoined = "joined"
	FrameLeft   = "left"
	FrameError  = "error"

	replyBuffer = 16

	defaultWriteTimeout = 10 * time.Second
	defaultPongTimeout  = 60 * time.Second
)

// ClientFrame is what a connected client sends.
type ClientFrame struct {
	Action string `json:"action"`
	Room   string `json:"room"`
}

// ServerFrame acknowledges a client frame. Events are sent as model.Event.
type ServerFrame struct {
	Type  string `json:"type"`
	Room  string `json:"room,omitempty"`
	Error string `json:"error,omitempty"`
}

type Typing struct {
	UserID string `json:"user_id"`
	Room   string `json:"room"`
}

type Handler struct {
	hub      Hub
	rooms    RoomAuthorizer
	tokens   TokenValidator
	presence Presence
	logger   logger_lib.LoggerInterface

	upgrader     websocket.Upgrader
	writeTimeout time.Duration
	pongTimeout  time.Duration
	maxFrame     int64

	mu    sync.Mutex
	conns map[string]int
}

func New(hub Hub, rooms RoomAuthorizer, tokens TokenValidator, presence Presence, logger logger_lib.LoggerInterface, cfg config.Fanout) *Handler {
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	if cfg.PongTimeout <= 0 {
		cfg.PongTimeout = defaultPongTimeout
	}

	return &Handler{
		hub:      hub,
		rooms:    rooms,
		tokens:   tokens,
		presence: presence,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		writeTimeout: cfg.WriteTimeout,
		pongTimeout:  cfg.PongTimeout,
		maxFrame:     cfg.MaxFrameLength,
		conns:        make(map[string]int),
	}
}

type connection struct {
	conn    *websocket.Conn
	client  *fanout.Client
	replies chan []byte
}

// ServeHTTP upgrades an authenticated request to a live connection. The
// caller is joined to its personal room right away.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, err := h.tokens.Subject(r.URL.Query().Get("token"))
	if err != nil {
		h.logger.Warn(fmt.Sprintf("websocket connection rejected: %v", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error(fmt.Sprintf("failed to upgrade connection: %v", err))
		return
	}

	c := &connection{
		conn:    conn,
		client:  h.hub.NewClient(userID),
		replies: make(chan []byte, replyBuffer),
	}

	ctx := context.Background()
	if err := h.hub.Join(ctx, c.client, model.UserRoom(userID)); err != nil {
		h.logger.Error(fmt.Sprintf("failed to join personal room of %s: %v", userID, err))
		_ = conn.Close()
		return
	}
	h.connected(userID)
	if err := h.presence.SetOnline(ctx, userID); err != nil {
		h.logger.Warn(fmt.Sprintf("failed to set %s online: %v", userID, err))
	}
	h.logger.Info(fmt.Sprintf("websocket connection %s established for %s", c.client.ID, userID))

	go h.writeLoop(c)
	h.readLoop(ctx, c)
}

func (h *Handler) readLoop(ctx context.Context, c *connection) {
	userID := c.client.UserID
	defer func() {
		if err := h.hub.Disconnect(ctx, c.client); err != nil {
			h.logger.Warn(fmt.Sprintf("failed to disconnect %s: %v", c.client.ID, err))
		}
		if h.disconnected(userID) {
			if err := h.presence.SetOffline(ctx, userID); err != nil {
				h.logger.Warn(fmt.Sprintf("failed to set %s offline: %v", userID, err))
			}
		}
		_ = c.conn.Close()
		h.logger.Info(fmt.Sprintf("websocket connection %s closed", c.client.ID))
	}()

	if h.maxFrame > 0 {
		c.conn.SetReadLimit(h.maxFrame)
	}
	_ = c.conn.SetReadDeadline(time.Now().Add(h.pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		if err := h.presence.SetOnline(ctx, userID); err != nil {
			h.logger.Warn(fmt.Sprintf("failed to refresh presence of %s: %v", userID, err))
		}
		return c.conn.SetReadDeadline(time.Now().Add(h.pongTimeout))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn(fmt.Sprintf("websocket read from %s failed: %v", c.client.ID, err))
			}
			return
		}

		var frame ClientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			h.reply(c, ServerFrame{Type: FrameError, Error: "malformed frame"})
			continue
		}

		h.handleFrame(ctx, c, frame)
	}
}

func (h *Handler) connected(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[userID]++
}

// disconnected reports whether userID has no connections left on this
// instance.
func (h *Handler) disconnected(userID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[userID]--
	if h.conns[userID] > 0 {
		return false
	}
	delete(h.conns, userID)
	return true
}

func (h *Handler) handleFrame(ctx context.Context, c *connection, frame ClientFrame) {
	userID := c.client.UserID

	switch frame.Action {
	case ActionJoin:
		if err := h.rooms.CanJoinRoom(ctx, userID, frame.Room); err != nil {
			h.reply(c, ServerFrame{Type: FrameError, Room: frame.Room, Error: err.Error()})
			return
		}
		if err := h.hub.Join(ctx, c.client, frame.Room); err != nil {
			h.reply(c, ServerFrame{Type: FrameError, Room: frame.Room, Error: err.Error()})
			return
		}
		h.reply(c, ServerFrame{Type: FrameJoined, Room: frame.Room})
	case ActionLeave:
		if err := h.hub.Leave(ctx, c.client, frame.Room); err != nil {
			h.reply(c, ServerFrame{Type: FrameError, Room: frame.Room, Error: err.Error()})
			return
		}
		if err := h.presence.ClearTyping(ctx, frame.Room, userID); err != nil {
			h.logger.Warn(fmt.Sprintf("failed to clear typing of %s: %v", userID, err))
		}
		h.reply(c, ServerFrame{Type: FrameLeft, Room: frame.Room})
	case ActionTyping:
		if err := h.rooms.CanJoinRoom(ctx, userID, frame.Room); err != nil {
			h.reply(c, ServerFrame{Type: FrameError, Room: frame.Room, Error: err.Error()})
			return
		}
		if err := h.presence.SetTyping(ctx, frame.Room, userID); err != nil {
			h.logger.Warn(fmt.Sprintf("failed to set typing of %s: %v", userID, err))
		}
		now := time.Now().UTC()
		err := h.hub.Publish(ctx, frame.Room, model.Event{
			ID:        userID,
			Type:      model.EventTyping,
			Scope:     frame.Room,
			Room:      frame.Room,
			Timestamp: now,
			Version:   now,
			Data:      Typing{UserID: userID, Room: frame.Room},
		})
		if err != nil {
			h.logger.Warn(fmt.Sprintf("failed to publish typing of %s: %v", userID, err))
		}
	default:
		h.reply(c, ServerFrame{Type: FrameError, Error: fmt.Sprintf("unknown action '%s'", frame.Action)})
	}
}

// reply queues an acknowledgement for the write loop; it is dropped when the
// client does not read.
func (h *Handler) reply(c *connection, frame ServerFrame) {
	data, err := json.Marshal(frame)
	if err != nil {
		return
	}
	select {
	case c.replies <- data:
	default:
	}
}

func (h *Handler) writeLoop(c *connection) {
	ticker := time.NewTicker(h.pongTimeout * 9 / 10)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.client.Send():
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case payload := <-c.replies:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
