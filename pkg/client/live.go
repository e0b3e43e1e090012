package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/s21platform/chat-delivery-service/pkg/reconciler"
)

const (
	eventBuffer = 256

	frameJoined = "joined"
	frameLeft   = "left"
	frameError  = "error"
	eventTyping = "typing"
)

type joinFrame struct {
	Action string `json:"action"`
	Room   string `json:"room"`
}

// WebSocket is the live transport over the /ws endpoint. Rooms are joined on
// every connect; the personal room is joined by the server.
type WebSocket struct {
	url    string
	rooms  []string
	dialer *websocket.Dialer

	mu   sync.Mutex
	conn *websocket.Conn
	done chan struct{}
}

func NewWebSocket(wsURL, token string, rooms []string) (*WebSocket, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse websocket url: %v", err)
	}
	query := u.Query()
	query.Set("token", token)
	u.RawQuery = query.Encode()

	return &WebSocket{
		url:    u.String(),
		rooms:  rooms,
		dialer: websocket.DefaultDialer,
	}, nil
}

func (w *WebSocket) Connect(ctx context.Context) (<-chan reconciler.Item, error) {
	conn, _, err := w.dialer.DialContext(ctx, w.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial websocket: %v", err)
	}

	for _, room := range w.rooms {
		if err := conn.WriteJSON(joinFrame{Action: "join", Room: room}); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to join %s: %v", room, err)
		}
	}

	done := make(chan struct{})

	w.mu.Lock()
	w.closeLocked()
	w.conn = conn
	w.done = done
	w.mu.Unlock()

	events := make(chan reconciler.Item, eventBuffer)
	go w.readLoop(conn, events, done)

	return events, nil
}

// Close drops the current connection. The read loop may already have closed
// it after a server hang-up, so close errors are not reported.
func (w *WebSocket) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closeLocked()
	return nil
}

func (w *WebSocket) closeLocked() {
	if w.conn == nil {
		return
	}
	close(w.done)
	_ = w.conn.Close()
	w.conn = nil
	w.done = nil
}

func (w *WebSocket) readLoop(conn *websocket.Conn, events chan<- reconciler.Item, done <-chan struct{}) {
	defer close(events)
	defer func() { _ = conn.Close() }()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			continue
		}

		switch event.Type {
		case frameJoined, frameLeft, frameError, eventTyping:
			continue
		}
		if event.ID == "" {
			continue
		}

		select {
		case events <- event.Item():
		case <-done:
			return
		}
	}
}
