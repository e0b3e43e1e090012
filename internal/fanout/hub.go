package fanout

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-delivery-service/internal/model"
)

const (
	defaultCommandBuffer = 1024
	defaultSendBuffer    = 256
)

// Client is one live connection. The hub closes Send when the client is
// disconnected, either on request or because it fell behind.
type Client struct {
	ID     string
	UserID string

	send   chan []byte
	closed atomic.Bool
}

func (c *Client) Send() <-chan []byte {
	return c.send
}

type membership struct {
	client *Client
	room   string
	done   chan error
}

type delivery struct {
	room    string
	payload []byte
}

type query struct {
	room  string
	reply chan int
}

// Hub is the room -> connections registry. All state is owned by the Run
// goroutine; every other method talks to it over channels.
type Hub struct {
	logger     logger_lib.LoggerInterface
	sendBuffer int

	join       chan membership
	leave      chan membership
	disconnect chan membership
	publish    chan delivery
	count      chan query
	stopped    chan struct{}

	rooms   map[string]map[*Client]struct{}
	clients map[*Client]map[string]struct{}
}

func NewHub(logger logger_lib.LoggerInterface, commandBuffer, sendBuffer int) *Hub {
	if commandBuffer <= 0 {
		commandBuffer = defaultCommandBuffer
	}
	if sendBuffer <= 0 {
		sendBuffer = defaultSendBuffer
	}

	return &Hub{
		logger:     logger,
		sendBuffer: sendBuffer,
		join:       make(chan membership),
		leave:      make(chan membership),
		disconnect: make(chan membership),
		publish:    make(chan delivery, commandBuffer),
		count:      make(chan query),
		stopped:    make(chan struct{}),
		rooms:      make(map[string]map[*Client]struct{}),
		clients:    make(map[*Client]map[string]struct{}),
	}
}

func (h *Hub) NewClient(userID string) *Client {
	return &Client{
		ID:     uuid.New().String(),
		UserID: userID,
		send:   make(chan []byte, h.sendBuffer),
	}
}

// Run serves hub commands until ctx is done. On exit every client's Send
// channel is closed.
func (h *Hub) Run(ctx context.Context) {
	h.logger.Info("fan-out hub started")
	defer func() {
		for client := range h.clients {
			h.drop(client)
		}
		close(h.stopped)
		h.logger.Info("fan-out hub stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case m := <-h.join:
			m.done <- h.handleJoin(m.client, m.room)
		case m := <-h.leave:
			h.handleLeave(m.client, m.room)
			m.done <- nil
		case m := <-h.disconnect:
			h.drop(m.client)
			m.done <- nil
		case d := <-h.publish:
			h.handlePublish(d)
		case q := <-h.count:
			q.reply <- len(h.rooms[q.room])
		}
	}
}

// Join adds client to room. Authorization is the caller's concern.
func (h *Hub) Join(ctx context.Context, client *Client, room string) error {
	return h.call(ctx, h.join, membership{client: client, room: room})
}

func (h *Hub) Leave(ctx context.Context, client *Client, room string) error {
	return h.call(ctx, h.leave, membership{client: client, room: room})
}

// Disconnect removes client from every room. When it returns no further
// event is delivered to the client.
func (h *Hub) Disconnect(ctx context.Context, client *Client) error {
	return h.call(ctx, h.disconnect, membership{client: client})
}

// Publish queues event for every connection in room without waiting for the
// delivery. A full command queue drops the event.
func (h *Hub) Publish(_ context.Context, room string, event model.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %v", err)
	}

	select {
	case <-h.stopped:
		return fmt.Errorf("%w: hub is stopped", model.ErrTransport)
	default:
	}

	select {
	case h.publish <- delivery{room: room, payload: payload}:
		return nil
	default:
		h.logger.Warn(fmt.Sprintf("fan-out queue is full, dropped %s for %s", event.Type, room))
		return fmt.Errorf("%w: fan-out queue is full", model.ErrTransport)
	}
}

// Members returns how many connections are in room.
func (h *Hub) Members(ctx context.Context, room string) (int, error) {
	q := query{room: room, reply: make(chan int, 1)}
	select {
	case h.count <- q:
	case <-h.stopped:
		return 0, fmt.Errorf("%w: hub is stopped", model.ErrTransport)
	case <-ctx.Done():
		return 0, ctx.Err()
	}
	return <-q.reply, nil
}

func (h *Hub) call(ctx context.Context, ch chan membership, m membership) error {
	m.done = make(chan error, 1)
	select {
	case ch <- m:
	case <-h.stopped:
		return fmt.Errorf("%w: hub is stopped", model.ErrTransport)
	case <-ctx.Done():
		return ctx.Err()
	}
	return <-m.done
}

func (h *Hub) handleJoin(client *Client, room string) error {
	if client.closed.Load() {
		return fmt.Errorf("%w: connection %s is closed", model.ErrTransport, client.ID)
	}

	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][client] = struct{}{}

	if h.clients[client] == nil {
		h.clients[client] = make(map[string]struct{})
	}
	h.clients[client][room] = struct{}{}
	return nil
}

func (h *Hub) handleLeave(client *Client, room string) {
	delete(h.clients[client], room)
	if members, ok := h.rooms[room]; ok {
		delete(members, client)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

func (h *Hub) handlePublish(d delivery) {
	for client := range h.rooms[d.room] {
		select {
		case client.send <- d.payload:
		default:
			h.logger.Warn(fmt.Sprintf("connection %s of %s is too slow, disconnecting", client.ID, client.UserID))
			h.drop(client)
		}
	}
}

// drop removes client from every room and closes its send channel.
func (h *Hub) drop(client *Client) {
	for room := range h.clients[client] {
		if members, ok := h.rooms[room]; ok {
			delete(members, client)
			if len(members) == 0 {
				delete(h.rooms, room)
			}
		}
	}
	delete(h.clients, client)

	if client.closed.CompareAndSwap(false, true) {
		close(client.send)
	}
}
