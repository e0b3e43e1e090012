package client

import (
	"encoding/json"
	"time"

	"github.com/s21platform/chat-delivery-service/pkg/reconciler"
)

const (
	typeReactionUpdated = "reaction.updated"
	typeDirectRead      = "direct.read"
)

// Event is the wire shape of pushed and polled changes.
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Scope     string          `json:"scope"`
	Room      string          `json:"room,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	Version   time.Time       `json:"version"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Item maps the event onto the reconciler. Reaction updates patch the message
// they target and read receipts are signals; everything else is a full copy
// of its entity.
func (e Event) Item() reconciler.Item {
	kind := reconciler.KindEntity
	switch e.Type {
	case typeReactionUpdated:
		kind = reconciler.KindPatch
	case typeDirectRead:
		kind = reconciler.KindSignal
	}

	return reconciler.Item{
		ID:        e.ID,
		Kind:      kind,
		Type:      e.Type,
		Scope:     e.Scope,
		Timestamp: e.Timestamp,
		Version:   e.Version,
		Data:      e.Data,
	}
}
