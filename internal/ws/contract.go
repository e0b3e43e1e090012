//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package ws

import (
	"context"

	"github.com/s21platform/chat-delivery-service/internal/fanout"
	"github.com/s21platform/chat-delivery-service/internal/model"
)

type Hub interface {
	NewClient(userID string) *fanout.Client
	Join(ctx context.Context, client *fanout.Client, room string) error
	Leave(ctx context.Context, client *fanout.Client, room string) error
	Disconnect(ctx context.Context, client *fanout.Client) error
	Publish(ctx context.Context, room string, event model.Event) error
}

type RoomAuthorizer interface {
	CanJoinRoom(ctx context.Context, userID, room string) error
}

type TokenValidator interface {
	Subject(token string) (string, error)
}

type Presence interface {
	SetOnline(ctx context.Context, userID string) error
	SetOffline(ctx context.Context, userID string) error
	SetTyping(ctx context.Context, room, userID string) error
	ClearTyping(ctx context.Context, room, userID string) error
}
