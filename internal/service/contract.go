//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/chat-delivery-service/internal/model"
)

type DBRepo interface {
	UserExists(ctx context.Context, userID string) (bool, error)
	GetCommunityRole(ctx context.Context, communityID, userID string) (model.Role, error)

	SaveMessage(ctx context.Context, message *model.Message) error
	GetMessage(ctx context.Context, id uuid.UUID) (*model.Message, error)
	UpdateMessageContent(ctx context.Context, id uuid.UUID, content string, editedAt time.Time) error
	DeleteMessage(ctx context.Context, id uuid.UUID, deletedAt time.Time) error
	GetCommunityMessages(ctx context.Context, communityID string, before time.Time, limit int) (model.MessageList, error)
	GetReplies(ctx context.Context, parentID uuid.UUID, before time.Time, limit int) (model.MessageList, error)
	GetCommunityChanges(ctx context.Context, communityID string, since time.Time) (model.MessageList, []uuid.UUID, error)

	GetOrCreateConversation(ctx context.Context, participantA, participantB string) (*model.Conversation, error)
	GetConversation(ctx context.Context, id uuid.UUID) (*model.Conversation, error)
	TouchConversation(ctx context.Context, id, lastMessageID uuid.UUID, at time.Time, senderID string) error
	MarkConversationRead(ctx context.Context, id uuid.UUID, readerID string, at time.Time) error
	RefreshConversationLastMessage(ctx context.Context, id uuid.UUID) error
	ListConversations(ctx context.Context, userID string) (model.ConversationPreviewList, error)

	SaveDirectMessage(ctx context.Context, message *model.DirectMessage) error
	GetDirectMessage(ctx context.Context, id uuid.UUID) (*model.DirectMessage, error)
	UpdateDirectMessageContent(ctx context.Context, id uuid.UUID, content string, editedAt time.Time) error
	DeleteDirectMessage(ctx context.Context, id uuid.UUID, deletedAt time.Time) error
	GetDirectMessages(ctx context.Context, conversationID uuid.UUID, before time.Time, limit int) (model.DirectMessageList, error)
	GetDirectChanges(ctx context.Context, userID string, conversationID *uuid.UUID, since time.Time) (model.DirectMessageList, []uuid.UUID, error)

	ToggleReaction(ctx context.Context, reaction model.Reaction) error
	GetReactions(ctx context.Context, kind model.ScopeKind, targetIDs []uuid.UUID) (map[uuid.UUID][]model.Reaction, error)

	SaveNotification(ctx context.Context, notification *model.Notification) error
	GetNotifications(ctx context.Context, recipientID string, before time.Time, limit int) (model.NotificationList, error)
	GetNotificationsSince(ctx context.Context, recipientID string, since time.Time) (model.NotificationList, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID, recipientID string) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, room string, event model.Event) error
}
