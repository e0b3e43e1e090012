//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/chat-delivery-service/internal/model"
)

type ChatService interface {
	SendCommunityMessage(ctx context.Context, senderID, communityID, content string, replyTo *uuid.UUID) (*model.Message, error)
	SendDirectMessage(ctx context.Context, senderID, recipientID, content string, replyTo *uuid.UUID) (*model.DirectMessage, error)
	CommunityHistory(ctx context.Context, requesterID, communityID string, before *time.Time, limit int) (model.MessageList, bool, error)
	DirectHistory(ctx context.Context, requesterID string, conversationID uuid.UUID, before *time.Time, limit int) (model.DirectMessageList, bool, error)
	Replies(ctx context.Context, requesterID string, messageID uuid.UUID, before *time.Time, limit int) (model.MessageList, bool, error)
	RemoveCommunityMessage(ctx context.Context, requesterID string, messageID uuid.UUID) error
	RemoveDirectMessage(ctx context.Context, requesterID string, messageID uuid.UUID) error
	EditCommunityMessage(ctx context.Context, requesterID string, messageID uuid.UUID, content string) (*model.Message, error)
	EditDirectMessage(ctx context.Context, requesterID string, messageID uuid.UUID, content string) (*model.DirectMessage, error)
	React(ctx context.Context, userID string, kind model.ScopeKind, targetID uuid.UUID, reactionType string) ([]model.ReactionGroup, error)
	ListConversations(ctx context.Context, userID string) (model.ConversationPreviewList, error)
	MarkConversationRead(ctx context.Context, readerID string, conversationID uuid.UUID) error
	Poll(ctx context.Context, userID string, action model.PollAction, scopeID string, since time.Time) (*model.PollResult, error)
	ListNotifications(ctx context.Context, recipientID string, before *time.Time, limit int) (model.NotificationList, bool, error)
	MarkNotificationRead(ctx context.Context, recipientID string, notificationID uuid.UUID) error
	IsCommunityMember(ctx context.Context, communityID, userID string) (bool, error)
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateSubscribeToken(userID, communityID string) (string, int64, error)
}

type PresenceReader interface {
	Online(ctx context.Context, userIDs []string) ([]string, error)
	Typing(ctx context.Context, room string) ([]string, error)
}

type PollLimiter interface {
	Allow(userID string) bool
}
