package rest

import (
	"time"

	"github.com/s21platform/chat-delivery-service/internal/model"
)

type Error struct {
	Error string `json:"error"`
}

type SendMessageRequest struct {
	Content string  `json:"content"`
	ReplyTo *string `json:"reply_to,omitempty"`
}

type EditMessageRequest struct {
	Content string `json:"content"`
}

type ReactRequest struct {
	Type string `json:"type"`
}

type ReactResponse struct {
	Reactions []model.ReactionGroup `json:"reactions"`
}

type CommunityHistoryResponse struct {
	Messages model.MessageList `json:"messages"`
	HasMore  bool              `json:"has_more"`
}

type DirectHistoryResponse struct {
	Messages model.DirectMessageList `json:"messages"`
	HasMore  bool                    `json:"has_more"`
}

type ConversationLastMessage struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sent_at"`
}

type ConversationItem struct {
	ID          string                   `json:"id"`
	Participant string                   `json:"participant"`
	LastMessage *ConversationLastMessage `json:"last_message"`
	UnreadCount int                      `json:"unread_count"`
}

type ListConversationsResponse struct {
	Conversations []ConversationItem `json:"conversations"`
}

type NotificationsResponse struct {
	Notifications model.NotificationList `json:"notifications"`
	HasMore       bool                   `json:"has_more"`
}

type PresenceResponse struct {
	Online []string `json:"online"`
}

type TypingResponse struct {
	Users []string `json:"users"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// HistoryParams are the query parameters shared by the paged history routes.
type HistoryParams struct {
	Before *time.Time
	Limit  *int
}

type PresenceParams struct {
	UserIDs []string
}

type PollParams struct {
	Action  string
	ScopeID *string
	Since   *int64
}
