package model

import (
	"time"

	"github.com/google/uuid"
)

const MaxContentLength = 2000

type MessageList []Message

type Message struct {
	ID                 uuid.UUID       `db:"id" json:"id"`
	CommunityID        string          `db:"community_id" json:"community_id"`
	SenderID           string          `db:"sender_id" json:"sender_id"`
	Content            string          `db:"content" json:"content"`
	ReplyTo            *uuid.UUID      `db:"reply_to" json:"reply_to,omitempty"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
	EditedAt           *time.Time      `db:"edited_at" json:"edited_at,omitempty"`
	DeletedAt          *time.Time      `db:"deleted_at" json:"-"`
	ReactionsChangedAt *time.Time      `db:"reactions_changed_at" json:"-"`
	Reactions          []ReactionGroup `db:"-" json:"reactions"`
}

func (m *Message) Scope() Scope {
	return CommunityScope(m.CommunityID)
}

func (m *Message) IsEdited() bool {
	return m.EditedAt != nil
}

// ChangedAt is the version of the message: the latest of its creation, edit
// and reaction times.
func (m *Message) ChangedAt() time.Time {
	return latest(m.CreatedAt, m.EditedAt, m.ReactionsChangedAt)
}

type DirectMessageList []DirectMessage

type DirectMessage struct {
	ID                 uuid.UUID       `db:"id" json:"id"`
	ConversationID     uuid.UUID       `db:"conversation_id" json:"conversation_id"`
	SenderID           string          `db:"sender_id" json:"sender_id"`
	RecipientID        string          `db:"recipient_id" json:"recipient_id"`
	Content            string          `db:"content" json:"content"`
	ReplyTo            *uuid.UUID      `db:"reply_to" json:"reply_to,omitempty"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
	EditedAt           *time.Time      `db:"edited_at" json:"edited_at,omitempty"`
	IsRead             bool            `db:"is_read" json:"is_read"`
	ReadAt             *time.Time      `db:"read_at" json:"read_at,omitempty"`
	DeletedAt          *time.Time      `db:"deleted_at" json:"-"`
	ReactionsChangedAt *time.Time      `db:"reactions_changed_at" json:"-"`
	Reactions          []ReactionGroup `db:"-" json:"reactions"`
}

func (m *DirectMessage) Scope() Scope {
	return DirectScope(m.ConversationID.String())
}

// IsParticipant reports whether userID is the sender or the recipient.
func (m *DirectMessage) IsParticipant(userID string) bool {
	return m.SenderID == userID || m.RecipientID == userID
}

// ChangedAt is the version of the message: the latest of its creation, edit,
// read and reaction times.
func (m *DirectMessage) ChangedAt() time.Time {
	return latest(m.CreatedAt, m.EditedAt, m.ReadAt, m.ReactionsChangedAt)
}

func latest(base time.Time, others ...*time.Time) time.Time {
	for _, at := range others {
		if at != nil && at.After(base) {
			base = *at
		}
	}
	return base
}
