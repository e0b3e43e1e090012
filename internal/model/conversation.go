package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Conversation is the single row describing one unordered pair of users.
// ParticipantA < ParticipantB always holds.
type Conversation struct {
	ID            uuid.UUID      `json:"id"`
	ParticipantA  string         `json:"participant_a"`
	ParticipantB  string         `json:"participant_b"`
	LastMessageID *uuid.UUID     `json:"last_message_id,omitempty"`
	LastMessageAt *time.Time     `json:"last_message_at,omitempty"`
	UnreadCount   map[string]int `json:"unread_count"`
	CreatedAt     time.Time      `json:"created_at"`
}

// ConversationRow is the storage shape of a Conversation.
type ConversationRow struct {
	ID            uuid.UUID  `db:"id"`
	ParticipantA  string     `db:"participant_a"`
	ParticipantB  string     `db:"participant_b"`
	LastMessageID *uuid.UUID `db:"last_message_id"`
	LastMessageAt *time.Time `db:"last_message_at"`
	UnreadA       int        `db:"unread_a"`
	UnreadB       int        `db:"unread_b"`
	CreatedAt     time.Time  `db:"created_at"`
}

// CanonicalPair orders two distinct user ids. It fails for equal or empty ids.
func CanonicalPair(userA, userB string) (string, string, error) {
	if userA == "" || userB == "" {
		return "", "", fmt.Errorf("%w: conversation participant id is empty", ErrValidation)
	}
	if userA == userB {
		return "", "", fmt.Errorf("%w: conversation requires two distinct participants", ErrValidation)
	}
	if userA > userB {
		return userB, userA, nil
	}
	return userA, userB, nil
}

// NewConversation builds a Conversation from its row, enforcing the canonical
// pair and the two-key unread invariant.
func NewConversation(row ConversationRow) (*Conversation, error) {
	a, b, err := CanonicalPair(row.ParticipantA, row.ParticipantB)
	if err != nil {
		return nil, err
	}
	if a != row.ParticipantA {
		return nil, fmt.Errorf("%w: participants of conversation %s are not in canonical order", ErrStore, row.ID)
	}
	if row.UnreadA < 0 || row.UnreadB < 0 {
		return nil, fmt.Errorf("%w: negative unread counter in conversation %s", ErrStore, row.ID)
	}

	return &Conversation{
		ID:            row.ID,
		ParticipantA:  a,
		ParticipantB:  b,
		LastMessageID: row.LastMessageID,
		LastMessageAt: row.LastMessageAt,
		UnreadCount: map[string]int{
			a: row.UnreadA,
			b: row.UnreadB,
		},
		CreatedAt: row.CreatedAt,
	}, nil
}

func (c *Conversation) HasParticipant(userID string) bool {
	return c.ParticipantA == userID || c.ParticipantB == userID
}

// Counterpart returns the other participant, or "" when userID is not one.
func (c *Conversation) Counterpart(userID string) string {
	switch userID {
	case c.ParticipantA:
		return c.ParticipantB
	case c.ParticipantB:
		return c.ParticipantA
	}
	return ""
}

type ConversationPreviewList []ConversationPreview

// ConversationPreview is a conversation as seen by one of its participants.
type ConversationPreview struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	Participant        string     `db:"participant" json:"participant"`
	LastMessageID      *uuid.UUID `db:"last_message_id" json:"last_message_id,omitempty"`
	LastMessageContent *string    `db:"last_message_content" json:"last_message_content,omitempty"`
	LastMessageAt      *time.Time `db:"last_message_at" json:"last_message_at,omitempty"`
	UnreadCount        int        `db:"unread_count" json:"unread_count"`
}
