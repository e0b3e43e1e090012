package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/s21platform/chat-delivery-service/internal/model"
	"github.com/s21platform/chat-delivery-service/internal/pkg/tx"
)

type ReadReceipt struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	ReaderID       string    `json:"reader_id"`
}

func (s *Service) ListConversations(ctx context.Context, userID string) (model.ConversationPreviewList, error) {
	conversations, err := s.repository.ListConversations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, nil
}

// MarkConversationRead resets the reader's unread counter to zero and marks
// every message addressed to the reader as read.
func (s *Service) MarkConversationRead(ctx context.Context, readerID string, conversationID uuid.UUID) error {
	conversation, err := s.repository.GetConversation(ctx, conversationID)
	if err != nil {
		return fmt.Errorf("failed to get conversation: %w", err)
	}

	if !conversation.HasParticipant(readerID) {
		return fmt.Errorf("%w: conversation %s not found", model.ErrNotFound, conversationID)
	}

	readAt := s.clock.Now()
	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		return s.repository.MarkConversationRead(ctx, conversationID, readerID, readAt)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to mark conversation read: %w", err)
	}

	s.publish(ctx, model.UserRoom(conversation.Counterpart(readerID)), model.Event{
		ID:        conversationID.String(),
		Type:      model.EventDirectRead,
		Scope:     model.DirectScope(conversationID.String()).Key(),
		Timestamp: readAt,
		Version:   readAt,
		Data: ReadReceipt{
			ConversationID: conversationID,
			ReaderID:       readerID,
		},
	})

	return nil
}
