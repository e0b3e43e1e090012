package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/chat-delivery-service/internal/model"
)

// Poll returns everything in the requested scope that changed after since,
// oldest first, plus the cursor for the next call. The cursor trails the
// server clock by the poll overlap so rows committed late are not skipped;
// clients dedupe the overlap by entity id.
func (s *Service) Poll(ctx context.Context, userID string, action model.PollAction, scopeID string, since time.Time) (*model.PollResult, error) {
	now := s.clock.Now()
	next := now.Add(-s.pollOverlap)
	if next.Before(since) {
		next = since
	}

	result := &model.PollResult{
		Items:     []model.Event{},
		Removed:   []string{},
		Timestamp: next.UnixMilli(),
		Available: true,
	}

	switch action {
	case model.PollCommunity:
		if err := s.pollCommunity(ctx, userID, strings.TrimSpace(scopeID), since, result); err != nil {
			return nil, err
		}
	case model.PollDirect:
		if err := s.pollDirect(ctx, userID, strings.TrimSpace(scopeID), since, result); err != nil {
			return nil, err
		}
	case model.PollNotifications:
		if err := s.pollNotifications(ctx, userID, since, result); err != nil {
			return nil, err
		}
	case model.PollPresence, model.PollTyping:
		// ephemeral state has no meaning outside the live channel
		result.Available = false
		result.Timestamp = now.UnixMilli()
	default:
		return nil, fmt.Errorf("%w: unknown poll action '%s'", model.ErrValidation, action)
	}

	return result, nil
}

func (s *Service) pollCommunity(ctx context.Context, userID, communityID string, since time.Time, result *model.PollResult) error {
	if communityID == "" {
		return fmt.Errorf("%w: scope_id is required for community polls", model.ErrValidation)
	}

	if err := s.requireMember(ctx, communityID, userID); err != nil {
		return err
	}

	messages, removed, err := s.repository.GetCommunityChanges(ctx, communityID, since)
	if err != nil {
		return fmt.Errorf("failed to get community changes: %w", err)
	}

	if err := s.attachMessageReactions(ctx, messages); err != nil {
		return err
	}

	for i := range messages {
		message := &messages[i]
		event := model.Event{
			ID:        message.ID.String(),
			Type:      model.EventMessageCreated,
			Scope:     message.Scope().Key(),
			Timestamp: message.CreatedAt,
			Version:   message.ChangedAt(),
			Data:      message,
		}
		if !message.CreatedAt.After(since) {
			event.Type = model.EventMessageUpdated
		}
		result.Items = append(result.Items, event)
	}

	result.Removed = appendIDs(result.Removed, removed)
	return nil
}

func (s *Service) pollDirect(ctx context.Context, userID, scopeID string, since time.Time, result *model.PollResult) error {
	var conversationID *uuid.UUID
	if scopeID != "" {
		id, err := uuid.Parse(scopeID)
		if err != nil {
			return fmt.Errorf("%w: invalid conversation id '%s'", model.ErrValidation, scopeID)
		}
		if _, err := s.participantConversation(ctx, id, userID); err != nil {
			return err
		}
		conversationID = &id
	}

	messages, removed, err := s.repository.GetDirectChanges(ctx, userID, conversationID, since)
	if err != nil {
		return fmt.Errorf("failed to get direct changes: %w", err)
	}

	if err := s.attachDirectReactions(ctx, messages); err != nil {
		return err
	}

	for i := range messages {
		message := &messages[i]
		event := model.Event{
			ID:        message.ID.String(),
			Type:      model.EventDirectCreated,
			Scope:     message.Scope().Key(),
			Timestamp: message.CreatedAt,
			Version:   message.ChangedAt(),
			Data:      message,
		}
		if !message.CreatedAt.After(since) {
			event.Type = model.EventDirectUpdated
		}
		result.Items = append(result.Items, event)
	}

	result.Removed = appendIDs(result.Removed, removed)
	return nil
}

func (s *Service) pollNotifications(ctx context.Context, userID string, since time.Time, result *model.PollResult) error {
	notifications, err := s.repository.GetNotificationsSince(ctx, userID, since)
	if err != nil {
		return fmt.Errorf("failed to get notifications: %w", err)
	}

	for i := range notifications {
		notification := &notifications[i]
		result.Items = append(result.Items, model.Event{
			ID:        notification.ID.String(),
			Type:      model.EventNotificationCreated,
			Scope:     model.NotificationsScope,
			Timestamp: notification.CreatedAt,
			Version:   notification.CreatedAt,
			Data:      notification,
		})
	}
	return nil
}

func appendIDs(dst []string, ids []uuid.UUID) []string {
	for _, id := range ids {
		dst = append(dst, id.String())
	}
	return dst
}
