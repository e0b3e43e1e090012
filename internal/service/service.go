package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-delivery-service/internal/model"
	"github.com/s21platform/chat-delivery-service/internal/pkg/tx"
	"github.com/s21platform/chat-delivery-service/internal/pkg/validator"
)

const (
	conversationCreateAttempts = 3
	defaultPollOverlap         = 2 * time.Second
)

type Service struct {
	repository  DBRepo
	publisher   Publisher
	validator   *validator.Validator
	logger      logger_lib.LoggerInterface
	clock       *clock
	pollOverlap time.Duration
	group       singleflight.Group
}

type Option func(*Service)

// WithNow replaces the wall clock used for server-assigned timestamps.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		s.clock = newClock(now)
	}
}

// WithPollOverlap sets how far behind "now" the next poll cursor is placed.
func WithPollOverlap(overlap time.Duration) Option {
	return func(s *Service) {
		if overlap >= 0 {
			s.pollOverlap = overlap
		}
	}
}

func New(repo DBRepo, publisher Publisher, logger logger_lib.LoggerInterface, opts ...Option) *Service {
	s := &Service{
		repository:  repo,
		publisher:   publisher,
		validator:   validator.New(),
		logger:      logger,
		clock:       newClock(time.Now),
		pollOverlap: defaultPollOverlap,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) SendCommunityMessage(ctx context.Context, senderID, communityID, content string, replyTo *uuid.UUID) (*model.Message, error) {
	if err := s.validator.ValidateContent(content); err != nil {
		return nil, err
	}

	if err := s.requireMember(ctx, communityID, senderID); err != nil {
		return nil, err
	}

	if replyTo != nil {
		parent, err := s.repository.GetMessage(ctx, *replyTo)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, fmt.Errorf("%w: reply target %s does not exist", model.ErrValidation, replyTo)
			}
			return nil, fmt.Errorf("failed to get reply target: %w", err)
		}
		if parent.CommunityID != communityID {
			return nil, fmt.Errorf("%w: reply target %s belongs to another community", model.ErrValidation, replyTo)
		}
	}

	message := &model.Message{
		ID:          uuid.New(),
		CommunityID: communityID,
		SenderID:    senderID,
		Content:     content,
		ReplyTo:     replyTo,
		CreatedAt:   s.clock.Now(),
		Reactions:   []model.ReactionGroup{},
	}

	if err := s.repository.SaveMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	s.publish(ctx, model.CommunityRoom(communityID), model.Event{
		ID:        message.ID.String(),
		Type:      model.EventMessageCreated,
		Scope:     message.Scope().Key(),
		Timestamp: message.CreatedAt,
		Version:   message.CreatedAt,
		Data:      message,
	})

	return message, nil
}

func (s *Service) SendDirectMessage(ctx context.Context, senderID, recipientID, content string, replyTo *uuid.UUID) (*model.DirectMessage, error) {
	if err := s.validator.ValidateContent(content); err != nil {
		return nil, err
	}

	participantA, participantB, err := model.CanonicalPair(senderID, recipientID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repository.UserExists(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check recipient: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s is not a valid direct counterpart", model.ErrAuthorization, recipientID)
	}

	conversation, err := s.GetOrCreateConversation(ctx, participantA, participantB)
	if err != nil {
		return nil, err
	}

	if replyTo != nil {
		parent, err := s.repository.GetDirectMessage(ctx, *replyTo)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, fmt.Errorf("%w: reply target %s does not exist", model.ErrValidation, replyTo)
			}
			return nil, fmt.Errorf("failed to get reply target: %w", err)
		}
		if parent.ConversationID != conversation.ID {
			return nil, fmt.Errorf("%w: reply target %s belongs to another conversation", model.ErrValidation, replyTo)
		}
	}

	message := &model.DirectMessage{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		SenderID:       senderID,
		RecipientID:    recipientID,
		Content:        content,
		ReplyTo:        replyTo,
		CreatedAt:      s.clock.Now(),
		Reactions:      []model.ReactionGroup{},
	}

	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		if err := s.repository.SaveDirectMessage(ctx, message); err != nil {
			return fmt.Errorf("failed to save direct message: %w", err)
		}

		if err := s.repository.TouchConversation(ctx, conversation.ID, message.ID, message.CreatedAt, senderID); err != nil {
			return fmt.Errorf("failed to touch conversation: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	event := model.Event{
		ID:        message.ID.String(),
		Type:      model.EventDirectCreated,
		Scope:     message.Scope().Key(),
		Timestamp: message.CreatedAt,
		Version:   message.CreatedAt,
		Data:      message,
	}
	s.publish(ctx, model.UserRoom(recipientID), event)
	s.publish(ctx, model.UserRoom(senderID), event)

	return message, nil
}

// GetOrCreateConversation returns the single conversation of the pair,
// creating it on first contact. Concurrent callers for the same pair share
// one store round trip; a conflict reported by the store is retried.
func (s *Service) GetOrCreateConversation(ctx context.Context, userA, userB string) (*model.Conversation, error) {
	participantA, participantB, err := model.CanonicalPair(userA, userB)
	if err != nil {
		return nil, err
	}

	key := participantA + "\x00" + participantB
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		var lastErr error
		for attempt := 0; attempt < conversationCreateAttempts; attempt++ {
			conversation, err := s.repository.GetOrCreateConversation(ctx, participantA, participantB)
			if err == nil {
				return conversation, nil
			}
			if !errors.Is(err, model.ErrConflict) {
				return nil, fmt.Errorf("failed to get or create conversation: %w", err)
			}
			lastErr = err
		}
		return nil, fmt.Errorf("failed to resolve conversation after %d attempts: %w", conversationCreateAttempts, lastErr)
	})
	if err != nil {
		return nil, err
	}

	return v.(*model.Conversation), nil
}

func (s *Service) CommunityHistory(ctx context.Context, requesterID, communityID string, before *time.Time, limit int) (model.MessageList, bool, error) {
	if err := s.validator.ValidateLimit(limit); err != nil {
		return nil, false, err
	}

	if err := s.requireMember(ctx, communityID, requesterID); err != nil {
		return nil, false, err
	}

	messages, err := s.repository.GetCommunityMessages(ctx, communityID, s.cursor(before), limit)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get community messages: %w", err)
	}

	if err := s.attachMessageReactions(ctx, messages); err != nil {
		return nil, false, err
	}

	reverseMessages(messages)
	return messages, len(messages) == limit, nil
}

func (s *Service) Replies(ctx context.Context, requesterID string, messageID uuid.UUID, before *time.Time, limit int) (model.MessageList, bool, error) {
	if err := s.validator.ValidateLimit(limit); err != nil {
		return nil, false, err
	}

	parent, err := s.repository.GetMessage(ctx, messageID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get message: %w", err)
	}

	if err := s.requireMember(ctx, parent.CommunityID, requesterID); err != nil {
		return nil, false, err
	}

	replies, err := s.repository.GetReplies(ctx, messageID, s.cursor(before), limit)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get replies: %w", err)
	}

	if err := s.attachMessageReactions(ctx, replies); err != nil {
		return nil, false, err
	}

	reverseMessages(replies)
	return replies, len(replies) == limit, nil
}

func (s *Service) DirectHistory(ctx context.Context, requesterID string, conversationID uuid.UUID, before *time.Time, limit int) (model.DirectMessageList, bool, error) {
	if err := s.validator.ValidateLimit(limit); err != nil {
		return nil, false, err
	}

	if _, err := s.participantConversation(ctx, conversationID, requesterID); err != nil {
		return nil, false, err
	}

	messages, err := s.repository.GetDirectMessages(ctx, conversationID, s.cursor(before), limit)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get direct messages: %w", err)
	}

	if err := s.attachDirectReactions(ctx, messages); err != nil {
		return nil, false, err
	}

	reverseDirectMessages(messages)
	return messages, len(messages) == limit, nil
}

func (s *Service) RemoveCommunityMessage(ctx context.Context, requesterID string, messageID uuid.UUID) error {
	message, err := s.repository.GetMessage(ctx, messageID)
	if err != nil {
		return fmt.Errorf("failed to get message: %w", err)
	}

	if message.SenderID != requesterID {
		role, err := s.repository.GetCommunityRole(ctx, message.CommunityID, requesterID)
		if err != nil {
			return fmt.Errorf("failed to get community role: %w", err)
		}
		if !role.CanModerate() {
			return fmt.Errorf("%w: only the sender or a moderator can delete message %s", model.ErrAuthorization, messageID)
		}
	}

	deletedAt := s.clock.Now()
	if err := s.repository.DeleteMessage(ctx, messageID, deletedAt); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	s.publish(ctx, model.CommunityRoom(message.CommunityID), model.Event{
		ID:        message.ID.String(),
		Type:      model.EventMessageDeleted,
		Scope:     message.Scope().Key(),
		Timestamp: message.CreatedAt,
		Version:   deletedAt,
	})

	return nil
}

// RemoveDirectMessage deletes the shared record for both participants.
func (s *Service) RemoveDirectMessage(ctx context.Context, requesterID string, messageID uuid.UUID) error {
	message, err := s.repository.GetDirectMessage(ctx, messageID)
	if err != nil {
		return fmt.Errorf("failed to get direct message: %w", err)
	}

	if !message.IsParticipant(requesterID) {
		return fmt.Errorf("%w: only the sender or the recipient can delete message %s", model.ErrAuthorization, messageID)
	}

	deletedAt := s.clock.Now()
	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		if err := s.repository.DeleteDirectMessage(ctx, messageID, deletedAt); err != nil {
			return fmt.Errorf("failed to delete direct message: %w", err)
		}

		if err := s.repository.RefreshConversationLastMessage(ctx, message.ConversationID); err != nil {
			return fmt.Errorf("failed to refresh conversation: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	event := model.Event{
		ID:        message.ID.String(),
		Type:      model.EventDirectDeleted,
		Scope:     message.Scope().Key(),
		Timestamp: message.CreatedAt,
		Version:   deletedAt,
	}
	s.publish(ctx, model.UserRoom(message.SenderID), event)
	s.publish(ctx, model.UserRoom(message.RecipientID), event)

	return nil
}

func (s *Service) EditCommunityMessage(ctx context.Context, requesterID string, messageID uuid.UUID, content string) (*model.Message, error) {
	if err := s.validator.ValidateContent(content); err != nil {
		return nil, err
	}

	message, err := s.repository.GetMessage(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	if message.SenderID != requesterID {
		return nil, fmt.Errorf("%w: only the sender can edit message %s", model.ErrAuthorization, messageID)
	}

	editedAt := s.clock.Now()
	if err := s.repository.UpdateMessageContent(ctx, messageID, content, editedAt); err != nil {
		return nil, fmt.Errorf("failed to update message: %w", err)
	}

	message.Content = content
	message.EditedAt = &editedAt
	updated := model.MessageList{*message}
	if err := s.attachMessageReactions(ctx, updated); err != nil {
		return nil, err
	}
	message = &updated[0]

	s.publish(ctx, model.CommunityRoom(message.CommunityID), model.Event{
		ID:        message.ID.String(),
		Type:      model.EventMessageUpdated,
		Scope:     message.Scope().Key(),
		Timestamp: message.CreatedAt,
		Version:   message.ChangedAt(),
		Data:      message,
	})

	return message, nil
}

func (s *Service) EditDirectMessage(ctx context.Context, requesterID string, messageID uuid.UUID, content string) (*model.DirectMessage, error) {
	if err := s.validator.ValidateContent(content); err != nil {
		return nil, err
	}

	message, err := s.repository.GetDirectMessage(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get direct message: %w", err)
	}

	if message.SenderID != requesterID {
		return nil, fmt.Errorf("%w: only the sender can edit message %s", model.ErrAuthorization, messageID)
	}

	editedAt := s.clock.Now()
	if err := s.repository.UpdateDirectMessageContent(ctx, messageID, content, editedAt); err != nil {
		return nil, fmt.Errorf("failed to update direct message: %w", err)
	}

	message.Content = content
	message.EditedAt = &editedAt
	updated := model.DirectMessageList{*message}
	if err := s.attachDirectReactions(ctx, updated); err != nil {
		return nil, err
	}
	message = &updated[0]

	event := model.Event{
		ID:        message.ID.String(),
		Type:      model.EventDirectUpdated,
		Scope:     message.Scope().Key(),
		Timestamp: message.CreatedAt,
		Version:   message.ChangedAt(),
		Data:      message,
	}
	s.publish(ctx, model.UserRoom(message.SenderID), event)
	s.publish(ctx, model.UserRoom(message.RecipientID), event)

	return message, nil
}

// React toggles userID's reaction on a message: the same type removes it, a
// different type replaces it. It returns the resulting reaction groups.
func (s *Service) React(ctx context.Context, userID string, kind model.ScopeKind, targetID uuid.UUID, reactionType string) ([]model.ReactionGroup, error) {
	if err := model.ValidateReactionType(reactionType); err != nil {
		return nil, err
	}

	var (
		scope     model.Scope
		createdAt time.Time
		rooms     []string
	)
	switch kind {
	case model.ScopeCommunity:
		message, err := s.repository.GetMessage(ctx, targetID)
		if err != nil {
			return nil, fmt.Errorf("failed to get message: %w", err)
		}
		if err := s.requireMember(ctx, message.CommunityID, userID); err != nil {
			return nil, err
		}
		scope = message.Scope()
		createdAt = message.CreatedAt
		rooms = []string{model.CommunityRoom(message.CommunityID)}
	case model.ScopeDirect:
		message, err := s.repository.GetDirectMessage(ctx, targetID)
		if err != nil {
			return nil, fmt.Errorf("failed to get direct message: %w", err)
		}
		if !message.IsParticipant(userID) {
			return nil, fmt.Errorf("%w: direct message %s not found", model.ErrNotFound, targetID)
		}
		scope = message.Scope()
		createdAt = message.CreatedAt
		rooms = []string{model.UserRoom(message.SenderID), model.UserRoom(message.RecipientID)}
	default:
		return nil, fmt.Errorf("%w: unknown message kind '%s'", model.ErrValidation, kind)
	}

	now := s.clock.Now()
	err := tx.TxExecute(ctx, func(ctx context.Context) error {
		return s.repository.ToggleReaction(ctx, model.Reaction{
			TargetKind: kind,
			TargetID:   targetID,
			UserID:     userID,
			Type:       reactionType,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle reaction: %w", err)
	}

	reactions, err := s.repository.GetReactions(ctx, kind, []uuid.UUID{targetID})
	if err != nil {
		return nil, fmt.Errorf("failed to get reactions: %w", err)
	}
	groups := model.GroupReactions(reactions[targetID])

	for _, room := range rooms {
		s.publish(ctx, room, model.Event{
			ID:        targetID.String(),
			Type:      model.EventReactionUpdated,
			Scope:     scope.Key(),
			Timestamp: createdAt,
			Version:   now,
			Data:      groups,
		})
	}

	return groups, nil
}

// CanJoinRoom authorizes a live subscription: users may join their own
// personal channel and the rooms of communities they belong to.
func (s *Service) CanJoinRoom(ctx context.Context, userID, room string) error {
	if room == model.UserRoom(userID) {
		return nil
	}

	communityID, ok := model.CommunityFromRoom(room)
	if !ok {
		return fmt.Errorf("%w: room '%s' is not available", model.ErrAuthorization, room)
	}

	return s.requireMember(ctx, communityID, userID)
}

func (s *Service) IsCommunityMember(ctx context.Context, communityID, userID string) (bool, error) {
	role, err := s.repository.GetCommunityRole(ctx, communityID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to get community role: %w", err)
	}
	return role.IsMember(), nil
}

// ----------------------------- helpers -----------------------------

func (s *Service) requireMember(ctx context.Context, communityID, userID string) error {
	isMember, err := s.IsCommunityMember(ctx, communityID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return fmt.Errorf("%w: user %s is not a member of community %s", model.ErrAuthorization, userID, communityID)
	}
	return nil
}

func (s *Service) participantConversation(ctx context.Context, conversationID uuid.UUID, userID string) (*model.Conversation, error) {
	conversation, err := s.repository.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	if !conversation.HasParticipant(userID) {
		return nil, fmt.Errorf("%w: user %s is not a participant of conversation %s", model.ErrAuthorization, userID, conversationID)
	}
	return conversation, nil
}

func (s *Service) cursor(before *time.Time) time.Time {
	if before == nil || before.IsZero() {
		return s.clock.Now().Add(time.Microsecond)
	}
	return *before
}

func (s *Service) attachMessageReactions(ctx context.Context, messages model.MessageList) error {
	if len(messages) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(messages))
	for i := range messages {
		ids[i] = messages[i].ID
	}

	reactions, err := s.repository.GetReactions(ctx, model.ScopeCommunity, ids)
	if err != nil {
		return fmt.Errorf("failed to get reactions: %w", err)
	}

	for i := range messages {
		messages[i].Reactions = model.GroupReactions(reactions[messages[i].ID])
	}
	return nil
}

func (s *Service) attachDirectReactions(ctx context.Context, messages model.DirectMessageList) error {
	if len(messages) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(messages))
	for i := range messages {
		ids[i] = messages[i].ID
	}

	reactions, err := s.repository.GetReactions(ctx, model.ScopeDirect, ids)
	if err != nil {
		return fmt.Errorf("failed to get reactions: %w", err)
	}

	for i := range messages {
		messages[i].Reactions = model.GroupReactions(reactions[messages[i].ID])
	}
	return nil
}

func (s *Service) publish(ctx context.Context, room string, event model.Event) {
	event.Room = room
	if err := s.publisher.Publish(ctx, room, event); err != nil {
		s.logger.Warn(fmt.Sprintf("failed to publish %s to %s: %v", event.Type, room, err))
	}
}

func reverseMessages(messages model.MessageList) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}

func reverseDirectMessages(messages model.DirectMessageList) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}
