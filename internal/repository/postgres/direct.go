package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/s21platform/chat-delivery-service/internal/model"
)

var directMessageColumns = []string{
	"id",
	"conversation_id",
	"sender_id",
	"recipient_id",
	"content",
	"reply_to",
	"created_at",
	"edited_at",
	"is_read",
	"read_at",
	"deleted_at",
	"reactions_changed_at",
}

func (r *Repository) SaveDirectMessage(ctx context.Context, message *model.DirectMessage) error {
	query, args, err := sq.Insert("direct_messages").
		Columns("id", "conversation_id", "sender_id", "recipient_id", "content", "reply_to", "created_at").
		Values(message.ID, message.ConversationID, message.SenderID, message.RecipientID, message.Content, message.ReplyTo, message.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save direct message: %w", storeError(err))
	}

	return nil
}

func (r *Repository) GetDirectMessage(ctx context.Context, id uuid.UUID) (*model.DirectMessage, error) {
	query, args, err := sq.Select(directMessageColumns...).
		From("direct_messages").
		Where(sq.Eq{"id": id.String()}).
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.DirectMessage
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get direct message %s: %w", id, storeError(err))
	}

	return &message, nil
}

func (r *Repository) UpdateDirectMessageContent(ctx context.Context, id uuid.UUID, content string, editedAt time.Time) error {
	query, args, err := sq.Update("direct_messages").
		Set("content", content).
		Set("edited_at", editedAt).
		Where(sq.Eq{"id": id.String()}).
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.execOne(ctx, query, args, fmt.Sprintf("direct message %s", id))
}

func (r *Repository) DeleteDirectMessage(ctx context.Context, id uuid.UUID, deletedAt time.Time) error {
	query, args, err := sq.Update("direct_messages").
		Set("deleted_at", deletedAt).
		Where(sq.Eq{"id": id.String()}).
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.execOne(ctx, query, args, fmt.Sprintf("direct message %s", id))
}

func (r *Repository) GetDirectMessages(ctx context.Context, conversationID uuid.UUID, before time.Time, limit int) (model.DirectMessageList, error) {
	if limit <= 0 {
		limit = 50
	}

	query, args, err := sq.Select(directMessageColumns...).
		From("direct_messages").
		Where(sq.Eq{"conversation_id": conversationID.String()}).
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.Lt{"created_at": before}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.DirectMessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get direct messages: %w", storeError(err))
	}

	return messages, nil
}

// GetDirectChanges returns direct messages of userID created, edited, read or
// reacted to after since, plus ids deleted after since. A nil conversationID covers every
// conversation of the user.
func (r *Repository) GetDirectChanges(ctx context.Context, userID string, conversationID *uuid.UUID, since time.Time) (model.DirectMessageList, []uuid.UUID, error) {
	filter := sq.And{
		sq.Or{
			sq.Eq{"sender_id": userID},
			sq.Eq{"recipient_id": userID},
		},
	}
	if conversationID != nil {
		filter = append(filter, sq.Eq{"conversation_id": conversationID.String()})
	}

	query, args, err := sq.Select(directMessageColumns...).
		From("direct_messages").
		Where(filter).
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.Or{
			sq.Gt{"created_at": since},
			sq.Gt{"edited_at": since},
			sq.Gt{"read_at": since},
			sq.Gt{"reactions_changed_at": since},
		}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.DirectMessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get direct changes: %w", storeError(err))
	}

	removed, err := r.removedSince(ctx, "direct_messages", filter, since)
	if err != nil {
		return nil, nil, err
	}

	return messages, removed, nil
}
