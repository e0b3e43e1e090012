package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/s21platform/chat-delivery-service/internal/model"
)

var messageColumns = []string{
	"id",
	"community_id",
	"sender_id",
	"content",
	"reply_to",
	"created_at",
	"edited_at",
	"deleted_at",
	"reactions_changed_at",
}

func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query := sq.Insert("messages").
		Columns("id", "community_id", "sender_id", "content", "reply_to", "created_at").
		Values(message.ID, message.CommunityID, message.SenderID, message.Content, message.ReplyTo, message.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %w", storeError(err))
	}

	return nil
}

func (r *Repository) GetMessage(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"id": id.String()}).
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", id, storeError(err))
	}

	return &message, nil
}

func (r *Repository) UpdateMessageContent(ctx context.Context, id uuid.UUID, content string, editedAt time.Time) error {
	query, args, err := sq.Update("messages").
		Set("content", content).
		Set("edited_at", editedAt).
		Where(sq.Eq{"id": id.String()}).
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.execOne(ctx, query, args, fmt.Sprintf("message %s", id))
}

func (r *Repository) DeleteMessage(ctx context.Context, id uuid.UUID, deletedAt time.Time) error {
	query, args, err := sq.Update("messages").
		Set("deleted_at", deletedAt).
		Where(sq.Eq{"id": id.String()}).
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.execOne(ctx, query, args, fmt.Sprintf("message %s", id))
}

func (r *Repository) GetCommunityMessages(ctx context.Context, communityID string, before time.Time, limit int) (model.MessageList, error) {
	return r.pageMessages(ctx, sq.Eq{"community_id": communityID}, before, limit)
}

func (r *Repository) GetReplies(ctx context.Context, parentID uuid.UUID, before time.Time, limit int) (model.MessageList, error) {
	return r.pageMessages(ctx, sq.Eq{"reply_to": parentID.String()}, before, limit)
}

func (r *Repository) pageMessages(ctx context.Context, filter sq.Sqlizer, before time.Time, limit int) (model.MessageList, error) {
	queryBuilder := sq.Select(messageColumns...).
		From("messages").
		Where(filter).
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.Lt{"created_at": before}).
		OrderBy("created_at DESC", "id DESC")

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	} else {
		queryBuilder = queryBuilder.Limit(50)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", storeError(err))
	}

	return messages, nil
}

func (r *Repository) GetCommunityChanges(ctx context.Context, communityID string, since time.Time) (model.MessageList, []uuid.UUID, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"community_id": communityID}).
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.Or{
			sq.Gt{"created_at": since},
			sq.Gt{"edited_at": since},
			sq.Gt{"reactions_changed_at": since},
		}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get community changes: %w", storeError(err))
	}

	removed, err := r.removedSince(ctx, "messages", sq.Eq{"community_id": communityID}, since)
	if err != nil {
		return nil, nil, err
	}

	return messages, removed, nil
}

func (r *Repository) removedSince(ctx context.Context, table string, filter sq.Sqlizer, since time.Time) ([]uuid.UUID, error) {
	query, args, err := sq.Select("id").
		From(table).
		Where(filter).
		Where(sq.Gt{"deleted_at": since}).
		OrderBy("id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var removed []uuid.UUID
	err = r.Chk(ctx).SelectContext(ctx, &removed, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get removed ids: %w", storeError(err))
	}

	return removed, nil
}

// execOne runs a statement that must touch exactly one row.
func (r *Repository) execOne(ctx context.Context, query string, args []interface{}, what string) error {
	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", what, storeError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", what, storeError(err))
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", model.ErrNotFound, what)
	}

	return nil
}
