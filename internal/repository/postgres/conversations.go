package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/s21platform/chat-delivery-service/internal/model"
)

const conversationColumns = "id, participant_a, participant_b, last_message_id, last_message_at, unread_a, unread_b, created_at"

const latestDirectMessage = "(SELECT %s FROM direct_messages WHERE conversation_id = ? AND deleted_at IS NULL ORDER BY created_at DESC, id DESC LIMIT 1)"

// GetOrCreateConversation inserts the canonical pair or, when a row for it
// already exists, reads the existing one. A writer that loses the race gets
// the winner's row back instead of an error.
func (r *Repository) GetOrCreateConversation(ctx context.Context, participantA, participantB string) (*model.Conversation, error) {
	a, b, err := model.CanonicalPair(participantA, participantB)
	if err != nil {
		return nil, err
	}

	query, args, err := sq.Insert("conversations").
		Columns("id", "participant_a", "participant_b", "created_at").
		Values(uuid.New(), a, b, time.Now().UTC()).
		Suffix("ON CONFLICT (participant_a, participant_b) DO NOTHING RETURNING " + conversationColumns).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var row model.ConversationRow
	err = r.Chk(ctx).GetContext(ctx, &row, query, args...)
	switch {
	case err == nil:
		return model.NewConversation(row)
	case errors.Is(err, sql.ErrNoRows):
	default:
		if classified := storeError(err); !errors.Is(classified, model.ErrConflict) {
			return nil, fmt.Errorf("failed to create conversation: %w", classified)
		}
	}

	conversation, err := r.getConversationByPair(ctx, a, b)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("%w: conversation %s/%s vanished after insert conflict", model.ErrConflict, a, b)
		}
		return nil, err
	}

	return conversation, nil
}

func (r *Repository) getConversationByPair(ctx context.Context, a, b string) (*model.Conversation, error) {
	query, args, err := sq.Select(conversationColumns).
		From("conversations").
		Where(sq.Eq{"participant_a": a, "participant_b": b}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var row model.ConversationRow
	err = r.Chk(ctx).GetContext(ctx, &row, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", storeError(err))
	}

	return model.NewConversation(row)
}

func (r *Repository) GetConversation(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	query, args, err := sq.Select(conversationColumns).
		From("conversations").
		Where(sq.Eq{"id": id.String()}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var row model.ConversationRow
	err = r.Chk(ctx).GetContext(ctx, &row, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation %s: %w", id, storeError(err))
	}

	return model.NewConversation(row)
}

// TouchConversation moves the last-message pointer forward and increments the
// recipient's unread counter in a single statement.
func (r *Repository) TouchConversation(ctx context.Context, id, lastMessageID uuid.UUID, at time.Time, senderID string) error {
	isNewer := "last_message_at IS NULL OR last_message_at <= ?"

	query, args, err := sq.Update("conversations").
		Set("last_message_id", sq.Expr("CASE WHEN "+isNewer+" THEN ? ELSE last_message_id END", at, lastMessageID)).
		Set("last_message_at", sq.Expr("CASE WHEN "+isNewer+" THEN ? ELSE last_message_at END", at, at)).
		Set("unread_a", sq.Expr("unread_a + CASE WHEN participant_b = ? THEN 1 ELSE 0 END", senderID)).
		Set("unread_b", sq.Expr("unread_b + CASE WHEN participant_a = ? THEN 1 ELSE 0 END", senderID)).
		Where(sq.Eq{"id": id.String()}).
		Where(sq.Or{
			sq.Eq{"participant_a": senderID},
			sq.Eq{"participant_b": senderID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.execOne(ctx, query, args, fmt.Sprintf("conversation %s", id))
}

// MarkConversationRead zeroes the reader's counter and flags the messages the
// reader received as read.
func (r *Repository) MarkConversationRead(ctx context.Context, id uuid.UUID, readerID string, at time.Time) error {
	query, args, err := sq.Update("conversations").
		Set("unread_a", sq.Expr("CASE WHEN participant_a = ? THEN 0 ELSE unread_a END", readerID)).
		Set("unread_b", sq.Expr("CASE WHEN participant_b = ? THEN 0 ELSE unread_b END", readerID)).
		Where(sq.Eq{"id": id.String()}).
		Where(sq.Or{
			sq.Eq{"participant_a": readerID},
			sq.Eq{"participant_b": readerID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if err := r.execOne(ctx, query, args, fmt.Sprintf("conversation %s", id)); err != nil {
		return err
	}

	query, args, err = sq.Update("direct_messages").
		Set("is_read", true).
		Set("read_at", at).
		Where(sq.Eq{
			"conversation_id": id.String(),
			"recipient_id":    readerID,
			"is_read":         false,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark direct messages read: %w", storeError(err))
	}

	return nil
}

func (r *Repository) RefreshConversationLastMessage(ctx context.Context, id uuid.UUID) error {
	query, args, err := sq.Update("conversations").
		Set("last_message_id", sq.Expr(fmt.Sprintf(latestDirectMessage, "id"), id.String())).
		Set("last_message_at", sq.Expr(fmt.Sprintf(latestDirectMessage, "created_at"), id.String())).
		Where(sq.Eq{"id": id.String()}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.execOne(ctx, query, args, fmt.Sprintf("conversation %s", id))
}

func (r *Repository) ListConversations(ctx context.Context, userID string) (model.ConversationPreviewList, error) {
	query, args, err := sq.Select("c.id").
		Column(sq.Expr("CASE WHEN c.participant_a = ? THEN c.participant_b ELSE c.participant_a END AS participant", userID)).
		Column("c.last_message_id").
		Column("dm.content AS last_message_content").
		Column("c.last_message_at").
		Column(sq.Expr("CASE WHEN c.participant_a = ? THEN c.unread_a ELSE c.unread_b END AS unread_count", userID)).
		From("conversations c").
		LeftJoin("direct_messages dm ON dm.id = c.last_message_id AND dm.deleted_at IS NULL").
		Where(sq.Or{
			sq.Eq{"c.participant_a": userID},
			sq.Eq{"c.participant_b": userID},
		}).
		OrderBy("c.last_message_at DESC NULLS LAST", "c.id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	conversations := make(model.ConversationPreviewList, 0)
	err = r.Chk(ctx).SelectContext(ctx, &conversations, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", storeError(err))
	}

	return conversations, nil
}
