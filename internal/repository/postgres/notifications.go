package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/s21platform/chat-delivery-service/internal/model"
)

var notificationColumns = []string{"id", "recipient_id", "type", "payload", "is_read", "created_at"}

func (r *Repository) SaveNotification(ctx context.Context, notification *model.Notification) error {
	query, args, err := sq.Insert("notifications").
		Columns(notificationColumns...).
		Values(notification.ID, notification.RecipientID, notification.Type, notification.Payload, notification.IsRead, notification.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", storeError(err))
	}

	return nil
}

func (r *Repository) GetNotifications(ctx context.Context, recipientID string, before time.Time, limit int) (model.NotificationList, error) {
	queryBuilder := sq.Select(notificationColumns...).
		From("notifications").
		Where(sq.Eq{"recipient_id": recipientID}).
		Where(sq.Lt{"created_at": before}).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(sq.Dollar)
	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var notifications model.NotificationList
	err = r.Chk(ctx).SelectContext(ctx, &notifications, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", storeError(err))
	}

	return notifications, nil
}

func (r *Repository) GetNotificationsSince(ctx context.Context, recipientID string, since time.Time) (model.NotificationList, error) {
	query, args, err := sq.Select(notificationColumns...).
		From("notifications").
		Where(sq.Eq{"recipient_id": recipientID}).
		Where(sq.Gt{"created_at": since}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var notifications model.NotificationList
	err = r.Chk(ctx).SelectContext(ctx, &notifications, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", storeError(err))
	}

	return notifications, nil
}

func (r *Repository) MarkNotificationRead(ctx context.Context, id uuid.UUID, recipientID string) error {
	query, args, err := sq.Update("notifications").
		Set("is_read", true).
		Where(sq.Eq{"id": id.String(), "recipient_id": recipientID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.execOne(ctx, query, args, fmt.Sprintf("notification %s", id))
}
