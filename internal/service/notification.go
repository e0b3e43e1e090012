package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"

	"github.com/s21platform/chat-delivery-service/internal/model"
)

// Notify stores a notification produced by another subsystem and pushes it to
// the recipient's personal channel.
func (s *Service) Notify(ctx context.Context, notification *model.Notification) error {
	if err := s.validator.ValidateNotification(notification); err != nil {
		return err
	}

	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if len(notification.Payload) == 0 {
		notification.Payload = types.JSONText(`{}`)
	}
	notification.IsRead = false
	notification.CreatedAt = s.clock.Now()

	if err := s.repository.SaveNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	s.publish(ctx, model.UserRoom(notification.RecipientID), model.Event{
		ID:        notification.ID.String(),
		Type:      model.EventNotificationCreated,
		Scope:     model.NotificationsScope,
		Timestamp: notification.CreatedAt,
		Version:   notification.CreatedAt,
		Data:      notification,
	})

	return nil
}

func (s *Service) ListNotifications(ctx context.Context, recipientID string, before *time.Time, limit int) (model.NotificationList, bool, error) {
	if err := s.validator.ValidateLimit(limit); err != nil {
		return nil, false, err
	}

	notifications, err := s.repository.GetNotifications(ctx, recipientID, s.cursor(before), limit)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get notifications: %w", err)
	}

	return notifications, len(notifications) == limit, nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, recipientID string, notificationID uuid.UUID) error {
	if err := s.repository.MarkNotificationRead(ctx, notificationID, recipientID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
