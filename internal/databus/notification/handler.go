package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx/types"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-delivery-service/internal/config"
	"github.com/s21platform/chat-delivery-service/internal/model"
)

// Message is the notification event published by other platform services.
type Message struct {
	RecipientID string          `json:"recipient_id"`
	Type        string          `json:"type"`
	Payload     json.RawMessage `json:"payload"`
}

type Handler struct {
	notifier Notifier
}

func New(notifier Notifier) *Handler {
	return &Handler{notifier: notifier}
}

// Handler stores and delivers one notification event. Malformed and invalid
// events are logged and skipped so they are not redelivered forever.
func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("NotificationHandler")

	var msg Message
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal notification: %v", err))
		return nil
	}

	notification := &model.Notification{
		RecipientID: msg.RecipientID,
		Type:        msg.Type,
		Payload:     types.JSONText(msg.Payload),
	}

	err := h.notifier.Notify(ctx, notification)
	if errors.Is(err, model.ErrValidation) {
		logger.Warn(fmt.Sprintf("skipping invalid notification: %v", err))
		return nil
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to save notification for %s: %v", msg.RecipientID, err))
		return err
	}

	logger.Info(fmt.Sprintf("notification %s delivered to %s", notification.ID, msg.RecipientID))
	return nil
}
