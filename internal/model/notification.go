package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

type NotificationList []Notification

type Notification struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	RecipientID string         `db:"recipient_id" json:"recipient_id"`
	Type        string         `db:"type" json:"type"`
	Payload     types.JSONText `db:"payload" json:"payload"`
	IsRead      bool           `db:"is_read" json:"is_read"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}
