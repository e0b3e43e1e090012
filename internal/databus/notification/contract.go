//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package notification

import (
	"context"

	"github.com/s21platform/chat-delivery-service/internal/model"
)

type Notifier interface {
	Notify(ctx context.Context, notification *model.Notification) error
}
