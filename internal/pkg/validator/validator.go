package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/s21platform/chat-delivery-service/internal/model"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content cannot be empty", model.ErrValidation)
	}

	if utf8.RuneCountInString(content) > model.MaxContentLength {
		return fmt.Errorf("%w: content exceeds maximum length of %d characters", model.ErrValidation, model.MaxContentLength)
	}

	return nil
}

func (v *Validator) ValidateLimit(limit int) error {
	if limit <= 0 || limit > MaxPageLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d, got %d", model.ErrValidation, MaxPageLimit, limit)
	}
	return nil
}

func (v *Validator) ValidateNotification(n *model.Notification) error {
	if strings.TrimSpace(n.RecipientID) == "" {
		return fmt.Errorf("%w: notification recipient is required", model.ErrValidation)
	}

	if strings.TrimSpace(n.Type) == "" {
		return fmt.Errorf("%w: notification type is required", model.ErrValidation)
	}

	return nil
}
