package store

import (
	"context"
	"strings"

	"github.com/kantanpro/kantanpro/internal/models"
	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

const DefaultChatLimit = 50

type ChatStore struct {
	db  QueryInterceptor
	now Clock
}

func NewChatStore(db QueryInterceptor, now Clock) *ChatStore {
	return &ChatStore{db: db, now: now}
}

// ListForOrder returns at most limit messages of an order, newest first.
func (s *ChatStore) ListForOrder(ctx context.Context, orderID int64, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultChatLimit
	}

	messages := make([]models.ChatMessage, 0)
	if err := s.db.Select(ctx, &messages, queryListChatMessages, orderID, limit); err != nil {
		return nil, err
	}
	return messages, nil
}

// Append stores a message. Messages are never edited.
func (s *ChatStore) Append(ctx context.Context, orderID int64, userName, message string) (models.ExecResult, error) {
	if orderID <= 0 {
		return models.ExecResult{}, srvErrors.NewRequiredFieldError("order_id")
	}
	if strings.TrimSpace(message) == "" {
		return models.ExecResult{}, srvErrors.NewRequiredFieldError("message")
	}

	return s.db.Exec(ctx, queryInsertChatMessage, orderID, nullable(strings.TrimSpace(userName)), message, s.now.timestamp())
}
