package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/kantanpro/kantanpro/internal/models"
)

// DefaultListLimit applies when a list call carries no positive limit.
const DefaultListLimit = 20

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if limit == 0 {
			return b
		}
		return b.Limit(limit)
	}
}

func WithOffset(offset uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Offset(offset)
	}
}

// ByStatus filters orders by status. Multiple statuses use OR logic.
func ByStatus(statuses ...models.OrderStatus) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(statuses) == 0 {
			return b
		}
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, string(s))
		}
		return b.Where(sq.Eq{"o.status": values})
	}
}

// ByClient filters orders by client id.
func ByClient(clientID int64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"o.client_id": clientID})
	}
}

// newestFirst builds the default list query: ordered by creation time
// descending with the id as tie-breaker, capped at DefaultListLimit.
func newestFirst(b sq.SelectBuilder, prefix string, opts []ListOption) sq.SelectBuilder {
	b = b.OrderBy(prefix+"created_at DESC", prefix+"id DESC").Limit(DefaultListLimit)
	for _, opt := range opts {
		b = opt(b)
	}
	return b
}
