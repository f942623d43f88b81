package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/kantanpro/kantanpro/internal/models"
	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

type OrderStore struct {
	db  QueryInterceptor
	now Clock
}

func NewOrderStore(db QueryInterceptor, now Clock) *OrderStore {
	return &OrderStore{db: db, now: now}
}

// List returns orders newest first. Use ByStatus to filter.
func (s *OrderStore) List(ctx context.Context, opts ...ListOption) ([]models.Order, error) {
	builder := newestFirst(sq.Select(orderColumns...).From("orders o"), "o.", opts)

	orders := make([]models.Order, 0)
	if err := s.db.SelectBuilder(ctx, &orders, builder); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListWithClientName is List decorated with the client name. Orders without
// a client, or whose client was deleted, carry an empty name.
func (s *OrderStore) ListWithClientName(ctx context.Context, opts ...ListOption) ([]models.OrderWithClient, error) {
	builder := newestFirst(
		sq.Select(orderWithClientColumns...).
			From("orders o").
			LeftJoin("clients c ON o.client_id = c.id"),
		"o.", opts)

	orders := make([]models.OrderWithClient, 0)
	if err := s.db.SelectBuilder(ctx, &orders, builder); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) Get(ctx context.Context, id int64) (*models.OrderWithClient, error) {
	builder := sq.Select(orderWithClientColumns...).
		From("orders o").
		LeftJoin("clients c ON o.client_id = c.id").
		Where(sq.Eq{"o.id": id})

	var order models.OrderWithClient
	found, err := s.db.GetBuilder(ctx, &order, builder)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, srvErrors.NewResourceNotFoundError("order", id)
	}
	return &order, nil
}

// Create inserts an order. An empty status defaults to 受注, and an order
// created as 完了 without a completion date is stamped with today.
func (s *OrderStore) Create(ctx context.Context, o models.Order) (models.ExecResult, error) {
	if o.Status == "" {
		o.Status = models.OrderStatusReceived
	}
	projectName, err := validateOrder(&o)
	if err != nil {
		return models.ExecResult{}, err
	}
	if o.Status == models.OrderStatusCompleted && o.CompletionDate.IsZero() {
		o.CompletionDate = s.now.today()
	}

	now := s.now.timestamp()
	return s.db.Exec(ctx, queryInsertOrder,
		o.ClientID, projectName, nullable(o.Description), o.Status,
		o.TotalAmount, o.TaxAmount, o.Deadline, o.CompletionDate, now, now)
}

// Update replaces the editable fields of an order. An existing completion
// date is kept unless a new one is supplied; moving to 完了 without any
// completion date stamps today.
func (s *OrderStore) Update(ctx context.Context, id int64, o models.Order) (models.ExecResult, error) {
	projectName, err := validateOrder(&o)
	if err != nil {
		return models.ExecResult{}, err
	}

	var res models.ExecResult
	err = s.db.WithTx(ctx, func(tx QueryInterceptor) error {
		completion := o.CompletionDate
		if o.Status == models.OrderStatusCompleted && completion.IsZero() {
			var current models.Date
			found, err := tx.Get(ctx, &current, queryGetCompletionDate, id)
			if err != nil {
				return err
			}
			if found && current.IsZero() {
				completion = s.now.today()
			}
		}

		r, err := tx.Exec(ctx, queryUpdateOrder,
			o.ClientID, projectName, nullable(o.Description), o.Status,
			o.TotalAmount, o.TaxAmount, o.Deadline, completion, s.now.timestamp(), id)
		if err != nil {
			return err
		}
		res = models.ExecResult{ID: id, Changes: r.Changes}
		return nil
	})
	return res, err
}

// UpdateStatus sets the status. Moving to 完了 stamps completion_date with
// today; any other status leaves completion_date as it was.
func (s *OrderStore) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (models.ExecResult, error) {
	status, err := validateStatus(status)
	if err != nil {
		return models.ExecResult{}, err
	}

	var res models.ExecResult
	if status == models.OrderStatusCompleted {
		res, err = s.db.Exec(ctx, queryCompleteOrder, status, s.now.today(), s.now.timestamp(), id)
	} else {
		res, err = s.db.Exec(ctx, queryUpdateOrderStatus, status, s.now.timestamp(), id)
	}
	if err != nil {
		return models.ExecResult{}, err
	}
	return models.ExecResult{ID: id, Changes: res.Changes}, nil
}

// Delete removes the order together with its line items, cost items and
// chat messages.
func (s *OrderStore) Delete(ctx context.Context, id int64) (models.ExecResult, error) {
	var res models.ExecResult
	err := s.db.WithTx(ctx, func(tx QueryInterceptor) error {
		for _, q := range []string{queryDeleteOrderItemsByOrder, queryDeleteCostItemsByOrder, queryDeleteChatMessagesByOrder} {
			if _, err := tx.Exec(ctx, q, id); err != nil {
				return err
			}
		}
		r, err := tx.Exec(ctx, queryDeleteOrder, id)
		if err != nil {
			return err
		}
		res = models.ExecResult{ID: id, Changes: r.Changes}
		return nil
	})
	return res, err
}

func validateOrder(o *models.Order) (string, error) {
	projectName, err := requireText("project_name", o.ProjectName)
	if err != nil {
		return "", err
	}
	if o.Status, err = validateStatus(o.Status); err != nil {
		return "", err
	}
	if err := requireNonNegative("total_amount", o.TotalAmount); err != nil {
		return "", err
	}
	if err := requireNonNegative("tax_amount", o.TaxAmount); err != nil {
		return "", err
	}
	if err := validateDate("deadline", o.Deadline); err != nil {
		return "", err
	}
	if err := validateDate("completion_date", o.CompletionDate); err != nil {
		return "", err
	}
	return projectName, nil
}
