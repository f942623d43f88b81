package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/kantanpro/kantanpro/internal/models"
	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

type ClientStore struct {
	db  QueryInterceptor
	now Clock
}

func NewClientStore(db QueryInterceptor, now Clock) *ClientStore {
	return &ClientStore{db: db, now: now}
}

// List returns clients newest first.
func (s *ClientStore) List(ctx context.Context, opts ...ListOption) ([]models.Client, error) {
	builder := newestFirst(sq.Select(clientColumns...).From("clients"), "", opts)

	clients := make([]models.Client, 0)
	if err := s.db.SelectBuilder(ctx, &clients, builder); err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *ClientStore) Get(ctx context.Context, id int64) (*models.Client, error) {
	builder := sq.Select(clientColumns...).From("clients").Where(sq.Eq{"id": id})

	var client models.Client
	found, err := s.db.GetBuilder(ctx, &client, builder)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, srvErrors.NewResourceNotFoundError("client", id)
	}
	return &client, nil
}

func (s *ClientStore) Create(ctx context.Context, c models.Client) (models.ExecResult, error) {
	name, err := requireText("name", c.Name)
	if err != nil {
		return models.ExecResult{}, err
	}

	now := s.now.timestamp()
	return s.db.Exec(ctx, queryInsertClient,
		name, nullable(c.ContactPerson), nullable(c.Email), nullable(c.Phone),
		nullable(c.Address), nullable(c.Department), now, now)
}

// Update replaces every editable field. Changes is 0 when id does not exist.
func (s *ClientStore) Update(ctx context.Context, id int64, c models.Client) (models.ExecResult, error) {
	name, err := requireText("name", c.Name)
	if err != nil {
		return models.ExecResult{}, err
	}

	res, err := s.db.Exec(ctx, queryUpdateClient,
		name, nullable(c.ContactPerson), nullable(c.Email), nullable(c.Phone),
		nullable(c.Address), nullable(c.Department), s.now.timestamp(), id)
	if err != nil {
		return models.ExecResult{}, err
	}
	return models.ExecResult{ID: id, Changes: res.Changes}, nil
}

// Delete removes the client and detaches its orders.
func (s *ClientStore) Delete(ctx context.Context, id int64) (models.ExecResult, error) {
	var res models.ExecResult
	err := s.db.WithTx(ctx, func(tx QueryInterceptor) error {
		if _, err := tx.Exec(ctx, queryDetachClientOrders, s.now.timestamp(), id); err != nil {
			return err
		}
		r, err := tx.Exec(ctx, queryDeleteClient, id)
		if err != nil {
			return err
		}
		res = models.ExecResult{ID: id, Changes: r.Changes}
		return nil
	})
	return res, err
}

func (s *ClientStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if _, err := s.db.Get(ctx, &count, queryCountClients); err != nil {
		return 0, err
	}
	return count, nil
}
