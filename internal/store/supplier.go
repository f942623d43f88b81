package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/kantanpro/kantanpro/internal/models"
	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

type SupplierStore struct {
	db  QueryInterceptor
	now Clock
}

func NewSupplierStore(db QueryInterceptor, now Clock) *SupplierStore {
	return &SupplierStore{db: db, now: now}
}

func (s *SupplierStore) List(ctx context.Context, opts ...ListOption) ([]models.Supplier, error) {
	builder := newestFirst(sq.Select(supplierColumns...).From("suppliers"), "", opts)

	suppliers := make([]models.Supplier, 0)
	if err := s.db.SelectBuilder(ctx, &suppliers, builder); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (s *SupplierStore) Get(ctx context.Context, id int64) (*models.Supplier, error) {
	builder := sq.Select(supplierColumns...).From("suppliers").Where(sq.Eq{"id": id})

	var supplier models.Supplier
	found, err := s.db.GetBuilder(ctx, &supplier, builder)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, srvErrors.NewResourceNotFoundError("supplier", id)
	}
	return &supplier, nil
}

func (s *SupplierStore) Create(ctx context.Context, sup models.Supplier) (models.ExecResult, error) {
	name, err := requireText("name", sup.Name)
	if err != nil {
		return models.ExecResult{}, err
	}

	now := s.now.timestamp()
	return s.db.Exec(ctx, queryInsertSupplier,
		name, nullable(sup.ContactPerson), nullable(sup.Email), nullable(sup.Phone),
		nullable(sup.Address), nullable(sup.Skills), nullable(sup.QualifiedInvoiceNumber), now, now)
}

func (s *SupplierStore) Update(ctx context.Context, id int64, sup models.Supplier) (models.ExecResult, error) {
	name, err := requireText("name", sup.Name)
	if err != nil {
		return models.ExecResult{}, err
	}

	res, err := s.db.Exec(ctx, queryUpdateSupplier,
		name, nullable(sup.ContactPerson), nullable(sup.Email), nullable(sup.Phone),
		nullable(sup.Address), nullable(sup.Skills), nullable(sup.QualifiedInvoiceNumber),
		s.now.timestamp(), id)
	if err != nil {
		return models.ExecResult{}, err
	}
	return models.ExecResult{ID: id, Changes: res.Changes}, nil
}

// Delete removes the supplier. Cost items keep their supplier snapshot.
func (s *SupplierStore) Delete(ctx context.Context, id int64) (models.ExecResult, error) {
	var res models.ExecResult
	err := s.db.WithTx(ctx, func(tx QueryInterceptor) error {
		if _, err := tx.Exec(ctx, queryDetachSupplierCosts, s.now.timestamp(), id); err != nil {
			return err
		}
		r, err := tx.Exec(ctx, queryDeleteSupplier, id)
		if err != nil {
			return err
		}
		res = models.ExecResult{ID: id, Changes: r.Changes}
		return nil
	})
	return res, err
}
