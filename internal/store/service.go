package store

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/kantanpro/kantanpro/internal/models"
	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

type ServiceStore struct {
	db  QueryInterceptor
	now Clock
}

func NewServiceStore(db QueryInterceptor, now Clock) *ServiceStore {
	return &ServiceStore{db: db, now: now}
}

func (s *ServiceStore) List(ctx context.Context, opts ...ListOption) ([]models.Service, error) {
	builder := newestFirst(sq.Select(serviceColumns...).From("services"), "", opts)

	services := make([]models.Service, 0)
	if err := s.db.SelectBuilder(ctx, &services, builder); err != nil {
		return nil, err
	}
	return services, nil
}

func (s *ServiceStore) Get(ctx context.Context, id int64) (*models.Service, error) {
	builder := sq.Select(serviceColumns...).From("services").Where(sq.Eq{"id": id})

	var service models.Service
	found, err := s.db.GetBuilder(ctx, &service, builder)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, srvErrors.NewResourceNotFoundError("service", id)
	}
	return &service, nil
}

// Create inserts a service. An empty unit defaults to 式 and a zero tax
// rate to 10%.
func (s *ServiceStore) Create(ctx context.Context, svc models.Service) (models.ExecResult, error) {
	if strings.TrimSpace(svc.Unit) == "" {
		svc.Unit = models.DefaultServiceUnit
	}
	if svc.TaxRate.IsZero() {
		svc.TaxRate = models.DefaultTaxRate
	}
	name, err := validateService(svc)
	if err != nil {
		return models.ExecResult{}, err
	}

	now := s.now.timestamp()
	return s.db.Exec(ctx, queryInsertService,
		name, nullable(svc.Description), svc.UnitPrice, svc.Unit, svc.TaxRate, now, now)
}

func (s *ServiceStore) Update(ctx context.Context, id int64, svc models.Service) (models.ExecResult, error) {
	if strings.TrimSpace(svc.Unit) == "" {
		svc.Unit = models.DefaultServiceUnit
	}
	name, err := validateService(svc)
	if err != nil {
		return models.ExecResult{}, err
	}

	res, err := s.db.Exec(ctx, queryUpdateService,
		name, nullable(svc.Description), svc.UnitPrice, svc.Unit, svc.TaxRate, s.now.timestamp(), id)
	if err != nil {
		return models.ExecResult{}, err
	}
	return models.ExecResult{ID: id, Changes: res.Changes}, nil
}

// Delete removes the service. Order items keep their service_name snapshot
// and lose the reference.
func (s *ServiceStore) Delete(ctx context.Context, id int64) (models.ExecResult, error) {
	var res models.ExecResult
	err := s.db.WithTx(ctx, func(tx QueryInterceptor) error {
		if _, err := tx.Exec(ctx, queryDetachServiceItems, s.now.timestamp(), id); err != nil {
			return err
		}
		r, err := tx.Exec(ctx, queryDeleteService, id)
		if err != nil {
			return err
		}
		res = models.ExecResult{ID: id, Changes: r.Changes}
		return nil
	})
	return res, err
}

func validateService(svc models.Service) (string, error) {
	name, err := requireText("name", svc.Name)
	if err != nil {
		return "", err
	}
	if err := requireNonNegative("unit_price", svc.UnitPrice); err != nil {
		return "", err
	}
	if err := requireNonNegative("tax_rate", svc.TaxRate); err != nil {
		return "", err
	}
	return name, nil
}
