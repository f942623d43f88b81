package services

import (
	"context"

	"github.com/kantanpro/kantanpro/internal/models"
	"github.com/kantanpro/kantanpro/internal/store"
)

func (b *Bridge) GetClients(ctx context.Context, limit, offset int) ([]models.Client, error) {
	return call(ctx, b, "getClients", func(ctx context.Context, st *store.Store) ([]models.Client, error) {
		return st.Clients().List(ctx, pageOptions(limit, offset)...)
	})
}

func (b *Bridge) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	return call(ctx, b, "getClient", func(ctx context.Context, st *store.Store) (*models.Client, error) {
		return st.Clients().Get(ctx, id)
	})
}

func (b *Bridge) CreateClient(ctx context.Context, c models.Client) (models.ExecResult, error) {
	return call(ctx, b, "createClient", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		return st.Clients().Create(ctx, c)
	})
}

func (b *Bridge) UpdateClient(ctx context.Context, id int64, c models.Client) (models.ExecResult, error) {
	return call(ctx, b, "updateClient", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		res, err := st.Clients().Update(ctx, id, c)
		return requireChange("client", id, res, err)
	})
}

func (b *Bridge) DeleteClient(ctx context.Context, id int64) (models.ExecResult, error) {
	return call(ctx, b, "deleteClient", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		res, err := st.Clients().Delete(ctx, id)
		return requireChange("client", id, res, err)
	})
}

func (b *Bridge) GetServices(ctx context.Context, limit, offset int) ([]models.Service, error) {
	return call(ctx, b, "getServices", func(ctx context.Context, st *store.Store) ([]models.Service, error) {
		return st.Services().List(ctx, pageOptions(limit, offset)...)
	})
}

func (b *Bridge) GetService(ctx context.Context, id int64) (*models.Service, error) {
	return call(ctx, b, "getService", func(ctx context.Context, st *store.Store) (*models.Service, error) {
		return st.Services().Get(ctx, id)
	})
}

func (b *Bridge) CreateService(ctx context.Context, s models.Service) (models.ExecResult, error) {
	return call(ctx, b, "createService", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		return st.Services().Create(ctx, s)
	})
}

func (b *Bridge) UpdateService(ctx context.Context, id int64, s models.Service) (models.ExecResult, error) {
	return call(ctx, b, "updateService", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		res, err := st.Services().Update(ctx, id, s)
		return requireChange("service", id, res, err)
	})
}

func (b *Bridge) DeleteService(ctx context.Context, id int64) (models.ExecResult, error) {
	return call(ctx, b, "deleteService", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		res, err := st.Services().Delete(ctx, id)
		return requireChange("service", id, res, err)
	})
}

func (b *Bridge) GetSuppliers(ctx context.Context, limit, offset int) ([]models.Supplier, error) {
	return call(ctx, b, "getSuppliers", func(ctx context.Context, st *store.Store) ([]models.Supplier, error) {
		return st.Suppliers().List(ctx, pageOptions(limit, offset)...)
	})
}

func (b *Bridge) GetSupplier(ctx context.Context, id int64) (*models.Supplier, error) {
	return call(ctx, b, "getSupplier", func(ctx context.Context, st *store.Store) (*models.Supplier, error) {
		return st.Suppliers().Get(ctx, id)
	})
}

func (b *Bridge) CreateSupplier(ctx context.Context, s models.Supplier) (models.ExecResult, error) {
	return call(ctx, b, "createSupplier", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		return st.Suppliers().Create(ctx, s)
	})
}

func (b *Bridge) UpdateSupplier(ctx context.Context, id int64, s models.Supplier) (models.ExecResult, error) {
	return call(ctx, b, "updateSupplier", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		res, err := st.Suppliers().Update(ctx, id, s)
		return requireChange("supplier", id, res, err)
	})
}

func (b *Bridge) DeleteSupplier(ctx context.Context, id int64) (models.ExecResult, error) {
	return call(ctx, b, "deleteSupplier", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		res, err := st.Suppliers().Delete(ctx, id)
		return requireChange("supplier", id, res, err)
	})
}
