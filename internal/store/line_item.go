package store

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kantanpro/kantanpro/internal/models"
	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

// OrderItemStore handles the invoiced lines of an order.
type OrderItemStore struct {
	db  QueryInterceptor
	now Clock
}

func NewOrderItemStore(db QueryInterceptor, now Clock) *OrderItemStore {
	return &OrderItemStore{db: db, now: now}
}

// ListForOrder returns the items of an order in entry order.
func (s *OrderItemStore) ListForOrder(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0)
	if err := s.db.Select(ctx, &items, queryListOrderItems+` WHERE order_id = ? ORDER BY id ASC`, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *OrderItemStore) Get(ctx context.Context, id int64) (*models.OrderItem, error) {
	var item models.OrderItem
	found, err := s.db.Get(ctx, &item, queryListOrderItems+` WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, srvErrors.NewResourceNotFoundError("order item", id)
	}
	return &item, nil
}

// Create inserts a line item. When ServiceName is empty it is copied from
// the referenced service; later edits to the service never touch it.
func (s *OrderItemStore) Create(ctx context.Context, item models.OrderItem) (models.ExecResult, error) {
	if err := validateOrderItem(&item); err != nil {
		return models.ExecResult{}, err
	}

	var res models.ExecResult
	err := s.db.WithTx(ctx, func(tx QueryInterceptor) error {
		if err := snapshotService(ctx, tx, &item); err != nil {
			return err
		}
		now := s.now.timestamp()
		r, err := tx.Exec(ctx, queryInsertOrderItem,
			item.OrderID, item.ServiceID, nullable(item.ServiceName), item.Quantity, item.UnitPrice,
			item.TaxRate, item.Amount, nullable(item.Notes), now, now)
		res = r
		return err
	})
	return res, err
}

func (s *OrderItemStore) Update(ctx context.Context, id int64, item models.OrderItem) (models.ExecResult, error) {
	if err := validateOrderItem(&item); err != nil {
		return models.ExecResult{}, err
	}

	var res models.ExecResult
	err := s.db.WithTx(ctx, func(tx QueryInterceptor) error {
		if err := snapshotService(ctx, tx, &item); err != nil {
			return err
		}
		r, err := tx.Exec(ctx, queryUpdateOrderItem,
			item.ServiceID, nullable(item.ServiceName), item.Quantity, item.UnitPrice,
			item.TaxRate, item.Amount, nullable(item.Notes), s.now.timestamp(), id)
		if err != nil {
			return err
		}
		res = models.ExecResult{ID: id, Changes: r.Changes}
		return nil
	})
	return res, err
}

func (s *OrderItemStore) Delete(ctx context.Context, id int64) (models.ExecResult, error) {
	res, err := s.db.Exec(ctx, queryDeleteOrderItem, id)
	if err != nil {
		return models.ExecResult{}, err
	}
	return models.ExecResult{ID: id, Changes: res.Changes}, nil
}

func snapshotService(ctx context.Context, tx QueryInterceptor, item *models.OrderItem) error {
	if item.ServiceID == nil || item.ServiceName != "" {
		return nil
	}
	found, err := tx.Get(ctx, &item.ServiceName, queryGetServiceName, *item.ServiceID)
	if err != nil {
		return err
	}
	if !found {
		return srvErrors.NewResourceNotFoundError("service", *item.ServiceID)
	}
	return nil
}

func validateOrderItem(item *models.OrderItem) error {
	if item.OrderID <= 0 {
		return srvErrors.NewRequiredFieldError("order_id")
	}
	applyLineDefaults(&item.Quantity, &item.TaxRate)
	return validateLineAmounts(item.Quantity, item.UnitPrice, item.TaxRate, item.Amount)
}

// CostItemStore handles what an order costs: purchases from suppliers.
type CostItemStore struct {
	db  QueryInterceptor
	now Clock
}

func NewCostItemStore(db QueryInterceptor, now Clock) *CostItemStore {
	return &CostItemStore{db: db, now: now}
}

func (s *CostItemStore) ListForOrder(ctx context.Context, orderID int64) ([]models.CostItem, error) {
	items := make([]models.CostItem, 0)
	if err := s.db.Select(ctx, &items, queryListCostItems+` WHERE order_id = ? ORDER BY id ASC`, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CostItemStore) Get(ctx context.Context, id int64) (*models.CostItem, error) {
	var item models.CostItem
	found, err := s.db.Get(ctx, &item, queryListCostItems+` WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, srvErrors.NewResourceNotFoundError("cost item", id)
	}
	return &item, nil
}

// Create inserts a cost item. An empty SupplierName or QualifiedInvoiceNumber
// is copied from the referenced supplier at this point in time.
func (s *CostItemStore) Create(ctx context.Context, item models.CostItem) (models.ExecResult, error) {
	if err := validateCostItem(&item); err != nil {
		return models.ExecResult{}, err
	}

	var res models.ExecResult
	err := s.db.WithTx(ctx, func(tx QueryInterceptor) error {
		if err := snapshotSupplier(ctx, tx, &item); err != nil {
			return err
		}
		now := s.now.timestamp()
		r, err := tx.Exec(ctx, queryInsertCostItem,
			item.OrderID, item.SupplierID, nullable(item.SupplierName), item.ItemName, item.Quantity,
			item.UnitPrice, item.TaxRate, item.Amount, nullable(item.Notes),
			nullable(item.QualifiedInvoiceNumber), now, now)
		res = r
		return err
	})
	return res, err
}

func (s *CostItemStore) Update(ctx context.Context, id int64, item models.CostItem) (models.ExecResult, error) {
	if err := validateCostItem(&item); err != nil {
		return models.ExecResult{}, err
	}

	var res models.ExecResult
	err := s.db.WithTx(ctx, func(tx QueryInterceptor) error {
		if err := snapshotSupplier(ctx, tx, &item); err != nil {
			return err
		}
		r, err := tx.Exec(ctx, queryUpdateCostItem,
			item.SupplierID, nullable(item.SupplierName), item.ItemName, item.Quantity, item.UnitPrice,
			item.TaxRate, item.Amount, nullable(item.Notes), nullable(item.QualifiedInvoiceNumber),
			s.now.timestamp(), id)
		if err != nil {
			return err
		}
		res = models.ExecResult{ID: id, Changes: r.Changes}
		return nil
	})
	return res, err
}

func (s *CostItemStore) Delete(ctx context.Context, id int64) (models.ExecResult, error) {
	res, err := s.db.Exec(ctx, queryDeleteCostItem, id)
	if err != nil {
		return models.ExecResult{}, err
	}
	return models.ExecResult{ID: id, Changes: res.Changes}, nil
}

func snapshotSupplier(ctx context.Context, tx QueryInterceptor, item *models.CostItem) error {
	if item.SupplierID == nil || (item.SupplierName != "" && item.QualifiedInvoiceNumber != "") {
		return nil
	}

	var snapshot struct {
		Name                   string `db:"name"`
		QualifiedInvoiceNumber string `db:"qualified_invoice_number"`
	}
	found, err := tx.Get(ctx, &snapshot, queryGetSupplierSnapshot, *item.SupplierID)
	if err != nil {
		return err
	}
	if !found {
		return srvErrors.NewResourceNotFoundError("supplier", *item.SupplierID)
	}

	if item.SupplierName == "" {
		item.SupplierName = snapshot.Name
	}
	if item.QualifiedInvoiceNumber == "" {
		item.QualifiedInvoiceNumber = snapshot.QualifiedInvoiceNumber
	}
	return nil
}

func validateCostItem(item *models.CostItem) error {
	if item.OrderID <= 0 {
		return srvErrors.NewRequiredFieldError("order_id")
	}
	name, err := requireText("item_name", item.ItemName)
	if err != nil {
		return err
	}
	item.ItemName = name
	applyLineDefaults(&item.Quantity, &item.TaxRate)
	return validateLineAmounts(item.Quantity, item.UnitPrice, item.TaxRate, item.Amount)
}

func applyLineDefaults(quantity, taxRate *decimal.Decimal) {
	if quantity.IsZero() {
		*quantity = decimal.NewFromInt(1)
	}
	if taxRate.IsZero() {
		*taxRate = models.DefaultTaxRate
	}
}

// validateLineAmounts only rejects negative figures. amount is not checked
// against quantity * unit_price.
func validateLineAmounts(quantity, unitPrice, taxRate, amount decimal.Decimal) error {
	if err := requireNonNegative("quantity", quantity); err != nil {
		return err
	}
	if err := requireNonNegative("unit_price", unitPrice); err != nil {
		return err
	}
	if err := requireNonNegative("tax_rate", taxRate); err != nil {
		return err
	}
	return requireNonNegative("amount", amount)
}
