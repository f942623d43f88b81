package store

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kantanpro/kantanpro/internal/models"
)

const timestampLayout = "2006-01-02 15:04:05"

// Clock returns the wall-clock time used for created_at, updated_at and
// completion dates. Both are recorded in UTC, like CURRENT_TIMESTAMP.
type Clock func() time.Time

func (c Clock) timestamp() string {
	return c().UTC().Format(timestampLayout)
}

func (c Clock) today() models.Date {
	return models.NewDate(c().UTC())
}

type storeOptions struct {
	clock Clock
}

type Option func(*storeOptions)

func WithClock(c Clock) Option {
	return func(o *storeOptions) {
		o.clock = c
	}
}

// Store provides access to all storage repositories.
type Store struct {
	db         *sqlx.DB
	clients    *ClientStore
	services   *ServiceStore
	suppliers  *SupplierStore
	orders     *OrderStore
	orderItems *OrderItemStore
	costItems  *CostItemStore
	chat       *ChatStore
	settings   *SettingStore
	reports    *ReportStore
}

func NewStore(db *sqlx.DB, opts ...Option) *Store {
	o := storeOptions{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	qi := NewQueryInterceptor(db)
	return &Store{
		db:         db,
		clients:    NewClientStore(qi, o.clock),
		services:   NewServiceStore(qi, o.clock),
		suppliers:  NewSupplierStore(qi, o.clock),
		orders:     NewOrderStore(qi, o.clock),
		orderItems: NewOrderItemStore(qi, o.clock),
		costItems:  NewCostItemStore(qi, o.clock),
		chat:       NewChatStore(qi, o.clock),
		settings:   NewSettingStore(qi, o.clock),
		reports:    NewReportStore(qi),
	}
}

func (s *Store) Clients() *ClientStore {
	return s.clients
}

func (s *Store) Services() *ServiceStore {
	return s.services
}

func (s *Store) Suppliers() *SupplierStore {
	return s.suppliers
}

func (s *Store) Orders() *OrderStore {
	return s.orders
}

func (s *Store) OrderItems() *OrderItemStore {
	return s.orderItems
}

func (s *Store) CostItems() *CostItemStore {
	return s.costItems
}

func (s *Store) Chat() *ChatStore {
	return s.chat
}

func (s *Store) Settings() *SettingStore {
	return s.settings
}

func (s *Store) Reports() *ReportStore {
	return s.reports
}

func (s *Store) Close() error {
	return s.db.Close()
}
