// Package store implements the data access layer for KantanPro.
//
// All business data lives in a single sqlite file (kantanpro.db) opened once
// per process. The package owns the database handle, the typed repositories
// and the aggregate reports computed on top of them.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├─────────────────────────────────────────────────────────────────┤
//	│  ClientStore  │ ServiceStore │ SupplierStore │  SettingStore    │
//	│      ▼        │      ▼       │       ▼       │       ▼          │
//	│   clients     │   services   │   suppliers   │    settings      │
//	├───────────────┴──────────────┴───────────────┴──────────────────┤
//	│  OrderStore   │ OrderItemStore │ CostItemStore │   ChatStore    │
//	│      ▼        │       ▼        │       ▼       │       ▼        │
//	│   orders      │  order_items   │  cost_items   │ chat_messages  │
//	├─────────────────────────────────────────────────────────────────┤
//	│                 ReportStore (read-only aggregates)              │
//	├─────────────────────────────────────────────────────────────────┤
//	│                 QueryInterceptor (record store)                 │
//	│        Exec / Get / Select, StorageError, debug logging         │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Initialization Flow
//
//	NewDB(path)
//	    ├── Opens sqlite with _foreign_keys=on, busy timeout, WAL journal
//	    └── Caps the pool at one connection
//
//	migrations.Run(ctx, db)
//	    └── Applies the embedded goose migrations (internal/store/migrations/sql/)
//
//	NewStore(db, WithClock(...))
//	    └── Initializes all sub-stores with the same QueryInterceptor
//
// # QueryInterceptor
//
// Every statement goes through the QueryInterceptor:
//
//   - Exec(ctx, sql, args...) → ExecResult{ID, Changes}
//   - Get(ctx, dest, sql, args...) → found bool; a missing row is not an error
//   - Select(ctx, dest, sql, args...) → materialized slice
//
// Each has a squirrel builder variant (ExecBuilder, GetBuilder, SelectBuilder).
// Engine failures come back as *errors.StorageError carrying the statement.
// Statements are always parameterized. WithTx runs a function inside one
// transaction; repositories use it when a single call issues more than one
// statement. No transaction spans two repository calls.
//
// # Repositories
//
// Every entity repository exposes:
//
//   - List(ctx, opts...) newest first (created_at DESC, id DESC), 20 rows unless WithLimit
//   - Get(ctx, id) → NotFound error when absent
//   - Create(ctx, entity) → ExecResult with the new id
//   - Update(ctx, id, entity) → Changes == 0 when id does not exist
//   - Delete(ctx, id) → Changes == 0 when id does not exist
//
// Validation runs before any statement and fails with *errors.ValidationError.
//
// Order specifics:
//
//	┌───────────────────┬───────────────────────────────────────────────┐
//	│  UpdateStatus     │  完了 stamps completion_date with today;      │
//	│                   │  other statuses leave completion_date as is   │
//	│  ListWithClientName│ LEFT JOIN clients for client_name            │
//	│  ByStatus(...)    │  WHERE o.status IN (...)                      │
//	└───────────────────┴───────────────────────────────────────────────┘
//
// Line items keep point-in-time snapshots: service_name on order_items,
// supplier_name and qualified_invoice_number on cost_items. They are copied
// from the referenced row when the caller leaves them empty and are never
// rewritten afterwards.
//
// # Delete Policy
//
//	┌──────────────┬──────────────────────────────────────────────────┐
//	│  Deleted     │  Effect on referencing rows                      │
//	├──────────────┼──────────────────────────────────────────────────┤
//	│  client      │  orders.client_id = NULL                         │
//	│  service     │  order_items.service_id = NULL                   │
//	│  supplier    │  cost_items.supplier_id = NULL                   │
//	│  order       │  order_items, cost_items, chat_messages deleted  │
//	└──────────────┴──────────────────────────────────────────────────┘
//
// # Reports
//
// Closed statuses are 完了 and 支払い.
//
//   - SalesReport(start, end): closed orders grouped by DATE(created_at), inclusive range
//   - MonthlyReport(year, month): closed orders completed in the month, item_total per order
//   - Dashboard(): client count, orders per status, realized revenue
//   - TaxSummary(start, end): line item amounts per tax rate with the tax rounded down
//   - TopClients(start, end, limit): clients ranked by realized sales
//
// Dates are compared as stored YYYY-MM-DD strings; no timezone conversion.
//
// # Timestamps
//
// created_at and updated_at are written in UTC as "YYYY-MM-DD HH:MM:SS" from
// the store Clock (time.Now unless WithClock is given), the same text sqlite
// writes for CURRENT_TIMESTAMP. The driver reads them back as UTC instants.
// DATE() on them and the completion date stamped by 完了 are UTC calendar
// days.
package store
