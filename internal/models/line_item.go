package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is an invoiced line. ServiceName is a snapshot taken on creation.
type OrderItem struct {
	ID          int64           `db:"id" json:"id"`
	OrderID     int64           `db:"order_id" json:"order_id"`
	ServiceID   *int64          `db:"service_id" json:"service_id"`
	ServiceName string          `db:"service_name" json:"service_name"`
	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	TaxRate     decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Notes       string          `db:"notes" json:"notes"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// CostItem is a purchase from a supplier attributed to an order.
// SupplierName and QualifiedInvoiceNumber are snapshots taken on creation.
type CostItem struct {
	ID                     int64           `db:"id" json:"id"`
	OrderID                int64           `db:"order_id" json:"order_id"`
	SupplierID             *int64          `db:"supplier_id" json:"supplier_id"`
	SupplierName           string          `db:"supplier_name" json:"supplier_name"`
	ItemName               string          `db:"item_name" json:"item_name"`
	Quantity               decimal.Decimal `db:"quantity" json:"quantity"`
	UnitPrice              decimal.Decimal `db:"unit_price" json:"unit_price"`
	TaxRate                decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	Amount                 decimal.Decimal `db:"amount" json:"amount"`
	Notes                  string          `db:"notes" json:"notes"`
	QualifiedInvoiceNumber string          `db:"qualified_invoice_number" json:"qualified_invoice_number"`
	CreatedAt              time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time       `db:"updated_at" json:"updated_at"`
}
