package models

import "github.com/shopspring/decimal"

type SalesReportRow struct {
	Date       string          `db:"date" json:"date"`
	TotalSales decimal.Decimal `db:"total_sales" json:"total_sales"`
	OrderCount int64           `db:"order_count" json:"order_count"`
}

// MonthlyReportRow is one closed order with the sum of its line items.
// ItemTotal is null when the order has no line items.
type MonthlyReportRow struct {
	OrderWithClient
	ItemTotal decimal.NullDecimal `db:"item_total" json:"item_total"`
}

type StatusCount struct {
	Status OrderStatus `db:"status" json:"status"`
	Count  int64       `db:"count" json:"count"`
}

type Dashboard struct {
	ClientCount     int64           `json:"client_count"`
	OrderCount      int64           `json:"order_count"`
	InProgressCount int64           `json:"in_progress_count"`
	Revenue         decimal.Decimal `json:"revenue"`
	ByStatus        []StatusCount   `json:"by_status"`
}

type TaxSummaryRow struct {
	TaxRate  decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	Subtotal decimal.Decimal `db:"subtotal" json:"subtotal"`
	Tax      decimal.Decimal `db:"-" json:"tax"`
	Items    int64           `db:"items" json:"items"`
}

type TopClientRow struct {
	ClientID   int64           `db:"client_id" json:"client_id"`
	ClientName string          `db:"client_name" json:"client_name"`
	TotalSales decimal.Decimal `db:"total_sales" json:"total_sales"`
	OrderCount int64           `db:"order_count" json:"order_count"`
}
