package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultServiceUnit = "式"

var DefaultTaxRate = decimal.NewFromInt(10)

type Service struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	Unit        string          `db:"unit" json:"unit"`
	TaxRate     decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}
