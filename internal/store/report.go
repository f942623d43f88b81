package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kantanpro/kantanpro/internal/models"
	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

const DefaultTopClientsLimit = 10

// ReportStore computes read-only aggregates. Nothing is cached: every call
// scans the tables again.
type ReportStore struct {
	db QueryInterceptor
}

func NewReportStore(db QueryInterceptor) *ReportStore {
	return &ReportStore{db: db}
}

// SalesReport groups closed orders by creation date within [start, end],
// newest date first.
func (s *ReportStore) SalesReport(ctx context.Context, start, end string) ([]models.SalesReportRow, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	rows := make([]models.SalesReportRow, 0)
	args := append(closedStatusArgs(), start, end)
	if err := s.db.Select(ctx, &rows, querySalesReport, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// MonthlyReport lists the closed orders completed in the given month with
// the sum of their line items, latest completion first.
func (s *ReportStore) MonthlyReport(ctx context.Context, year, month int) ([]models.MonthlyReportRow, error) {
	start, end, err := MonthBounds(year, month)
	if err != nil {
		return nil, err
	}

	rows := make([]models.MonthlyReportRow, 0)
	args := append(closedStatusArgs(), start, end)
	if err := s.db.Select(ctx, &rows, queryMonthlyReport, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ReportStore) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	var d models.Dashboard
	if _, err := s.db.Get(ctx, &d.ClientCount, queryCountClients); err != nil {
		return nil, err
	}

	counts := make([]models.StatusCount, 0)
	if err := s.db.Select(ctx, &counts, queryCountOrdersByStatus); err != nil {
		return nil, err
	}
	byStatus := make(map[models.OrderStatus]int64, len(counts))
	for _, c := range counts {
		byStatus[c.Status] += c.Count
		d.OrderCount += c.Count
	}
	d.ByStatus = make([]models.StatusCount, 0, len(models.OrderStatuses))
	for _, status := range models.OrderStatuses {
		d.ByStatus = append(d.ByStatus, models.StatusCount{Status: status, Count: byStatus[status]})
	}
	d.InProgressCount = byStatus[models.OrderStatusInProgress]

	if _, err := s.db.Get(ctx, &d.Revenue, queryRevenue, closedStatusArgs()...); err != nil {
		return nil, err
	}
	return &d, nil
}

// TaxSummary breaks the line items of closed orders created within
// [start, end] down by tax rate. Tax is rounded down to the yen per rate.
func (s *ReportStore) TaxSummary(ctx context.Context, start, end string) ([]models.TaxSummaryRow, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	rows := make([]models.TaxSummaryRow, 0)
	args := append(closedStatusArgs(), start, end)
	if err := s.db.Select(ctx, &rows, queryTaxSummary, args...); err != nil {
		return nil, err
	}
	hundred := decimal.NewFromInt(100)
	for i := range rows {
		rows[i].Tax = rows[i].Subtotal.Mul(rows[i].TaxRate).Div(hundred).Floor()
	}
	return rows, nil
}

// TopClients ranks clients by realized sales within [start, end].
func (s *ReportStore) TopClients(ctx context.Context, start, end string, limit int) ([]models.TopClientRow, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultTopClientsLimit
	}

	rows := make([]models.TopClientRow, 0)
	args := append(closedStatusArgs(), start, end, limit)
	if err := s.db.Select(ctx, &rows, queryTopClients, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// MonthBounds returns the first and last calendar day of a month.
func MonthBounds(year, month int) (string, string, error) {
	if month < 1 || month > 12 {
		return "", "", srvErrors.NewValidationError("month", "must be between 1 and 12, got %d", month)
	}
	if year < 1 || year > 9999 {
		return "", "", srvErrors.NewValidationError("year", "out of range: %d", year)
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(models.DateLayout), last.Format(models.DateLayout), nil
}

func validateRange(start, end string) error {
	if start == "" {
		return srvErrors.NewRequiredFieldError("start_date")
	}
	if end == "" {
		return srvErrors.NewRequiredFieldError("end_date")
	}
	if _, err := models.ParseDate(start); err != nil {
		return srvErrors.NewValidationError("start_date", "%s", err.Error())
	}
	if _, err := models.ParseDate(end); err != nil {
		return srvErrors.NewValidationError("end_date", "%s", err.Error())
	}
	if start > end {
		return srvErrors.NewValidationError("end_date", "%s is before %s", end, start)
	}
	return nil
}

func closedStatusArgs() []any {
	args := make([]any, 0, len(models.ClosedStatuses))
	for _, s := range models.ClosedStatuses {
		args = append(args, string(s))
	}
	return args
}
