package services

import (
	"context"

	"github.com/kantanpro/kantanpro/internal/export"
	"github.com/kantanpro/kantanpro/internal/models"
	"github.com/kantanpro/kantanpro/internal/store"
)

func (b *Bridge) GetSalesReport(ctx context.Context, start, end string) ([]models.SalesReportRow, error) {
	return call(ctx, b, "getSalesReport", func(ctx context.Context, st *store.Store) ([]models.SalesReportRow, error) {
		return st.Reports().SalesReport(ctx, start, end)
	})
}

func (b *Bridge) GetMonthlyReport(ctx context.Context, year, month int) ([]models.MonthlyReportRow, error) {
	return call(ctx, b, "getMonthlyReport", func(ctx context.Context, st *store.Store) ([]models.MonthlyReportRow, error) {
		return st.Reports().MonthlyReport(ctx, year, month)
	})
}

func (b *Bridge) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	return call(ctx, b, "getDashboard", func(ctx context.Context, st *store.Store) (*models.Dashboard, error) {
		return st.Reports().Dashboard(ctx)
	})
}

func (b *Bridge) GetTaxSummary(ctx context.Context, start, end string) ([]models.TaxSummaryRow, error) {
	return call(ctx, b, "getTaxSummary", func(ctx context.Context, st *store.Store) ([]models.TaxSummaryRow, error) {
		return st.Reports().TaxSummary(ctx, start, end)
	})
}

func (b *Bridge) GetTopClients(ctx context.Context, start, end string, limit int) ([]models.TopClientRow, error) {
	return call(ctx, b, "getTopClients", func(ctx context.Context, st *store.Store) ([]models.TopClientRow, error) {
		return st.Reports().TopClients(ctx, start, end, limit)
	})
}

// ExportSalesReport renders the sales report. Rendering runs outside the
// scheduler once the rows are read.
func (b *Bridge) ExportSalesReport(ctx context.Context, start, end string, format export.Format, enc export.Encoding) (*export.File, error) {
	rows, err := b.GetSalesReport(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return export.Render(export.SalesTable(start, end, rows), format, enc)
}

func (b *Bridge) ExportMonthlyReport(ctx context.Context, year, month int, format export.Format, enc export.Encoding) (*export.File, error) {
	rows, err := b.GetMonthlyReport(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return export.Render(export.MonthlyTable(year, month, rows), format, enc)
}

func (b *Bridge) ExportTaxSummary(ctx context.Context, start, end string, format export.Format, enc export.Encoding) (*export.File, error) {
	rows, err := b.GetTaxSummary(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return export.Render(export.TaxTable(start, end, rows), format, enc)
}
