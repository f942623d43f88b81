package export

import (
	"fmt"

	"github.com/kantanpro/kantanpro/internal/models"
)

func SalesTable(start, end string, rows []models.SalesReportRow) Table {
	t := Table{
		Name:   fmt.Sprintf("sales_%s_%s", start, end),
		Header: []string{"日付", "売上金額", "件数"},
		Rows:   make([][]any, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Date, r.TotalSales, r.OrderCount})
	}
	return t
}

func MonthlyTable(year, month int, rows []models.MonthlyReportRow) Table {
	t := Table{
		Name:   fmt.Sprintf("monthly_%04d-%02d", year, month),
		Header: []string{"受注ID", "案件名", "顧客名", "ステータス", "完了日", "受注金額", "消費税", "明細合計"},
		Rows:   make([][]any, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{
			r.ID, r.ProjectName, r.ClientName, r.Status, r.CompletionDate,
			r.TotalAmount, r.TaxAmount, r.ItemTotal,
		})
	}
	return t
}

func TaxTable(start, end string, rows []models.TaxSummaryRow) Table {
	t := Table{
		Name:   fmt.Sprintf("tax_%s_%s", start, end),
		Header: []string{"税率", "課税売上高", "消費税額", "明細数"},
		Rows:   make([][]any, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.TaxRate, r.Subtotal, r.Tax, r.Items})
	}
	return t
}
