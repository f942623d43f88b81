package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kantanpro/kantanpro/internal/config"
	"github.com/kantanpro/kantanpro/internal/export"
	"github.com/kantanpro/kantanpro/internal/models"
)

type exportFlags struct {
	out      string
	format   string
	encoding string
}

func (f *exportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Write the report to this directory instead of printing it")
	cmd.Flags().StringVar(&f.format, "format", string(export.FormatXLSX), "Export format: xlsx or csv")
	cmd.Flags().StringVar(&f.encoding, "encoding", string(export.EncodingUTF8), "CSV encoding: utf8 or sjis")
}

// emit prints t, or renders it into the --out directory.
func (f *exportFlags) emit(cmd *cobra.Command, t export.Table) error {
	if f.out == "" {
		return printTable(cmd.OutOrStdout(), t)
	}

	format, err := export.ParseFormat(f.format)
	if err != nil {
		return err
	}
	enc, err := export.ParseEncoding(f.encoding)
	if err != nil {
		return err
	}
	file, err := export.Render(t, format, enc)
	if err != nil {
		return err
	}

	path := filepath.Join(f.out, file.Name)
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func newReportCmd(cfg *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print or export reports",
	}
	cmd.AddCommand(
		newSalesReportCmd(cfg),
		newMonthlyReportCmd(cfg),
		newTaxReportCmd(cfg),
		newDashboardCmd(cfg),
	)
	return cmd
}

func newSalesReportCmd(cfg *config.Configuration) *cobra.Command {
	var (
		start, end string
		ef         exportFlags
	)
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Daily sales of completed and paid orders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			rows, err := a.bridge.GetSalesReport(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			return ef.emit(cmd, export.SalesTable(start, end, rows))
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "Last day, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	ef.register(cmd)
	return cmd
}

func newMonthlyReportCmd(cfg *config.Configuration) *cobra.Command {
	var ef exportFlags
	cmd := &cobra.Command{
		Use:   "monthly YEAR MONTH",
		Short: "Orders closed in a month with their line item totals",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid month %q", args[1])
			}

			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			rows, err := a.bridge.GetMonthlyReport(cmd.Context(), year, month)
			if err != nil {
				return err
			}
			return ef.emit(cmd, export.MonthlyTable(year, month, rows))
		},
	}
	ef.register(cmd)
	return cmd
}

func newTaxReportCmd(cfg *config.Configuration) *cobra.Command {
	var (
		start, end string
		ef         exportFlags
	)
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Line item amounts and tax per tax rate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			rows, err := a.bridge.GetTaxSummary(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			return ef.emit(cmd, export.TaxTable(start, end, rows))
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "Last day, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	ef.register(cmd)
	return cmd
}

func newDashboardCmd(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Client count, orders per status and revenue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			d, err := a.bridge.GetDashboard(cmd.Context())
			if err != nil {
				return err
			}
			return printTable(cmd.OutOrStdout(), dashboardTable(d))
		},
	}
}

func dashboardTable(d *models.Dashboard) export.Table {
	t := export.Table{
		Name:   "dashboard",
		Header: []string{"項目", "値"},
		Rows: [][]any{
			{"顧客数", d.ClientCount},
			{"受注件数", d.OrderCount},
			{"進行中", d.InProgressCount},
			{"売上", d.Revenue},
		},
	}
	for _, s := range d.ByStatus {
		t.Rows = append(t.Rows, []any{s.Status, s.Count})
	}
	return t
}
