package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kantanpro/kantanpro/internal/export"
	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

const defaultTopClients = 10

// GetSalesReport (GET /reports/sales?start=&end=)
func (h *Handler) GetSalesReport(c *gin.Context) {
	rows, err := h.bridge.GetSalesReport(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		h.writeError(c, "build sales report", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetMonthlyReport (GET /reports/monthly?year=&month=)
func (h *Handler) GetMonthlyReport(c *gin.Context) {
	year, month, err := yearMonth(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	rows, err := h.bridge.GetMonthlyReport(c.Request.Context(), year, month)
	if err != nil {
		h.writeError(c, "build monthly report", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetDashboard (GET /reports/dashboard)
func (h *Handler) GetDashboard(c *gin.Context) {
	dashboard, err := h.bridge.GetDashboard(c.Request.Context())
	if err != nil {
		h.writeError(c, "build dashboard", err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// GetTaxSummary (GET /reports/tax?start=&end=)
func (h *Handler) GetTaxSummary(c *gin.Context) {
	rows, err := h.bridge.GetTaxSummary(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		h.writeError(c, "build tax summary", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetTopClients (GET /reports/top-clients?start=&end=&limit=)
func (h *Handler) GetTopClients(c *gin.Context) {
	limit, err := queryInt(c, "limit", defaultTopClients)
	if err != nil {
		badRequest(c, err)
		return
	}

	rows, err := h.bridge.GetTopClients(c.Request.Context(), c.Query("start"), c.Query("end"), limit)
	if err != nil {
		h.writeError(c, "rank clients", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ExportSalesReport (GET /reports/sales/export?start=&end=&format=&encoding=)
func (h *Handler) ExportSalesReport(c *gin.Context) {
	format, enc, err := exportOptions(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	file, err := h.bridge.ExportSalesReport(c.Request.Context(), c.Query("start"), c.Query("end"), format, enc)
	if err != nil {
		h.writeError(c, "export sales report", err)
		return
	}
	attachment(c, file)
}

// ExportMonthlyReport (GET /reports/monthly/export?year=&month=&format=&encoding=)
func (h *Handler) ExportMonthlyReport(c *gin.Context) {
	year, month, err := yearMonth(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	format, enc, err := exportOptions(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	file, err := h.bridge.ExportMonthlyReport(c.Request.Context(), year, month, format, enc)
	if err != nil {
		h.writeError(c, "export monthly report", err)
		return
	}
	attachment(c, file)
}

// ExportTaxSummary (GET /reports/tax/export?start=&end=&format=&encoding=)
func (h *Handler) ExportTaxSummary(c *gin.Context) {
	format, enc, err := exportOptions(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	file, err := h.bridge.ExportTaxSummary(c.Request.Context(), c.Query("start"), c.Query("end"), format, enc)
	if err != nil {
		h.writeError(c, "export tax summary", err)
		return
	}
	attachment(c, file)
}

func yearMonth(c *gin.Context) (int, int, error) {
	if c.Query("year") == "" {
		return 0, 0, srvErrors.NewRequiredFieldError("year")
	}
	if c.Query("month") == "" {
		return 0, 0, srvErrors.NewRequiredFieldError("month")
	}
	year, err := queryInt(c, "year", 0)
	if err != nil {
		return 0, 0, err
	}
	month, err := queryInt(c, "month", 0)
	if err != nil {
		return 0, 0, err
	}
	return year, month, nil
}

func exportOptions(c *gin.Context) (export.Format, export.Encoding, error) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		return "", "", err
	}
	enc, err := export.ParseEncoding(c.Query("encoding"))
	if err != nil {
		return "", "", err
	}
	return format, enc, nil
}

func attachment(c *gin.Context, file *export.File) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
