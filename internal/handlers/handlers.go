package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kantanpro/kantanpro/internal/services"
	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

const (
	maxPageSize = 100
)

type Handler struct {
	bridge *services.Bridge
	log    *zap.SugaredLogger
}

func New(bridge *services.Bridge) *Handler {
	return &Handler{
		bridge: bridge,
		log:    zap.S().Named("handler"),
	}
}

// RegisterRoutes mounts every endpoint on router. The server passes the
// /api/v1 group.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/clients", h.GetClients)
	router.POST("/clients", h.CreateClient)
	router.GET("/clients/:id", h.GetClient)
	router.PUT("/clients/:id", h.UpdateClient)
	router.DELETE("/clients/:id", h.DeleteClient)

	router.GET("/services", h.GetServices)
	router.POST("/services", h.CreateService)
	router.GET("/services/:id", h.GetService)
	router.PUT("/services/:id", h.UpdateService)
	router.DELETE("/services/:id", h.DeleteService)

	router.GET("/suppliers", h.GetSuppliers)
	router.POST("/suppliers", h.CreateSupplier)
	router.GET("/suppliers/:id", h.GetSupplier)
	router.PUT("/suppliers/:id", h.UpdateSupplier)
	router.DELETE("/suppliers/:id", h.DeleteSupplier)

	router.GET("/orders", h.GetOrders)
	router.POST("/orders", h.CreateOrder)
	router.GET("/orders/:id", h.GetOrder)
	router.PUT("/orders/:id", h.UpdateOrder)
	router.DELETE("/orders/:id", h.DeleteOrder)
	router.PATCH("/orders/:id/status", h.UpdateOrderStatus)

	router.GET("/orders/:id/items", h.GetOrderItems)
	router.POST("/orders/:id/items", h.CreateOrderItem)
	router.PUT("/order-items/:id", h.UpdateOrderItem)
	router.DELETE("/order-items/:id", h.DeleteOrderItem)

	router.GET("/orders/:id/costs", h.GetCostItems)
	router.POST("/orders/:id/costs", h.CreateCostItem)
	router.PUT("/cost-items/:id", h.UpdateCostItem)
	router.DELETE("/cost-items/:id", h.DeleteCostItem)

	router.GET("/orders/:id/messages", h.GetChatMessages)
	router.POST("/orders/:id/messages", h.AddChatMessage)

	router.GET("/reports/sales", h.GetSalesReport)
	router.GET("/reports/sales/export", h.ExportSalesReport)
	router.GET("/reports/monthly", h.GetMonthlyReport)
	router.GET("/reports/monthly/export", h.ExportMonthlyReport)
	router.GET("/reports/tax", h.GetTaxSummary)
	router.GET("/reports/tax/export", h.ExportTaxSummary)
	router.GET("/reports/dashboard", h.GetDashboard)
	router.GET("/reports/top-clients", h.GetTopClients)

	router.GET("/settings", h.GetSettings)
	router.PUT("/settings", h.SaveSettings)
	router.GET("/settings/:key", h.GetSetting)
	router.PUT("/settings/:key", h.SetSetting)
	router.DELETE("/settings/:key", h.DeleteSetting)
}

// writeError maps err to a status code. Storage failures are logged and
// answered with a generic message.
func (h *Handler) writeError(c *gin.Context, action string, err error) {
	switch {
	case srvErrors.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case srvErrors.IsResourceNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrBridgeClosed):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service is shutting down"})
	default:
		h.log.Errorw("request failed", "action", action, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + action})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, srvErrors.NewValidationError("id", "must be a positive integer, got %q", c.Param("id"))
	}
	return id, nil
}

// queryInt returns def when the parameter is absent.
func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, srvErrors.NewValidationError(name, "must be an integer, got %q", raw)
	}
	if v < 0 {
		return 0, srvErrors.NewValidationError(name, "must not be negative")
	}
	return v, nil
}

func page(c *gin.Context) (limit, offset int, err error) {
	if limit, err = queryInt(c, "limit", 0); err != nil {
		return 0, 0, err
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset, err = queryInt(c, "offset", 0); err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}
