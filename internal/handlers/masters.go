package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kantanpro/kantanpro/internal/models"
)

// GetClients (GET /clients)
func (h *Handler) GetClients(c *gin.Context) {
	limit, offset, err := page(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	clients, err := h.bridge.GetClients(c.Request.Context(), limit, offset)
	if err != nil {
		h.writeError(c, "list clients", err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClient (GET /clients/:id)
func (h *Handler) GetClient(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	client, err := h.bridge.GetClient(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "get client", err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClient (POST /clients)
func (h *Handler) CreateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.CreateClient(c.Request.Context(), client)
	if err != nil {
		h.writeError(c, "create client", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateClient (PUT /clients/:id)
func (h *Handler) UpdateClient(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.UpdateClient(c.Request.Context(), id, client)
	if err != nil {
		h.writeError(c, "update client", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteClient (DELETE /clients/:id)
func (h *Handler) DeleteClient(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.DeleteClient(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "delete client", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetServices (GET /services)
func (h *Handler) GetServices(c *gin.Context) {
	limit, offset, err := page(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	services, err := h.bridge.GetServices(c.Request.Context(), limit, offset)
	if err != nil {
		h.writeError(c, "list services", err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetService (GET /services/:id)
func (h *Handler) GetService(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	service, err := h.bridge.GetService(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "get service", err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// CreateService (POST /services)
func (h *Handler) CreateService(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.CreateService(c.Request.Context(), service)
	if err != nil {
		h.writeError(c, "create service", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateService (PUT /services/:id)
func (h *Handler) UpdateService(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.UpdateService(c.Request.Context(), id, service)
	if err != nil {
		h.writeError(c, "update service", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteService (DELETE /services/:id)
func (h *Handler) DeleteService(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.DeleteService(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "delete service", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetSuppliers (GET /suppliers)
func (h *Handler) GetSuppliers(c *gin.Context) {
	limit, offset, err := page(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	suppliers, err := h.bridge.GetSuppliers(c.Request.Context(), limit, offset)
	if err != nil {
		h.writeError(c, "list suppliers", err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

// GetSupplier (GET /suppliers/:id)
func (h *Handler) GetSupplier(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	supplier, err := h.bridge.GetSupplier(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "get supplier", err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// CreateSupplier (POST /suppliers)
func (h *Handler) CreateSupplier(c *gin.Context) {
	var supplier models.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.CreateSupplier(c.Request.Context(), supplier)
	if err != nil {
		h.writeError(c, "create supplier", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateSupplier (PUT /suppliers/:id)
func (h *Handler) UpdateSupplier(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	var supplier models.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.UpdateSupplier(c.Request.Context(), id, supplier)
	if err != nil {
		h.writeError(c, "update supplier", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteSupplier (DELETE /suppliers/:id)
func (h *Handler) DeleteSupplier(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.DeleteSupplier(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "delete supplier", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
