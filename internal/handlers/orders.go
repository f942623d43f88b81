package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kantanpro/kantanpro/internal/models"
)

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

type chatRequest struct {
	UserName string `json:"user_name"`
	Message  string `json:"message"`
}

// GetOrders (GET /orders?status=)
func (h *Handler) GetOrders(c *gin.Context) {
	limit, offset, err := page(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	orders, err := h.bridge.GetOrders(c.Request.Context(), limit, offset, c.Query("status"))
	if err != nil {
		h.writeError(c, "list orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder (GET /orders/:id)
func (h *Handler) GetOrder(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.bridge.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "get order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrder (POST /orders)
func (h *Handler) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.CreateOrder(c.Request.Context(), order)
	if err != nil {
		h.writeError(c, "create order", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateOrder (PUT /orders/:id)
func (h *Handler) UpdateOrder(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.UpdateOrder(c.Request.Context(), id, order)
	if err != nil {
		h.writeError(c, "update order", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateOrderStatus (PATCH /orders/:id/status)
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.UpdateOrderStatus(c.Request.Context(), id, models.OrderStatus(req.Status))
	if err != nil {
		h.writeError(c, "update order status", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteOrder (DELETE /orders/:id)
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.DeleteOrder(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "delete order", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetOrderItems (GET /orders/:id/items)
func (h *Handler) GetOrderItems(c *gin.Context) {
	orderID, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	items, err := h.bridge.GetOrderItems(c.Request.Context(), orderID)
	if err != nil {
		h.writeError(c, "list order items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateOrderItem (POST /orders/:id/items)
func (h *Handler) CreateOrderItem(c *gin.Context) {
	orderID, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	var item models.OrderItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, err)
		return
	}
	item.OrderID = orderID

	res, err := h.bridge.CreateOrderItem(c.Request.Context(), item)
	if err != nil {
		h.writeError(c, "create order item", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateOrderItem (PUT /order-items/:id)
func (h *Handler) UpdateOrderItem(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	var item models.OrderItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.UpdateOrderItem(c.Request.Context(), id, item)
	if err != nil {
		h.writeError(c, "update order item", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteOrderItem (DELETE /order-items/:id)
func (h *Handler) DeleteOrderItem(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.DeleteOrderItem(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "delete order item", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetCostItems (GET /orders/:id/costs)
func (h *Handler) GetCostItems(c *gin.Context) {
	orderID, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	items, err := h.bridge.GetCostItems(c.Request.Context(), orderID)
	if err != nil {
		h.writeError(c, "list cost items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateCostItem (POST /orders/:id/costs)
func (h *Handler) CreateCostItem(c *gin.Context) {
	orderID, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	var item models.CostItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, err)
		return
	}
	item.OrderID = orderID

	res, err := h.bridge.CreateCostItem(c.Request.Context(), item)
	if err != nil {
		h.writeError(c, "create cost item", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateCostItem (PUT /cost-items/:id)
func (h *Handler) UpdateCostItem(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	var item models.CostItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.UpdateCostItem(c.Request.Context(), id, item)
	if err != nil {
		h.writeError(c, "update cost item", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteCostItem (DELETE /cost-items/:id)
func (h *Handler) DeleteCostItem(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.DeleteCostItem(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "delete cost item", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetChatMessages (GET /orders/:id/messages?limit=)
func (h *Handler) GetChatMessages(c *gin.Context) {
	orderID, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		badRequest(c, err)
		return
	}

	messages, err := h.bridge.GetChatMessages(c.Request.Context(), orderID, limit)
	if err != nil {
		h.writeError(c, "list chat messages", err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// AddChatMessage (POST /orders/:id/messages)
func (h *Handler) AddChatMessage(c *gin.Context) {
	orderID, err := pathID(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.bridge.AddChatMessage(c.Request.Context(), orderID, req.UserName, req.Message)
	if err != nil {
		h.writeError(c, "add chat message", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
