package services

import (
	"context"

	"github.com/kantanpro/kantanpro/internal/models"
	"github.com/kantanpro/kantanpro/internal/store"
	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

// GetOrders lists orders with their client names. An empty status lists
// every order.
func (b *Bridge) GetOrders(ctx context.Context, limit, offset int, status string) ([]models.OrderWithClient, error) {
	opts := pageOptions(limit, offset)
	if status != "" {
		parsed, err := models.ParseOrderStatus(status)
		if err != nil {
			return nil, srvErrors.NewValidationError("status", "%s", err.Error())
		}
		opts = append(opts, store.ByStatus(parsed))
	}

	return call(ctx, b, "getOrders", func(ctx context.Context, st *store.Store) ([]models.OrderWithClient, error) {
		return st.Orders().ListWithClientName(ctx, opts...)
	})
}

func (b *Bridge) GetOrder(ctx context.Context, id int64) (*models.OrderWithClient, error) {
	return call(ctx, b, "getOrder", func(ctx context.Context, st *store.Store) (*models.OrderWithClient, error) {
		return st.Orders().Get(ctx, id)
	})
}

func (b *Bridge) CreateOrder(ctx context.Context, o models.Order) (models.ExecResult, error) {
	return call(ctx, b, "createOrder", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		return st.Orders().Create(ctx, o)
	})
}

func (b *Bridge) UpdateOrder(ctx context.Context, id int64, o models.Order) (models.ExecResult, error) {
	return call(ctx, b, "updateOrder", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		res, err := st.Orders().Update(ctx, id, o)
		return requireChange("order", id, res, err)
	})
}

func (b *Bridge) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (models.ExecResult, error) {
	return call(ctx, b, "updateOrderStatus", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		res, err := st.Orders().UpdateStatus(ctx, id, status)
		return requireChange("order", id, res, err)
	})
}

func (b *Bridge) DeleteOrder(ctx context.Context, id int64) (models.ExecResult, error) {
	return call(ctx, b, "deleteOrder", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		res, err := st.Orders().Delete(ctx, id)
		return requireChange("order", id, res, err)
	})
}

func (b *Bridge) GetOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	return call(ctx, b, "getOrderItems", func(ctx context.Context, st *store.Store) ([]models.OrderItem, error) {
		return st.OrderItems().ListForOrder(ctx, orderID)
	})
}

func (b *Bridge) CreateOrderItem(ctx context.Context, item models.OrderItem) (models.ExecResult, error) {
	return call(ctx, b, "createOrderItem", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		return st.OrderItems().Create(ctx, item)
	})
}

func (b *Bridge) UpdateOrderItem(ctx context.Context, id int64, item models.OrderItem) (models.ExecResult, error) {
	return call(ctx, b, "updateOrderItem", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		res, err := st.OrderItems().Update(ctx, id, item)
		return requireChange("order item", id, res, err)
	})
}

func (b *Bridge) DeleteOrderItem(ctx context.Context, id int64) (models.ExecResult, error) {
	return call(ctx, b, "deleteOrderItem", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		res, err := st.OrderItems().Delete(ctx, id)
		return requireChange("order item", id, res, err)
	})
}

func (b *Bridge) GetCostItems(ctx context.Context, orderID int64) ([]models.CostItem, error) {
	return call(ctx, b, "getCostItems", func(ctx context.Context, st *store.Store) ([]models.CostItem, error) {
		return st.CostItems().ListForOrder(ctx, orderID)
	})
}

func (b *Bridge) CreateCostItem(ctx context.Context, item models.CostItem) (models.ExecResult, error) {
	return call(ctx, b, "createCostItem", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		return st.CostItems().Create(ctx, item)
	})
}

func (b *Bridge) UpdateCostItem(ctx context.Context, id int64, item models.CostItem) (models.ExecResult, error) {
	return call(ctx, b, "updateCostItem", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		res, err := st.CostItems().Update(ctx, id, item)
		return requireChange("cost item", id, res, err)
	})
}

func (b *Bridge) DeleteCostItem(ctx context.Context, id int64) (models.ExecResult, error) {
	return call(ctx, b, "deleteCostItem", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		res, err := st.CostItems().Delete(ctx, id)
		return requireChange("cost item", id, res, err)
	})
}

func (b *Bridge) GetChatMessages(ctx context.Context, orderID int64, limit int) ([]models.ChatMessage, error) {
	return call(ctx, b, "getChatMessages", func(ctx context.Context, st *store.Store) ([]models.ChatMessage, error) {
		return st.Chat().ListForOrder(ctx, orderID, limit)
	})
}

func (b *Bridge) AddChatMessage(ctx context.Context, orderID int64, userName, message string) (models.ExecResult, error) {
	return call(ctx, b, "addChatMessage", func(ctx context.Context, st *store.Store) (models.ExecResult, error) {
		return st.Chat().Append(ctx, orderID, userName, message)
	})
}
