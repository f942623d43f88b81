package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusReceived   OrderStatus = "受注"
	OrderStatusInProgress OrderStatus = "進行中"
	OrderStatusCompleted  OrderStatus = "完了"
	OrderStatusInvoiced   OrderStatus = "請求"
	OrderStatusPaid       OrderStatus = "支払い"
	OrderStatusDropped    OrderStatus = "ボツ"
	OrderStatusQuoting    OrderStatus = "見積中"
)

// OrderStatuses lists every status in workflow order.
var OrderStatuses = []OrderStatus{
	OrderStatusQuoting,
	OrderStatusReceived,
	OrderStatusInProgress,
	OrderStatusCompleted,
	OrderStatusInvoiced,
	OrderStatusPaid,
	OrderStatusDropped,
}

// ClosedStatuses are the statuses counted as realized revenue.
var ClosedStatuses = []OrderStatus{OrderStatusCompleted, OrderStatusPaid}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, status := range OrderStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid order status: %q", s)
}

func (s OrderStatus) IsClosed() bool {
	return s == OrderStatusCompleted || s == OrderStatusPaid
}

func (s OrderStatus) String() string {
	return string(s)
}

type Order struct {
	ID             int64           `db:"id" json:"id"`
	ClientID       *int64          `db:"client_id" json:"client_id"`
	ProjectName    string          `db:"project_name" json:"project_name"`
	Description    string          `db:"description" json:"description"`
	Status         OrderStatus     `db:"status" json:"status"`
	TotalAmount    decimal.Decimal `db:"total_amount" json:"total_amount"`
	TaxAmount      decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	Deadline       Date            `db:"deadline" json:"deadline"`
	CompletionDate Date            `db:"completion_date" json:"completion_date"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// OrderWithClient decorates an order with the name of its client for display.
type OrderWithClient struct {
	Order
	ClientName string `db:"client_name" json:"client_name"`
}
