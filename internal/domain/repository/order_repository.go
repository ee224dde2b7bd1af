package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusConflict is returned when the order left the expected status before the update ran.
	ErrOrderStatusConflict = errors.New("order status changed concurrently")
)

// OrderFilter narrows ListOrders. Nil and empty fields are ignored.
type OrderFilter struct {
	CustomerID     *uuid.UUID
	SellerID       *uuid.UUID
	CourierID      *uuid.UUID
	Statuses       []entity.OrderStatus
	UnassignedOnly bool
}

// OrderRepository defines order database operations.
type OrderRepository interface {
	// CreateOrder persists the order and its items, filling generated IDs.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its items.
	FindOrderByID(ctx context.Context, id int64) (*entity.Order, error)

	// ListOrders lists orders with items, newest first.
	ListOrders(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// UpdateOrderStatus performs a compare-and-set on the order status.
	// It returns ErrOrderStatusConflict if the stored status is not change.From.
	UpdateOrderStatus(ctx context.Context, change entity.OrderStatusChange) error

	CreateStatusHistory(ctx context.Context, history *entity.OrderStatusHistory) error
	ListStatusHistory(ctx context.Context, orderID int64) ([]*entity.OrderStatusHistory, error)
}
