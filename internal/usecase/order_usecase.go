package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput holds the customer supplied checkout data.
type CheckoutInput struct {
	DeliveryAddress string
}

// Location is a WGS84 coordinate.
type Location struct {
	Lat float64
	Lng float64
}

// AvailableOrder is an unassigned order offered to couriers.
type AvailableOrder struct {
	*entity.Order
	SellerName string   `json:"sellerName"`
	DistanceKm *float64 `json:"distanceKm,omitempty"` // Nil when either side has no coordinates.
}

// OrderUsecase defines checkout, order queries and the status lifecycle.
type OrderUsecase interface {
	// Checkout turns the customer's cart into one pending order per seller.
	// The cart is cleared afterwards in a separate step.
	Checkout(ctx context.Context, customerID uuid.UUID, input *CheckoutInput) ([]*entity.Order, error)

	ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)
	ListSellerOrders(ctx context.Context, sellerID uuid.UUID, statuses []entity.OrderStatus) ([]*entity.Order, error)
	ListCourierOrders(ctx context.Context, courierID uuid.UUID) ([]*entity.Order, error)
	// ListAvailableOrders lists accepted or preparing orders without a courier,
	// nearest seller first when origin is given.
	ListAvailableOrders(ctx context.Context, origin *Location) ([]*AvailableOrder, error)
	ListAllOrders(ctx context.Context, statuses []entity.OrderStatus) ([]*entity.Order, error)

	// GetOrder returns an order visible to the principal.
	GetOrder(ctx context.Context, principal *entity.Principal, orderID int64) (*entity.Order, error)
	GetOrderHistory(ctx context.Context, principal *entity.Principal, orderID int64) ([]*entity.OrderStatusHistory, error)

	// TransitionStatus moves an order to next on behalf of principal.
	TransitionStatus(ctx context.Context, principal *entity.Principal, orderID int64, next entity.OrderStatus) (*entity.Order, error)
}
