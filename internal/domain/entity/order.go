package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a purchase from a single seller.
type Order struct {
	ID              int64           `json:"id"`
	CustomerID      uuid.UUID       `json:"customerId"`
	SellerID        uuid.UUID       `json:"sellerId"`
	CourierID       *uuid.UUID      `json:"courierId,omitempty"` // Assigned on the first fulfilment step taken by a courier.
	Status          OrderStatus     `json:"status"`
	Total           decimal.Decimal `json:"total"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Items           []OrderItem     `json:"items"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderItem captures a product at the price it had when the order was placed.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Subtotal returns UnitPrice multiplied by Quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CalculateTotal sums all item subtotals.
func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// IsParty reports whether accountID is the customer, seller or courier of the order.
func (o *Order) IsParty(accountID uuid.UUID) bool {
	if o.CustomerID == accountID || o.SellerID == accountID {
		return true
	}

	return o.CourierID != nil && *o.CourierID == accountID
}

// Parties returns the distinct accounts involved in the order.
func (o *Order) Parties() []uuid.UUID {
	return distinctAccounts(o.CustomerID, o.SellerID, o.CourierID)
}

// distinctAccounts drops repeated IDs while keeping the first occurrence order.
func distinctAccounts(customerID, sellerID uuid.UUID, courierID *uuid.UUID) []uuid.UUID {
	ids := make([]uuid.UUID, 0, 3)
	add := func(id uuid.UUID) {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	add(customerID)
	add(sellerID)
	if courierID != nil {
		add(*courierID)
	}

	return ids
}

// OrderStatusHistory records one status transition for auditing.
type OrderStatusHistory struct {
	ID         int64       `json:"id"`
	OrderID    int64       `json:"orderId"`
	FromStatus OrderStatus `json:"fromStatus"`
	ToStatus   OrderStatus `json:"toStatus"`
	ActorID    uuid.UUID   `json:"actorId"`
	ActorRole  Role        `json:"actorRole"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// OrderStatusChange is the request to move an order between two statuses.
type OrderStatusChange struct {
	OrderID    int64
	From       OrderStatus
	To         OrderStatus
	ActorID    uuid.UUID
	ActorRole  Role
	AssignToID *uuid.UUID // Courier to assign in the same update, if any.
}
