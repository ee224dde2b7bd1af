package entity

import (
	"time"

	"github.com/google/uuid"
)

const EventTypeOrderStatusChanged = "order.status_changed"

// OrderStatusChangedEvent is published after an order transition commits.
type OrderStatusChangedEvent struct {
	RequestID  string      `json:"requestId,omitempty"` // For distributed tracing
	Type       string      `json:"type"`
	OrderID    int64       `json:"orderId"`
	CustomerID uuid.UUID   `json:"customerId"`
	SellerID   uuid.UUID   `json:"sellerId"`
	CourierID  *uuid.UUID  `json:"courierId,omitempty"`
	From       OrderStatus `json:"from"`
	To         OrderStatus `json:"to"`
	ChangedBy  uuid.UUID   `json:"changedBy"`
	OccurredAt time.Time   `json:"occurredAt"`
}

// NewOrderStatusChangedEvent builds the event for an updated order.
func NewOrderStatusChangedEvent(order *Order, from OrderStatus, actorID uuid.UUID) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		Type:       EventTypeOrderStatusChanged,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		SellerID:   order.SellerID,
		CourierID:  order.CourierID,
		From:       from,
		To:         order.Status,
		ChangedBy:  actorID,
		OccurredAt: order.UpdatedAt,
	}
}

// Recipients returns the accounts that should observe the change.
func (e *OrderStatusChangedEvent) Recipients() []uuid.UUID {
	return distinctAccounts(e.CustomerID, e.SellerID, e.CourierID)
}
