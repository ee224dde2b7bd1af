package service

import (
	"context"

	"marketplace/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderStatusChanged publishes an order transition for async processing
	PublishOrderStatusChanged(ctx context.Context, event *entity.OrderStatusChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// OrderBroadcaster pushes order events to connected live subscribers.
type OrderBroadcaster interface {
	BroadcastOrderEvent(event *entity.OrderStatusChangedEvent)
}
