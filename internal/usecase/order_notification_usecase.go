package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// DeliveryResult summarizes one push fan-out.
type DeliveryResult struct {
	Recipients      int
	SuccessCount    int
	FailureCount    int
	InvalidTokens   int
	SkippedNoDevice int
}

// OrderNotificationUsecase turns order events into push notifications.
type OrderNotificationUsecase interface {
	// HandleOrderStatusChanged notifies the parties of an order about a transition.
	HandleOrderStatusChanged(ctx context.Context, event *entity.OrderStatusChangedEvent) (*DeliveryResult, error)
}
