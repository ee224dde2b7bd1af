package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

var statusMessages = map[entity.OrderStatus]string{
	entity.OrderAccepted:       "has been accepted by the seller",
	entity.OrderRejected:       "was rejected by the seller",
	entity.OrderPreparing:      "is being prepared",
	entity.OrderOutForDelivery: "is out for delivery",
	entity.OrderDelivered:      "has been delivered",
	entity.OrderCancelled:      "was cancelled",
}

type orderNotificationService struct {
	deviceRepo repository.DeviceRepository
	sender     service.PushSender
	logger     *slog.Logger
}

// NewOrderNotificationService creates the push fan-out for order events.
func NewOrderNotificationService(
	deviceRepo repository.DeviceRepository,
	sender service.PushSender,
	logger *slog.Logger,
) usecase.OrderNotificationUsecase {
	return &orderNotificationService{
		deviceRepo: deviceRepo,
		sender:     sender,
		logger:     logger,
	}
}

// HandleOrderStatusChanged notifies every party of the order except the one who made the change.
// It fails only when nothing could be delivered, so the caller can redeliver the event.
func (s *orderNotificationService) HandleOrderStatusChanged(ctx context.Context, event *entity.OrderStatusChangedEvent) (*usecase.DeliveryResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.Int64("order_id", event.OrderID),
		slog.String("to", string(event.To)),
	)

	result := &usecase.DeliveryResult{}
	var tokens []string
	for _, recipient := range notifyTargets(event) {
		result.Recipients++

		devices, err := s.deviceRepo.FindActiveDevicesByAccount(ctx, recipient)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find devices for "+recipient.String())
		}
		if len(devices) == 0 {
			result.SkippedNoDevice++

			continue
		}
		for _, device := range devices {
			tokens = append(tokens, device.FCMToken)
		}
	}
	if len(tokens) == 0 {
		logger.Debug("No devices to notify", slog.Int("recipients", result.Recipients))

		return result, nil
	}

	msg := orderNotificationMessage(event)

	var stale []string
	var lastErr error
	for batch := range slices.Chunk(tokens, service.MaxPushTokens) {
		report, err := s.sender.Send(ctx, batch, msg)
		if err != nil {
			// Count the whole batch as failed and keep going
			lastErr = err
			result.FailureCount += len(batch)
			logger.Warn("Failed to send notification batch", slog.Int("batch_size", len(batch)), slog.Any("error", err))

			continue
		}
		result.SuccessCount += report.Sent
		result.FailureCount += report.Failed
		stale = append(stale, report.StaleTokens...)
	}

	if len(stale) > 0 {
		result.InvalidTokens = len(stale)
		if err := s.deviceRepo.DeactivateDevicesByTokens(ctx, stale); err != nil {
			logger.Error("Failed to deactivate invalid device tokens", slog.Any("error", err))
		}
	}

	logger.Info("Order notification sent",
		slog.Int("recipients", result.Recipients),
		slog.Int("success", result.SuccessCount),
		slog.Int("failure", result.FailureCount),
		slog.Int("invalid_tokens", result.InvalidTokens),
	)

	if result.SuccessCount == 0 && lastErr != nil {
		return result, domainerrors.ErrUpstreamUnavailable.WrapMessage("push delivery failed: " + lastErr.Error())
	}

	return result, nil
}

func orderNotificationMessage(event *entity.OrderStatusChangedEvent) service.PushMessage {
	phrase, ok := statusMessages[event.To]
	if !ok {
		phrase = "changed to " + string(event.To)
	}

	return service.PushMessage{
		Title: fmt.Sprintf("Order #%d update", event.OrderID),
		Body:  fmt.Sprintf("Order #%d %s", event.OrderID, phrase),
		Data: map[string]string{
			"type":      event.Type,
			"order_id":  strconv.FormatInt(event.OrderID, 10),
			"status":    string(event.To),
			"seller_id": event.SellerID.String(),
		},
	}
}

// notifyTargets returns the order parties other than the one who made the change.
func notifyTargets(event *entity.OrderStatusChangedEvent) []uuid.UUID {
	targets := make([]uuid.UUID, 0, 3)
	for _, recipient := range event.Recipients() {
		if recipient != event.ChangedBy {
			targets = append(targets, recipient)
		}
	}

	return targets
}
