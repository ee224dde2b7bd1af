// Package handler turns delivered order events into push notifications.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/infra/pubsub"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles order events pushed by Pub/Sub or consumed from Kafka
type PushHandler struct {
	verifyPushAuth bool
	pushAudience   string
	validateToken  tokenValidator
	logger         *slog.Logger
	notificationUC usecase.OrderNotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.OrderNotificationUsecase
}

// NewPushHandler creates a new order event handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests with an OIDC token; local pushes are unsigned
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		pushAudience:   audience,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}
}

// HandlePush handles POST /push. It answers 503 for retryable failures so
// Pub/Sub redelivers, and 200 for everything else to stop redelivery.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode order event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, pushMsg.Message.Attributes, event)
	if err := h.Process(ctx, event, requestID); err != nil && IsRetryable(err) {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// Process notifies the parties of one order event. Errors are logged here;
// callers only decide whether to redeliver.
func (h *PushHandler) Process(ctx context.Context, event *entity.OrderStatusChangedEvent, requestID string) error {
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.Int64("order_id", event.OrderID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if event.Type != entity.EventTypeOrderStatusChanged {
		reqLogger.Warn("[Worker] Ignoring unknown event type", slog.String("type", event.Type))

		return nil
	}

	result, err := h.notificationUC.HandleOrderStatusChanged(ctx, event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process order event",
			slog.Any("error", err),
			slog.Bool("retryable", IsRetryable(err)),
		)

		return err
	}

	reqLogger.Info("[Worker] Order event processed",
		slog.String("to", string(event.To)),
		slog.Int("recipients", result.Recipients),
		slog.Int("sent", result.SuccessCount),
	)

	return nil
}

// IsRetryable reports whether redelivering the event may succeed.
// Server side domain errors and unknown errors are retryable.
func IsRetryable(err error) bool {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	return err != nil
}

// extractRequestID prefers message attributes, then the event, then the
// X-Request-Id of the push request itself.
func (h *PushHandler) extractRequestID(ctx context.Context, attributes map[string]string, event *entity.OrderStatusChangedEvent) string {
	if requestID := attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	audience := h.pushAudience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
