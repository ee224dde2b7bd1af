package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/infra/pubsub"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type pushFixtures struct {
	handler        *PushHandler
	notificationUC *mockUC.MockOrderNotificationUsecase
}

func createTestPushHandler(t *testing.T, cfg *config.Config) pushFixtures {
	notificationUC := mockUC.NewMockOrderNotificationUsecase(t)

	return pushFixtures{
		handler: NewPushHandler(PushHandlerParams{
			Config:         cfg,
			Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
			NotificationUC: notificationUC,
		}),
		notificationUC: notificationUC,
	}
}

func testEvent() *entity.OrderStatusChangedEvent {
	return &entity.OrderStatusChangedEvent{
		RequestID:  "req-1",
		Type:       entity.EventTypeOrderStatusChanged,
		OrderID:    42,
		CustomerID: uuid.New(),
		SellerID:   uuid.New(),
		From:       entity.OrderPending,
		To:         entity.OrderAccepted,
	}
}

func pushBody(t *testing.T, event *entity.OrderStatusChangedEvent) string {
	msg, err := pubsub.NewPushMessage(event, "projects/p/subscriptions/s")
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) int {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec.Code
}

func TestHandlePush_Statuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "delivered", err: nil, status: http.StatusOK},
		{name: "upstream failure is redelivered", err: domainerrors.ErrUpstreamUnavailable.WrapMessage("fcm down"), status: http.StatusServiceUnavailable},
		{name: "database failure is redelivered", err: domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), ""), status: http.StatusServiceUnavailable},
		{name: "client error is dropped", err: domainerrors.ErrValidationFailed, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPushHandler(t, &config.Config{})
			event := testEvent()

			fx.notificationUC.EXPECT().
				HandleOrderStatusChanged(mock.Anything, mock.MatchedBy(func(got *entity.OrderStatusChangedEvent) bool {
					return got.OrderID == 42 && got.To == entity.OrderAccepted
				})).
				Return(&usecase.DeliveryResult{Recipients: 1, SuccessCount: 1}, tt.err)

			assert.Equal(t, tt.status, servePush(fx.handler, pushBody(t, event), nil))
		})
	}
}

func TestHandlePush_MalformedPayload(t *testing.T) {
	fx := createTestPushHandler(t, &config.Config{})

	assert.Equal(t, http.StatusBadRequest, servePush(fx.handler, `{"message":{"data":"%%%"}}`, nil))
	assert.Equal(t, http.StatusBadRequest, servePush(fx.handler, `not json`, nil))
}

func TestHandlePush_IgnoresUnknownEventType(t *testing.T) {
	fx := createTestPushHandler(t, &config.Config{})
	event := testEvent()
	event.Type = "order.created"

	assert.Equal(t, http.StatusOK, servePush(fx.handler, pushBody(t, event), nil))
}

func TestHandlePush_VerifiesGooglePushToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://notifier.example.com/push",
	}}
	cfg.Env.Env = constants.EnvProduction

	fx := createTestPushHandler(t, cfg)
	require.True(t, fx.handler.verifyPushAuth)

	fx.handler.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "https://notifier.example.com/push", audience)
		switch token {
		case "google":
			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		case "other-issuer":
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		default:
			return nil, errors.New("bad signature")
		}
	}

	body := pushBody(t, testEvent())

	assert.Equal(t, http.StatusUnauthorized, servePush(fx.handler, body, nil))
	assert.Equal(t, http.StatusUnauthorized, servePush(fx.handler, body, http.Header{"Authorization": {"Bearer forged"}}))
	assert.Equal(t, http.StatusUnauthorized, servePush(fx.handler, body, http.Header{"Authorization": {"Bearer other-issuer"}}))

	fx.notificationUC.EXPECT().HandleOrderStatusChanged(mock.Anything, mock.Anything).
		Return(&usecase.DeliveryResult{}, nil).Once()
	assert.Equal(t, http.StatusOK, servePush(fx.handler, body, http.Header{"Authorization": {"Bearer google"}}))
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.True(t, IsRetryable(errors.New("boom")))
	assert.True(t, IsRetryable(domainerrors.ErrUpstreamUnavailable))
	assert.False(t, IsRetryable(domainerrors.ErrOrderNotFound))
}
