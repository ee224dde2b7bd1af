package ws

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	mockSvc "marketplace/internal/mocks/service"
	mockUC "marketplace/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) *Hub {
	hub := newHub(&config.WebSocketConfig{
		PingInterval:   time.Second,
		WriteTimeout:   time.Second,
		MaxMessageSize: 512,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	return hub
}

func receive(t *testing.T, client *Client) (Message, bool) {
	t.Helper()

	select {
	case message, ok := <-client.send:
		return message, ok
	case <-time.After(200 * time.Millisecond):
		return Message{}, false
	}
}

func TestHub_DeliversOnlyToOrderParties(t *testing.T) {
	hub := newTestHub(t)

	customer := NewClient(hub, uuid.New(), nil)
	seller := NewClient(hub, uuid.New(), nil)
	stranger := NewClient(hub, uuid.New(), nil)
	for _, client := range []*Client{customer, seller, stranger} {
		require.True(t, hub.Register(client))
	}
	require.Eventually(t, func() bool { return hub.ClientCount() == 3 }, time.Second, 10*time.Millisecond)

	hub.BroadcastOrderEvent(&entity.OrderStatusChangedEvent{
		Type:       entity.EventTypeOrderStatusChanged,
		OrderID:    42,
		CustomerID: customer.accountID,
		SellerID:   seller.accountID,
		To:         entity.OrderAccepted,
	})

	for _, client := range []*Client{customer, seller} {
		message, ok := receive(t, client)
		require.True(t, ok)
		assert.Equal(t, entity.EventTypeOrderStatusChanged, message.Type)
	}

	_, ok := receive(t, stranger)
	assert.False(t, ok)
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := newTestHub(t)
	client := NewClient(hub, uuid.New(), nil)

	require.True(t, hub.Register(client))
	hub.Unregister(client)

	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
	_, ok := <-client.send
	assert.False(t, ok)
}

func TestHub_RegisterAfterStop(t *testing.T) {
	hub := newHub(&config.WebSocketConfig{PingInterval: time.Second}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	cancel()
	<-hub.done

	assert.False(t, hub.Register(NewClient(hub, uuid.New(), nil)))
}

func newTestServer(t *testing.T, hub *Hub) (*httptest.Server, *mockSvc.MockIdentityVerifier, *mockUC.MockAccountUsecase) {
	verifier := mockSvc.NewMockIdentityVerifier(t)
	accountUC := mockUC.NewMockAccountUsecase(t)

	cfg := &config.Config{}
	handler := NewHandler(HandlerParams{
		Hub:       hub,
		Verifier:  verifier,
		AccountUC: accountUC,
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	e := echo.New()
	e.GET("/ws/orders", handler.ServeOrders)
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return server, verifier, accountUC
}

func TestHandler_StreamsOrderEvents(t *testing.T) {
	hub := newTestHub(t)
	server, verifier, accountUC := newTestServer(t, hub)

	accountID := uuid.New()
	identity := &entity.Identity{UID: "uid-1"}
	verifier.EXPECT().VerifyIDToken(mock.Anything, "good-token").Return(identity, nil)
	accountUC.EXPECT().ResolvePrincipal(mock.Anything, identity).
		Return(&entity.Principal{AccountID: accountID, Role: entity.RoleCustomer}, nil)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/orders?token=good-token"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.BroadcastOrderEvent(&entity.OrderStatusChangedEvent{
		Type:       entity.EventTypeOrderStatusChanged,
		OrderID:    7,
		CustomerID: accountID,
		SellerID:   uuid.New(),
		To:         entity.OrderPreparing,
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var message struct {
		Type string                         `json:"type"`
		Data entity.OrderStatusChangedEvent `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&message))
	assert.Equal(t, entity.EventTypeOrderStatusChanged, message.Type)
	assert.Equal(t, int64(7), message.Data.OrderID)
	assert.Equal(t, entity.OrderPreparing, message.Data.To)
}

func TestHandler_RejectsMissingOrInvalidToken(t *testing.T) {
	hub := newTestHub(t)
	server, verifier, _ := newTestServer(t, hub)

	resp, err := http.Get(server.URL + "/ws/orders")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	verifier.EXPECT().VerifyIDToken(mock.Anything, "expired").Return(nil, errors.New("token expired"))

	resp, err = http.Get(server.URL + "/ws/orders?token=expired")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, hub.ClientCount())
}
