package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/delivery/ws"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockSvc "marketplace/internal/mocks/service"
	mockUC "marketplace/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type apiFixtures struct {
	echo         *echo.Echo
	verifier     *mockSvc.MockIdentityVerifier
	accountUC    *mockUC.MockAccountUsecase
	onboardingUC *mockUC.MockOnboardingUsecase
	catalogUC    *mockUC.MockCatalogUsecase
	cartUC       *mockUC.MockCartUsecase
	orderUC      *mockUC.MockOrderUsecase
	deviceUC     *mockUC.MockDeviceUsecase
}

func createTestAPI(t *testing.T) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{WebSocket: &config.WebSocketConfig{}}

	fx := apiFixtures{
		verifier:     mockSvc.NewMockIdentityVerifier(t),
		accountUC:    mockUC.NewMockAccountUsecase(t),
		onboardingUC: mockUC.NewMockOnboardingUsecase(t),
		catalogUC:    mockUC.NewMockCatalogUsecase(t),
		cartUC:       mockUC.NewMockCartUsecase(t),
		orderUC:      mockUC.NewMockOrderUsecase(t),
		deviceUC:     mockUC.NewMockDeviceUsecase(t),
	}

	hub := ws.NewHub(ws.HubParams{Lifecycle: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})

	fx.echo = NewEcho(cfg, logger, router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{AccountUC: fx.accountUC, Logger: logger}),
		SellerHandler: handler.NewSellerHandler(handler.SellerHandlerParams{
			OnboardingUC: fx.onboardingUC, CatalogUC: fx.catalogUC, OrderUC: fx.orderUC, Logger: logger,
		}),
		DeliveryHandler: handler.NewDeliveryHandler(handler.DeliveryHandlerParams{
			OnboardingUC: fx.onboardingUC, OrderUC: fx.orderUC, Logger: logger,
		}),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{
			AccountUC: fx.accountUC, OnboardingUC: fx.onboardingUC, OrderUC: fx.orderUC, Logger: logger,
		}),
		ProductHandler: handler.NewProductHandler(fx.catalogUC),
		CartHandler:    handler.NewCartHandler(fx.cartUC),
		OrderHandler:   handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: fx.orderUC, Logger: logger}),
		DeviceHandler:  handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: fx.deviceUC, Logger: logger}),
		WSHandler: ws.NewHandler(ws.HandlerParams{
			Hub: hub, Verifier: fx.verifier, AccountUC: fx.accountUC, Config: cfg, Logger: logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			Verifier: fx.verifier, AccountUC: fx.accountUC, Logger: logger,
		}),
	})

	return fx
}

// signIn makes token resolve to principal.
func (fx apiFixtures) signIn(token string, principal *entity.Principal) {
	identity := &entity.Identity{UID: principal.UID, Email: principal.Email}
	fx.verifier.EXPECT().VerifyIDToken(mock.Anything, token).Return(identity, nil).Maybe()
	fx.accountUC.EXPECT().ResolvePrincipal(mock.Anything, identity).Return(principal, nil).Maybe()
}

func (fx apiFixtures) do(method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func sellerPrincipal(approval entity.ApprovalStatus) *entity.Principal {
	return &entity.Principal{AccountID: uuid.New(), UID: "seller-uid", Role: entity.RoleSeller, Approval: approval}
}

func TestAuth_RejectsBadTokensWithoutCallingHandler(t *testing.T) {
	fx := createTestAPI(t)

	fx.verifier.EXPECT().VerifyIDToken(mock.Anything, "expired").Return(nil, errors.New("token has expired"))
	fx.verifier.EXPECT().VerifyIDToken(mock.Anything, "forged").Return(nil, errors.New("signature invalid"))

	for name, tc := range map[string]struct {
		header string
		code   string
	}{
		"missing header": {header: "", code: "UNAUTHORIZED"},
		"not bearer":     {header: "Basic abc", code: "UNAUTHORIZED"},
		"expired":        {header: "Bearer expired", code: "INVALID_TOKEN"},
		"bad signature":  {header: "Bearer forged", code: "INVALID_TOKEN"},
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()
			fx.echo.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tc.code, decode(t, rec).Error.Code)
		})
	}
	// orderUC has no expectations, so any call would fail the test
	fx.orderUC.AssertNotCalled(t, "ListCustomerOrders", mock.Anything, mock.Anything)
}

func TestAuth_SuspendedAccount(t *testing.T) {
	fx := createTestAPI(t)

	identity := &entity.Identity{UID: "u1"}
	fx.verifier.EXPECT().VerifyIDToken(mock.Anything, "tok").Return(identity, nil)
	fx.accountUC.EXPECT().ResolvePrincipal(mock.Anything, identity).Return(nil, domainerrors.ErrAccountSuspended)

	rec := fx.do(http.MethodGet, "/api/orders", "tok", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ACCOUNT_SUSPENDED", decode(t, rec).Error.Code)
}

func TestSellerOrderStatus(t *testing.T) {
	t.Run("accepts own pending order", func(t *testing.T) {
		fx := createTestAPI(t)
		seller := sellerPrincipal(entity.ApprovalApproved)
		fx.signIn("tok", seller)

		fx.orderUC.EXPECT().TransitionStatus(mock.Anything, seller, int64(42), entity.OrderAccepted).
			Return(&entity.Order{ID: 42, SellerID: seller.AccountID, Status: entity.OrderAccepted}, nil)

		rec := fx.do(http.MethodPatch, "/api/sellers/orders/42/status", "tok", `{"newStatus":"accepted"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var order entity.Order
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &order))
		assert.Equal(t, entity.OrderAccepted, order.Status)
	})

	t.Run("illegal transition is a 400", func(t *testing.T) {
		fx := createTestAPI(t)
		seller := sellerPrincipal(entity.ApprovalApproved)
		fx.signIn("tok", seller)

		fx.orderUC.EXPECT().TransitionStatus(mock.Anything, seller, int64(42), entity.OrderDelivered).
			Return(nil, domainerrors.ErrInvalidStatusTransition.WrapMessage("pending -> delivered"))

		rec := fx.do(http.MethodPatch, "/api/sellers/orders/42/status", "tok", `{"newStatus":"delivered"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_STATUS_TRANSITION", decode(t, rec).Error.Code)
	})

	t.Run("missing newStatus", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.signIn("tok", sellerPrincipal(entity.ApprovalApproved))

		rec := fx.do(http.MethodPatch, "/api/sellers/orders/42/status", "tok", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decode(t, rec).Error.Code)
	})

	t.Run("pending seller is not approved", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.signIn("tok", sellerPrincipal(entity.ApprovalPending))

		rec := fx.do(http.MethodPatch, "/api/sellers/orders/42/status", "tok", `{"newStatus":"accepted"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "APPROVAL_REQUIRED", decode(t, rec).Error.Code)
	})

	t.Run("customer cannot use seller routes", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.signIn("tok", &entity.Principal{AccountID: uuid.New(), UID: "c", Role: entity.RoleCustomer})

		rec := fx.do(http.MethodPatch, "/api/sellers/orders/42/status", "tok", `{"newStatus":"accepted"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "ROLE_NOT_ALLOWED", decode(t, rec).Error.Code)
	})
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectedUID string
		password    string
	}{
		{name: "own account", body: `{"firebaseUid":"","password":"guess"}`, expectedUID: "caller", password: "guess"},
		{name: "known uid", body: `{"firebaseUid":"known-uid","password":"guess"}`, expectedUID: "known-uid", password: "guess"},
		{name: "other uid", body: `{"firebaseUid":"someone-else","password":"guess"}`, expectedUID: "someone-else", password: "guess"},
		{name: "empty password", body: `{"firebaseUid":"x","password":""}`, expectedUID: "x", password: ""},
		{name: "missing password", body: `{"firebaseUid":"x"}`, expectedUID: "x", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t)
			fx.verifier.EXPECT().VerifyIDToken(mock.Anything, "tok").Return(&entity.Identity{UID: "caller"}, nil)
			fx.accountUC.EXPECT().AdminLogin(mock.Anything, tt.expectedUID, tt.password).
				Return(nil, domainerrors.ErrInvalidAdminCredentials)

			rec := fx.do(http.MethodPost, "/api/admin-login", "tok", tt.body)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Error.Code)
		})
	}
}

func TestAdminLogin_Success(t *testing.T) {
	fx := createTestAPI(t)
	fx.verifier.EXPECT().VerifyIDToken(mock.Anything, "tok").Return(&entity.Identity{UID: "caller"}, nil)
	fx.accountUC.EXPECT().AdminLogin(mock.Anything, "caller", "secret").
		Return(&entity.Account{ID: uuid.New(), FirebaseUID: "caller", Role: entity.RoleAdmin}, nil)

	rec := fx.do(http.MethodPost, "/api/admin-login", "tok", `{"password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var me handler.MeResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &me))
	assert.Equal(t, "/admin-dashboard", me.LandingRoute)
}

func TestMe_LandingRoute(t *testing.T) {
	fx := createTestAPI(t)
	fx.signIn("tok", sellerPrincipal(entity.ApprovalPending))

	rec := fx.do(http.MethodGet, "/api/auth/me", "tok", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var me handler.MeResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &me))
	assert.Equal(t, "/register-seller", me.LandingRoute)
	assert.Equal(t, "seller-uid", me.Identity.UID)
}

func TestNavigation_PendingSellerRedirected(t *testing.T) {
	fx := createTestAPI(t)
	fx.signIn("tok", sellerPrincipal(entity.ApprovalPending))

	rec := fx.do(http.MethodGet, "/api/navigation?path=/seller-dashboard", "tok", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"allowed":false,"redirect":"/register-seller"}`, string(decode(t, rec).Data))
}

func TestCart_AddValidatesBeforeUsecase(t *testing.T) {
	fx := createTestAPI(t)
	customer := &entity.Principal{AccountID: uuid.New(), UID: "c", Role: entity.RoleCustomer}
	fx.signIn("tok", customer)

	rec := fx.do(http.MethodPost, "/api/cart/add", "tok", `{"productId":7,"quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	fx.cartUC.EXPECT().AddItem(mock.Anything, customer.AccountID, int64(7), 2).
		Return(&entity.Cart{OwnerID: customer.AccountID, Lines: []entity.CartLine{{ProductID: 7, Quantity: 2}}}, nil)

	rec = fx.do(http.MethodPost, "/api/cart/add", "tok", `{"productId":7,"quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalItems":2`)
}

func TestCart_ClearIsNotAProductID(t *testing.T) {
	fx := createTestAPI(t)
	customer := &entity.Principal{AccountID: uuid.New(), UID: "c", Role: entity.RoleCustomer}
	fx.signIn("tok", customer)

	fx.cartUC.EXPECT().Clear(mock.Anything, customer.AccountID).Return(nil)

	rec := fx.do(http.MethodDelete, "/api/cart/clear", "tok", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalItems":0`)
}

func TestProducts_ArePublic(t *testing.T) {
	fx := createTestAPI(t)
	fx.catalogUC.EXPECT().GetProduct(mock.Anything, int64(7)).Return(nil, domainerrors.ErrProductNotFound)

	rec := fx.do(http.MethodGet, "/api/products/7", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = fx.do(http.MethodGet, "/api/products/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get("X-Request-Id"))
}

func TestHealth(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
