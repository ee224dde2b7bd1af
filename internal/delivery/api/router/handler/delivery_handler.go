package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	OnboardingUC usecase.OnboardingUsecase
	OrderUC      usecase.OrderUsecase
	Logger       *slog.Logger
}

// DeliveryHandler serves courier registration, login and order pickup.
type DeliveryHandler struct {
	onboardingUC usecase.OnboardingUsecase
	orderUC      usecase.OrderUsecase
	logger       *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{
		onboardingUC: params.OnboardingUC,
		orderUC:      params.OrderUC,
		logger:       params.Logger,
	}
}

// RegisterDeliveryRequest is the body of POST /api/delivery-boys/register
type RegisterDeliveryRequest struct {
	FullName    string `json:"fullName" validate:"required,max=255"`
	Phone       string `json:"phone" validate:"required,max=32"`
	Address     string `json:"address" validate:"required"`
	VehicleType string `json:"vehicleType" validate:"required,max=64"`
}

// Register handles POST /api/delivery-boys/register
func (h *DeliveryHandler) Register(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	var req RegisterDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery registration")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.onboardingUC.RegisterDelivery(c.Request().Context(), principal, &usecase.DeliveryApplication{
		FullName:    req.FullName,
		Phone:       req.Phone,
		Address:     req.Address,
		VehicleType: req.VehicleType,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// Login handles POST /api/delivery/login
func (h *DeliveryHandler) Login(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	profile, err := h.onboardingUC.DeliveryLogin(c.Request().Context(), principal.AccountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// ListAssigned handles GET /api/delivery/orders
func (h *DeliveryHandler) ListAssigned(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	orders, err := h.orderUC.ListCourierOrders(c.Request().Context(), principal.AccountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// ListAvailable handles GET /api/delivery/orders/available?lat=&lng=
func (h *DeliveryHandler) ListAvailable(c echo.Context) error {
	var origin *usecase.Location
	latParam, lngParam := c.QueryParam("lat"), c.QueryParam("lng")
	if latParam != "" || lngParam != "" {
		lat, latErr := strconv.ParseFloat(latParam, 64)
		lng, lngErr := strconv.ParseFloat(lngParam, 64)
		if latErr != nil || lngErr != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			return response.BadRequest(c, "VALIDATION_ERROR", "lat and lng must be valid coordinates")
		}
		origin = &usecase.Location{Lat: lat, Lng: lng}
	}

	orders, err := h.orderUC.ListAvailableOrders(c.Request().Context(), origin)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}
