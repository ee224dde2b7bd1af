package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout, order queries and status changes.
// UpdateStatus is mounted under the seller, delivery and admin groups.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CheckoutRequest is the body of POST /api/orders
type CheckoutRequest struct {
	DeliveryAddress string `json:"deliveryAddress" validate:"required"`
}

// Checkout handles POST /api/orders
func (h *OrderHandler) Checkout(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	orders, err := h.orderUC.Checkout(c.Request().Context(), principal.AccountID, &usecase.CheckoutInput{
		DeliveryAddress: req.DeliveryAddress,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, orders)
}

// List handles GET /api/orders, the caller's order history
func (h *OrderHandler) List(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	orders, err := h.orderUC.ListCustomerOrders(c.Request().Context(), principal.AccountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// Get handles GET /api/orders/:id
func (h *OrderHandler) Get(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	orderID, ok := parseInt64Param(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), principal, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// History handles GET /api/orders/:id/history
func (h *OrderHandler) History(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	orderID, ok := parseInt64Param(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	history, err := h.orderUC.GetOrderHistory(c.Request().Context(), principal, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

// UpdateStatus handles PATCH .../orders/:id/status with body {newStatus}
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	orderID, ok := parseInt64Param(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return h.transition(c, principal, orderID, entity.OrderStatus(req.NewStatus))
}

// Cancel handles POST /api/orders/:id/cancel
func (h *OrderHandler) Cancel(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	orderID, ok := parseInt64Param(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	return h.transition(c, principal, orderID, entity.OrderCancelled)
}

func (h *OrderHandler) transition(c echo.Context, principal *entity.Principal, orderID int64, next entity.OrderStatus) error {
	order, err := h.orderUC.TransitionStatus(c.Request().Context(), principal, orderID, next)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
