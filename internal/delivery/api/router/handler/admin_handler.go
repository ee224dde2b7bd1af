package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AccountUC    usecase.AccountUsecase
	OnboardingUC usecase.OnboardingUsecase
	OrderUC      usecase.OrderUsecase
	Logger       *slog.Logger
}

// AdminHandler serves application review, account management and order oversight.
type AdminHandler struct {
	accountUC    usecase.AccountUsecase
	onboardingUC usecase.OnboardingUsecase
	orderUC      usecase.OrderUsecase
	logger       *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		accountUC:    params.AccountUC,
		onboardingUC: params.OnboardingUC,
		orderUC:      params.OrderUC,
		logger:       params.Logger,
	}
}

// UpdateRoleRequest is the body of PATCH /api/admin/accounts/:id/role
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=customer seller admin delivery"`
}

// UpdateAccountStatusRequest is the body of PATCH /api/admin/accounts/:id/status
type UpdateAccountStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended"`
}

// approvalFilter reads ?status= for application listings; empty lists every status.
func approvalFilter(c echo.Context) (entity.ApprovalStatus, bool) {
	status := entity.ApprovalStatus(c.QueryParam("status"))

	return status, status == "" || status.IsValid()
}

// ListSellers handles GET /api/admin/sellers?status=
func (h *AdminHandler) ListSellers(c echo.Context) error {
	status, ok := approvalFilter(c)
	if !ok {
		return response.BadRequest(c, "VALIDATION_ERROR", "status must be one of: pending approved rejected")
	}

	profiles, err := h.onboardingUC.ListSellerApplications(c.Request().Context(), status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profiles)
}

// ResolveSeller handles PATCH /api/admin/sellers/:id/approval
func (h *AdminHandler) ResolveSeller(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	sellerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid seller ID")
	}

	var req ApprovalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.onboardingUC.ResolveSellerApplication(c.Request().Context(), principal, sellerID, entity.ApprovalStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// ListDeliveryBoys handles GET /api/admin/delivery-boys?status=
func (h *AdminHandler) ListDeliveryBoys(c echo.Context) error {
	status, ok := approvalFilter(c)
	if !ok {
		return response.BadRequest(c, "VALIDATION_ERROR", "status must be one of: pending approved rejected")
	}

	profiles, err := h.onboardingUC.ListDeliveryApplications(c.Request().Context(), status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profiles)
}

// ResolveDelivery handles PATCH /api/admin/delivery-boys/:id/approval
func (h *AdminHandler) ResolveDelivery(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	courierID, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery personnel ID")
	}

	var req ApprovalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.onboardingUC.ResolveDeliveryApplication(c.Request().Context(), principal, courierID, entity.ApprovalStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// ListAccounts handles GET /api/admin/accounts?role=&status=
func (h *AdminHandler) ListAccounts(c echo.Context) error {
	filter := repository.AccountFilter{
		Role:   entity.Role(c.QueryParam("role")),
		Status: entity.AccountStatus(c.QueryParam("status")),
	}
	if filter.Role != "" && !filter.Role.IsValid() {
		return response.BadRequest(c, "VALIDATION_ERROR", "role must be one of: customer seller admin delivery")
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return response.BadRequest(c, "VALIDATION_ERROR", "status must be one of: active suspended")
	}

	accounts, err := h.accountUC.ListAccounts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, accounts)
}

// UpdateRole handles PATCH /api/admin/accounts/:id/role
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	accountID, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	account, err := h.accountUC.UpdateRole(c.Request().Context(), principal, accountID, entity.Role(req.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

// UpdateStatus handles PATCH /api/admin/accounts/:id/status
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	accountID, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	var req UpdateAccountStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	account, err := h.accountUC.UpdateStatus(c.Request().Context(), principal, accountID, entity.AccountStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

// ListOrders handles GET /api/admin/orders?status=
func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListAllOrders(c.Request().Context(), parseStatuses(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}
