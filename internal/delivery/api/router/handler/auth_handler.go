package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/access"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AuthHandler serves session introspection, navigation and admin login.
type AuthHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// MeResponse describes the caller
type MeResponse struct {
	Identity     *entity.Identity  `json:"identity"`
	Principal    *entity.Principal `json:"principal"`
	LandingRoute string            `json:"landingRoute"`
}

// AdminLoginRequest is the body of POST /api/admin-login
type AdminLoginRequest struct {
	FirebaseUID string `json:"firebaseUid"`
	// Password is checked by the usecase; an empty one is just wrong.
	Password string `json:"password"`
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}
	identity, _ := middleware.GetIdentity(c)

	return response.Success(c, http.StatusOK, MeResponse{
		Identity:     identity,
		Principal:    principal,
		LandingRoute: access.LandingRoute(principal),
	})
}

// Navigation handles GET /api/navigation?path=
func (h *AuthHandler) Navigation(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	path := c.QueryParam("path")
	if path == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "path is required")
	}

	return response.Success(c, http.StatusOK, access.Guard(principal, path))
}

// AdminLogin handles POST /api/admin-login. A wrong password is rejected
// before the account is looked up.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid admin login input")
	}

	uid := req.FirebaseUID
	if identity, ok := middleware.GetIdentity(c); ok && uid == "" {
		uid = identity.UID
	}

	account, err := h.accountUC.AdminLogin(c.Request().Context(), uid, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Info("Admin login", slog.String("account_id", account.ID.String()))

	principal := entity.NewPrincipal(account)

	return response.Success(c, http.StatusOK, MeResponse{
		Principal:    principal,
		LandingRoute: access.LandingRoute(principal),
	})
}
