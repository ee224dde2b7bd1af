// Package middleware contains the API-specific echo middleware.
package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier  service.IdentityVerifier
	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AuthMiddleware authenticates identity tokens and authorizes principals.
type AuthMiddleware struct {
	verifier  service.IdentityVerifier
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:  params.Verifier,
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// Authenticate verifies the bearer identity token and stores its claims.
// Any failure answers 401 and the next handler is not called.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		token, found := strings.CutPrefix(authHeader, bearerPrefix)
		token = strings.TrimSpace(token)
		if !found || token == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		identity, err := m.verifier.VerifyIDToken(c.Request().Context(), token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Identity token rejected", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// ResolvePrincipal maps the authenticated identity to an account.
// It must be used AFTER Authenticate.
func (m *AuthMiddleware) ResolvePrincipal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
		}

		principal, err := m.accountUC.ResolvePrincipal(c.Request().Context(), identity)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// RequireRole answers 403 unless the principal has one of roles.
// It must be used AFTER ResolvePrincipal.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}
			if !slices.Contains(roles, principal.Role) {
				return response.Forbidden(c, "ROLE_NOT_ALLOWED", "Permission denied: role '"+principal.Role.String()+"' is not allowed")
			}

			return next(c)
		}
	}
}

// RequireApproved answers 403 unless the principal's seller or delivery
// application has been approved.
func (m *AuthMiddleware) RequireApproved(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := deliverycontext.GetPrincipal(c)
		if !ok || !principal.IsApproved() {
			return response.Forbidden(c, "APPROVAL_REQUIRED", "Your application has not been approved")
		}

		return next(c)
	}
}

// GetIdentity returns the verified identity claims from the echo context.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	return deliverycontext.GetIdentity(c)
}

// GetPrincipal returns the resolved principal from the echo context.
func GetPrincipal(c echo.Context) (*entity.Principal, bool) {
	return deliverycontext.GetPrincipal(c)
}
