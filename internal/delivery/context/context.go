// Package context carries per-request values (request id, scoped logger,
// verified identity and resolved principal) across echo and context.Context.
package context

import (
	"context"
	"log/slog"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// echo.Context keys
const (
	echoKeyRequestID = "request_id"
	echoKeyIdentity  = "identity"
	echoKeyPrincipal = "principal"
)

// GetRequestID returns the request id of c. A request that never passed the
// request id middleware gets one generated here, kept for later calls.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	id := uuid.New().String()
	SetRequestID(c, id)

	return id
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestIDFromContext returns the request id carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns the request-scoped logger carried by ctx, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// SetIdentity stores the verified token claims on the echo context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(echoKeyIdentity, identity)
}

// GetIdentity returns the verified token claims, if any.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(echoKeyIdentity).(*entity.Identity)

	return identity, ok && identity != nil
}

// SetPrincipal stores the resolved principal and tags the request-scoped
// logger with the account.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(echoKeyPrincipal, principal)

	req := c.Request()
	ctx := req.Context()
	if logger := GetLogger(ctx); logger != nil {
		logger = logger.With(
			slog.String("account_id", principal.AccountID.String()),
			slog.String("role", principal.Role.String()),
		)
		c.SetRequest(req.WithContext(WithLogger(ctx, logger)))
	}
}

// GetPrincipal returns the resolved principal, if any.
func GetPrincipal(c echo.Context) (*entity.Principal, bool) {
	principal, ok := c.Get(echoKeyPrincipal).(*entity.Principal)

	return principal, ok && principal != nil
}
