package middleware

import (
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// maxRequestIDLength bounds client supplied ids before they reach logs and events.
const maxRequestIDLength = 128

// RequestIDMiddleware assigns every request an id and a logger tagged with it
type RequestIDMiddleware struct {
	logger *slog.Logger
	assign echo.MiddlewareFunc
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	m := &RequestIDMiddleware{logger: logger}
	m.assign = echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		TargetHeader:     deliverycontext.HeaderXRequestID,
		Generator:        uuid.NewString,
		RequestIDHandler: m.bind,
	})

	return m
}

// Process drops unusable client ids before echo's RequestID middleware
// reuses or generates one.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	assigned := m.assign(next)

	return func(c echo.Context) error {
		header := c.Request().Header
		if !usableRequestID(header.Get(deliverycontext.HeaderXRequestID)) {
			header.Del(deliverycontext.HeaderXRequestID)
		}

		return assigned(c)
	}
}

// bind carries the id and a tagged logger into context.Context for usecases and events.
func (m *RequestIDMiddleware) bind(c echo.Context, requestID string) {
	deliverycontext.SetRequestID(c, requestID)

	ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
	ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
	c.SetRequest(c.Request().WithContext(ctx))
}

// usableRequestID accepts short ids of visible ASCII only.
func usableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}

	return true
}
