package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool, h echo.HandlerFunc) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/", h)

	return e
}

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	var seen string
	e := newTestEcho(&bytes.Buffer{}, false, func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestID_ReusesHeaderAndRejectsOversized(t *testing.T) {
	e := newTestEcho(&bytes.Buffer{}, false, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))

	oversized := strings.Repeat("x", maxRequestIDLength+1)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, oversized)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.NotEqual(t, oversized, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLogger_QuietOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotContains(t, buf.String(), "HTTP Request")
}

func TestLogger_AlwaysLogsServerErrors(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false, func(echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-500")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), `"msg":"HTTP Request"`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"request_id":"req-500"`)
}

func TestLogger_DebugLogsEveryRequest(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, true, func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?page=2", nil))

	assert.Contains(t, buf.String(), `"status":204`)
	assert.Contains(t, buf.String(), `"query":"page=2"`)
}

func TestUsableRequestID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "3f2a9c1e-req", want: true},
		{id: "", want: false},
		{id: "has space", want: false},
		{id: "line\nbreak", want: false},
		{id: strings.Repeat("a", maxRequestIDLength), want: true},
		{id: strings.Repeat("a", maxRequestIDLength+1), want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, usableRequestID(tt.id), "id %q", tt.id)
	}
}
