package ws

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"marketplace/config"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HandlerParams holds dependencies for Handler, injected by Fx.
type HandlerParams struct {
	fx.In

	Hub       *Hub
	Verifier  service.IdentityVerifier
	AccountUC usecase.AccountUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// Handler upgrades authenticated requests to order tracking connections.
type Handler struct {
	hub       *Hub
	verifier  service.IdentityVerifier
	accountUC usecase.AccountUsecase
	upgrader  websocket.Upgrader
	logger    *slog.Logger
}

// NewHandler creates the WebSocket endpoint handler.
func NewHandler(params HandlerParams) *Handler {
	origins := params.Config.HTTP.AllowedOrigins

	return &Handler{
		hub:       params.Hub,
		verifier:  params.Verifier,
		accountUC: params.AccountUC,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || len(origins) == 0 || slices.Contains(origins, "*") {
					return true
				}

				return slices.Contains(origins, origin)
			},
		},
		logger: params.Logger,
	}
}

// ServeOrders handles GET /ws/orders. Browsers cannot set headers on a
// WebSocket handshake, so the identity token is read from ?token= first.
func (h *Handler) ServeOrders(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		token = strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
	}
	if strings.TrimSpace(token) == "" {
		return response.Unauthorized(c, "UNAUTHORIZED", "missing identity token")
	}

	ctx := c.Request().Context()
	identity, err := h.verifier.VerifyIDToken(ctx, token)
	if err != nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "invalid or expired identity token")
	}

	principal, err := h.accountUC.ResolvePrincipal(ctx, identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.logger.Warn("WebSocket upgrade failed", slog.Any("error", err))

		return nil
	}

	client := NewClient(h.hub, principal.AccountID, conn)
	if !h.hub.Register(client) {
		_ = conn.Close()

		return nil
	}

	go client.writePump()
	go client.readPump()

	return nil
}
