// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/delivery/ws"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	SellerHandler   *handler.SellerHandler
	DeliveryHandler *handler.DeliveryHandler
	AdminHandler    *handler.AdminHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	DeviceHandler   *handler.DeviceHandler
	WSHandler       *ws.Handler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	sellerHandler   *handler.SellerHandler
	deliveryHandler *handler.DeliveryHandler
	adminHandler    *handler.AdminHandler
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	deviceHandler   *handler.DeviceHandler
	wsHandler       *ws.Handler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		sellerHandler:   params.SellerHandler,
		deliveryHandler: params.DeliveryHandler,
		adminHandler:    params.AdminHandler,
		productHandler:  params.ProductHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		deviceHandler:   params.DeviceHandler,
		wsHandler:       params.WSHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware

	e.GET("/health", handler.HealthCheck)

	// Order tracking authenticates inside the handshake
	e.GET("/ws/orders", r.wsHandler.ServeOrders)

	// Public catalog
	e.GET("/api/products", r.productHandler.List)
	e.GET("/api/products/:id", r.productHandler.Get)

	// The admin password is checked before any account state, so suspended
	// or unknown principals still get a 401 for a wrong password
	e.POST("/api/admin-login", r.authHandler.AdminLogin, auth.Authenticate)

	api := e.Group("/api", auth.Authenticate, auth.ResolvePrincipal)

	api.GET("/auth/me", r.authHandler.Me)
	api.GET("/navigation", r.authHandler.Navigation)

	requireSeller := auth.RequireRole(entity.RoleSeller)
	sellers := api.Group("/sellers")
	{
		sellers.POST("/apply", r.sellerHandler.Apply)
		sellers.GET("/me", r.sellerHandler.Me, requireSeller)
		sellers.GET("/me/qr", r.sellerHandler.StorefrontQR, requireSeller, auth.RequireApproved)
		sellers.GET("/products", r.sellerHandler.ListProducts, requireSeller, auth.RequireApproved)
		sellers.POST("/products", r.sellerHandler.CreateProduct, requireSeller, auth.RequireApproved)
		sellers.PUT("/products/:id", r.sellerHandler.UpdateProduct, requireSeller, auth.RequireApproved)
		sellers.GET("/orders", r.sellerHandler.ListOrders, requireSeller, auth.RequireApproved)
		sellers.PATCH("/orders/:id/status", r.orderHandler.UpdateStatus, requireSeller, auth.RequireApproved)
	}

	api.POST("/delivery-boys/register", r.deliveryHandler.Register)

	requireCourier := auth.RequireRole(entity.RoleDelivery)
	delivery := api.Group("/delivery")
	{
		// Login reports the approval state itself
		delivery.POST("/login", r.deliveryHandler.Login, requireCourier)
		delivery.GET("/orders", r.deliveryHandler.ListAssigned, requireCourier, auth.RequireApproved)
		delivery.GET("/orders/available", r.deliveryHandler.ListAvailable, requireCourier, auth.RequireApproved)
		delivery.PATCH("/orders/:id/status", r.orderHandler.UpdateStatus, requireCourier, auth.RequireApproved)
	}

	admin := api.Group("/admin", auth.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/sellers", r.adminHandler.ListSellers)
		admin.PATCH("/sellers/:id/approval", r.adminHandler.ResolveSeller)
		admin.GET("/delivery-boys", r.adminHandler.ListDeliveryBoys)
		admin.PATCH("/delivery-boys/:id/approval", r.adminHandler.ResolveDelivery)
		admin.GET("/accounts", r.adminHandler.ListAccounts)
		admin.PATCH("/accounts/:id/role", r.adminHandler.UpdateRole)
		admin.PATCH("/accounts/:id/status", r.adminHandler.UpdateStatus)
		admin.GET("/orders", r.adminHandler.ListOrders)
		admin.PATCH("/orders/:id/status", r.orderHandler.UpdateStatus)
	}

	cart := api.Group("/cart")
	{
		cart.GET("", r.cartHandler.Get)
		cart.POST("/add", r.cartHandler.Add)
		cart.DELETE("/clear", r.cartHandler.Clear)
		cart.PUT("/:id", r.cartHandler.SetQuantity)
		cart.DELETE("/:id", r.cartHandler.Remove)
	}

	orders := api.Group("/orders")
	{
		orders.POST("", r.orderHandler.Checkout)
		orders.GET("", r.orderHandler.List)
		orders.GET("/:id", r.orderHandler.Get)
		orders.GET("/:id/history", r.orderHandler.History)
		orders.POST("/:id/cancel", r.orderHandler.Cancel)
	}

	devices := api.Group("/devices")
	{
		devices.POST("", r.deviceHandler.RegisterDevice)
		devices.GET("", r.deviceHandler.GetDevices)
		devices.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devices.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
