package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// SellerHandlerParams holds dependencies for SellerHandler, injected by Fx.
type SellerHandlerParams struct {
	fx.In

	OnboardingUC usecase.OnboardingUsecase
	CatalogUC    usecase.CatalogUsecase
	OrderUC      usecase.OrderUsecase
	Logger       *slog.Logger
}

// SellerHandler serves seller onboarding, products and incoming orders.
type SellerHandler struct {
	onboardingUC usecase.OnboardingUsecase
	catalogUC    usecase.CatalogUsecase
	orderUC      usecase.OrderUsecase
	logger       *slog.Logger
}

// NewSellerHandler is the constructor for SellerHandler
func NewSellerHandler(params SellerHandlerParams) *SellerHandler {
	return &SellerHandler{
		onboardingUC: params.OnboardingUC,
		catalogUC:    params.CatalogUC,
		orderUC:      params.OrderUC,
		logger:       params.Logger,
	}
}

// ApplySellerRequest is the body of POST /api/sellers/apply
type ApplySellerRequest struct {
	BusinessName string   `json:"businessName" validate:"required,max=255"`
	Address      string   `json:"address" validate:"required"`
	Phone        string   `json:"phone" validate:"required,max=32"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// ProductRequest is the body of the seller product endpoints
type ProductRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	IsActive    *bool           `json:"isActive"`
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		IsActive:    r.IsActive,
	}
}

// Apply handles POST /api/sellers/apply
func (h *SellerHandler) Apply(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	var req ApplySellerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid seller application")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.onboardingUC.ApplySeller(c.Request().Context(), principal, &usecase.SellerApplication{
		BusinessName: req.BusinessName,
		Address:      req.Address,
		Phone:        req.Phone,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// Me handles GET /api/sellers/me
func (h *SellerHandler) Me(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	profile, err := h.onboardingUC.GetSellerProfile(c.Request().Context(), principal.AccountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// StorefrontQR handles GET /api/sellers/me/qr
func (h *SellerHandler) StorefrontQR(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	png, err := h.onboardingUC.StorefrontQR(c.Request().Context(), principal.AccountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}

// ListProducts handles GET /api/sellers/products, inactive products included
func (h *SellerHandler) ListProducts(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	products, err := h.catalogUC.ListSellerProducts(c.Request().Context(), principal.AccountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// CreateProduct handles POST /api/sellers/products
func (h *SellerHandler) CreateProduct(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), principal.AccountID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/sellers/products/:id
func (h *SellerHandler) UpdateProduct(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	productID, ok := parseInt64Param(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), principal.AccountID, productID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// ListOrders handles GET /api/sellers/orders?status=
func (h *SellerHandler) ListOrders(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	orders, err := h.orderUC.ListSellerOrders(c.Request().Context(), principal.AccountID, parseStatuses(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}
