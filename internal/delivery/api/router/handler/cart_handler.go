package handler

import (
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CartHandler serves the caller's server-side cart
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(cartUC usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUC: cartUC}
}

// AddCartItemRequest is the body of POST /api/cart/add
type AddCartItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// SetCartQuantityRequest is the body of PUT /api/cart/:id. Zero or less removes the line.
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse adds the item count to a cart
type CartResponse struct {
	*entity.Cart
	TotalItems int `json:"totalItems"`
}

func cartResponse(cart *entity.Cart) CartResponse {
	return CartResponse{Cart: cart, TotalItems: cart.TotalItems()}
}

// Get handles GET /api/cart
func (h *CartHandler) Get(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), principal.AccountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cartResponse(cart))
}

// Add handles POST /api/cart/add
func (h *CartHandler) Add(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), principal.AccountID, req.ProductID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cartResponse(cart))
}

// SetQuantity handles PUT /api/cart/:id
func (h *CartHandler) SetQuantity(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	productID, ok := parseInt64Param(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req SetCartQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	cart, err := h.cartUC.SetQuantity(c.Request().Context(), principal.AccountID, productID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cartResponse(cart))
}

// Remove handles DELETE /api/cart/:id
func (h *CartHandler) Remove(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	productID, ok := parseInt64Param(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), principal.AccountID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cartResponse(cart))
}

// Clear handles DELETE /api/cart/clear
func (h *CartHandler) Clear(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if principal == nil {
		return err
	}

	if err := h.cartUC.Clear(c.Request().Context(), principal.AccountID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cartResponse(&entity.Cart{OwnerID: principal.AccountID, Lines: []entity.CartLine{}}))
}
