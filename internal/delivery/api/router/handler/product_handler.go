package handler

import (
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProductHandler serves the public catalog
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(catalogUC usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{catalogUC: catalogUC}
}

// List handles GET /api/products?sellerId=
func (h *ProductHandler) List(c echo.Context) error {
	var sellerID *uuid.UUID
	if raw := c.QueryParam("sellerId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid seller ID")
		}
		sellerID = &id
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// Get handles GET /api/products/:id
func (h *ProductHandler) Get(c echo.Context) error {
	productID, ok := parseInt64Param(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}
