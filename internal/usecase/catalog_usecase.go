package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput holds the editable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	IsActive    *bool // Nil keeps the current value; new products default to active.
}

// CatalogUsecase defines product browsing and seller product management.
type CatalogUsecase interface {
	// ListProducts lists active products, optionally of one seller.
	ListProducts(ctx context.Context, sellerID *uuid.UUID) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)

	// ListSellerProducts lists all products of a seller including inactive ones.
	ListSellerProducts(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, sellerID uuid.UUID, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, sellerID uuid.UUID, productID int64, input *ProductInput) (*entity.Product, error)
}
