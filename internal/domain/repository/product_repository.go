package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductFilter narrows ListProducts.
type ProductFilter struct {
	SellerID   *uuid.UUID
	ActiveOnly bool
}

// ProductRepository defines catalog database operations.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) error
	UpdateProduct(ctx context.Context, product *entity.Product) error
	FindProductByID(ctx context.Context, id int64) (*entity.Product, error)
	// FindProductsByIDs returns the products that exist; missing IDs are skipped.
	FindProductsByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	// ReserveStock takes quantity units; it returns ErrInsufficientStock when fewer remain.
	ReserveStock(ctx context.Context, id int64, quantity int) error
	// ReleaseStock puts quantity units back.
	ReleaseStock(ctx context.Context, id int64, quantity int) error
}
