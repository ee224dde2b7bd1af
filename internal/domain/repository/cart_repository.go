package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository stores server-side carts. Implementations exist for
// Postgres and Redis.
type CartRepository interface {
	GetCart(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error)

	// AddQuantity increments the line for productID and returns the new quantity.
	AddQuantity(ctx context.Context, ownerID uuid.UUID, productID int64, delta int) (int, error)

	// SetQuantity overwrites the line; a quantity of zero or less removes it.
	SetQuantity(ctx context.Context, ownerID uuid.UUID, productID int64, quantity int) error

	RemoveLine(ctx context.Context, ownerID uuid.UUID, productID int64) error
	Clear(ctx context.Context, ownerID uuid.UUID) error
}
