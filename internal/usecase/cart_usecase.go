package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase manages the server-side cart of the calling account.
type CartUsecase interface {
	GetCart(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error)

	// AddItem increases the quantity of a purchasable product.
	AddItem(ctx context.Context, ownerID uuid.UUID, productID int64, quantity int) (*entity.Cart, error)

	// SetQuantity overwrites a line; zero or less removes it.
	SetQuantity(ctx context.Context, ownerID uuid.UUID, productID int64, quantity int) (*entity.Cart, error)

	RemoveItem(ctx context.Context, ownerID uuid.UUID, productID int64) (*entity.Cart, error)
	Clear(ctx context.Context, ownerID uuid.UUID) error
}
