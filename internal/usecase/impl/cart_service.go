package impl

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates the server-side cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartService) GetCart(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.GetCart(ctx, ownerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load cart")
	}

	return cart, nil
}

// AddItem increases the quantity of a line after checking that the product can be bought.
func (s *cartService) AddItem(ctx context.Context, ownerID uuid.UUID, productID int64, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}
	if err := s.ensurePurchasable(ctx, productID); err != nil {
		return nil, err
	}

	if _, err := s.cartRepo.AddQuantity(ctx, ownerID, productID, quantity); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	return s.GetCart(ctx, ownerID)
}

// SetQuantity overwrites a line. Removing a line never needs a product lookup.
func (s *cartService) SetQuantity(ctx context.Context, ownerID uuid.UUID, productID int64, quantity int) (*entity.Cart, error) {
	if quantity > 0 {
		if err := s.ensurePurchasable(ctx, productID); err != nil {
			return nil, err
		}
	}

	if err := s.cartRepo.SetQuantity(ctx, ownerID, productID, quantity); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update cart item")
	}

	return s.GetCart(ctx, ownerID)
}

func (s *cartService) RemoveItem(ctx context.Context, ownerID uuid.UUID, productID int64) (*entity.Cart, error) {
	if err := s.cartRepo.RemoveLine(ctx, ownerID, productID); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to remove cart item")
	}

	return s.GetCart(ctx, ownerID)
}

func (s *cartService) Clear(ctx context.Context, ownerID uuid.UUID) error {
	if err := s.cartRepo.Clear(ctx, ownerID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

func (s *cartService) ensurePurchasable(ctx context.Context, productID int64) error {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}
	if !product.IsPurchasable() {
		return domainerrors.ErrProductUnavailable
	}

	return nil
}
