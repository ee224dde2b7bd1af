package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCatalogService creates the product catalog service.
func NewCatalogService(productRepo repository.ProductRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (s *catalogService) ListProducts(ctx context.Context, sellerID *uuid.UUID) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, repository.ProductFilter{SellerID: sellerID, ActiveOnly: true})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns an active product. Inactive products are hidden from the public catalog.
func (s *catalogService) GetProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

func (s *catalogService) ListSellerProducts(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, repository.ProductFilter{SellerID: &sellerID})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list seller products")
	}

	return products, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, sellerID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		SellerID:    sellerID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Product created",
		slog.Int64("product_id", product.ID),
		slog.String("seller_id", sellerID.String()),
	)

	return product, nil
}

// UpdateProduct overwrites the editable fields of a product owned by sellerID.
func (s *catalogService) UpdateProduct(ctx context.Context, sellerID uuid.UUID, productID int64, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, domainerrors.ErrNotProductOwner
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return product, nil
}

func (s *catalogService) findProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return product, nil
}

func validateProductInput(input *usecase.ProductInput) error {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("product name is required")
	}
	if input.Price.IsNegative() {
		return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}
	if input.Stock < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("stock must not be negative")
	}

	return nil
}
