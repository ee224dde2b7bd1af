package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockProductRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)

	return NewCatalogService(productRepo, newDiscardLogger()), productRepo
}

func TestCatalogService_ListProducts_OnlyActive(t *testing.T) {
	service, productRepo := createTestCatalogService(t)
	ctx := context.Background()
	sellerID := uuid.New()

	productRepo.EXPECT().
		ListProducts(ctx, repository.ProductFilter{SellerID: &sellerID, ActiveOnly: true}).
		Return([]*entity.Product{{ID: 1, IsActive: true}}, nil)

	products, err := service.ListProducts(ctx, &sellerID)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCatalogService_GetProduct(t *testing.T) {
	t.Run("inactive is hidden", func(t *testing.T) {
		service, productRepo := createTestCatalogService(t)
		productRepo.EXPECT().FindProductByID(mock.Anything, int64(3)).Return(&entity.Product{ID: 3}, nil)

		_, err := service.GetProduct(context.Background(), 3)
		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	})

	t.Run("missing", func(t *testing.T) {
		service, productRepo := createTestCatalogService(t)
		productRepo.EXPECT().FindProductByID(mock.Anything, int64(4)).Return(nil, repository.ErrProductNotFound)

		_, err := service.GetProduct(context.Background(), 4)
		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	})
}

func TestCatalogService_CreateProduct(t *testing.T) {
	service, productRepo := createTestCatalogService(t)
	ctx := context.Background()
	sellerID := uuid.New()

	productRepo.EXPECT().
		CreateProduct(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.SellerID == sellerID && p.IsActive && p.Price.Equal(decimal.RequireFromString("4.25"))
		})).
		RunAndReturn(func(_ context.Context, p *entity.Product) error {
			p.ID = 11

			return nil
		})

	product, err := service.CreateProduct(ctx, sellerID, &usecase.ProductInput{
		Name:  "Sourdough",
		Price: decimal.RequireFromString("4.25"),
		Stock: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), product.ID)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	service, _ := createTestCatalogService(t)

	inputs := []*usecase.ProductInput{
		{Name: "", Price: decimal.NewFromInt(1)},
		{Name: "x", Price: decimal.NewFromInt(-1)},
		{Name: "x", Price: decimal.NewFromInt(1), Stock: -2},
	}
	for _, input := range inputs {
		_, err := service.CreateProduct(context.Background(), uuid.New(), input)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	inactive := false

	t.Run("owner", func(t *testing.T) {
		service, productRepo := createTestCatalogService(t)
		ctx := context.Background()
		sellerID := uuid.New()

		productRepo.EXPECT().FindProductByID(ctx, int64(5)).
			Return(&entity.Product{ID: 5, SellerID: sellerID, Name: "old", IsActive: true}, nil)
		productRepo.EXPECT().UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

		product, err := service.UpdateProduct(ctx, sellerID, 5, &usecase.ProductInput{
			Name:     "new",
			Price:    decimal.NewFromInt(2),
			IsActive: &inactive,
		})
		require.NoError(t, err)
		assert.Equal(t, "new", product.Name)
		assert.False(t, product.IsActive)
	})

	t.Run("someone else's product", func(t *testing.T) {
		service, productRepo := createTestCatalogService(t)
		ctx := context.Background()

		productRepo.EXPECT().FindProductByID(ctx, int64(5)).
			Return(&entity.Product{ID: 5, SellerID: uuid.New()}, nil)

		_, err := service.UpdateProduct(ctx, uuid.New(), 5, &usecase.ProductInput{Name: "new"})
		assert.True(t, errors.Is(err, domainerrors.ErrNotProductOwner))
	})
}
