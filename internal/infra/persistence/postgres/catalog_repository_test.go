package postgres

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seller := createTestAccount(t, db, entity.RoleSeller)
	first := createTestProduct(t, db, seller.ID, "12.00")
	second := createTestProduct(t, db, seller.ID, "3.10")

	second.IsActive = false
	second.Price = decimal.RequireFromString("2.90")
	require.NoError(t, repo.UpdateProduct(ctx, second))

	found, err := repo.FindProductByID(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("2.90")))

	active, err := repo.ListProducts(ctx, repository.ProductFilter{SellerID: &seller.ID, ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, first.ID, active[0].ID)

	byIDs, err := repo.FindProductsByIDs(ctx, []int64{first.ID, second.ID, 999})
	require.NoError(t, err)
	assert.Len(t, byIDs, 2)

	_, err = repo.FindProductByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	err = repo.UpdateProduct(ctx, &entity.Product{ID: 999, Name: "ghost"})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_Stock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seller := createTestAccount(t, db, entity.RoleSeller)
	product := createTestProduct(t, db, seller.ID, "1.00")

	require.NoError(t, repo.ReserveStock(ctx, product.ID, 7))
	err := repo.ReserveStock(ctx, product.ID, 4)
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)

	found, err := repo.FindProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, found.Stock)

	require.NoError(t, repo.ReserveStock(ctx, product.ID, 3))
	require.NoError(t, repo.ReleaseStock(ctx, product.ID, 2))

	found, err = repo.FindProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.Stock)

	assert.ErrorIs(t, repo.ReserveStock(ctx, 999, 1), repository.ErrInsufficientStock)
	assert.NoError(t, repo.ReleaseStock(ctx, 999, 1))
}

func TestCartRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()
	owner := uuid.New()

	qty, err := repo.AddQuantity(ctx, owner, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, qty)

	qty, err = repo.AddQuantity(ctx, owner, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, qty)

	require.NoError(t, repo.SetQuantity(ctx, owner, 8, 1))

	cart, err := repo.GetCart(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 6, cart.TotalItems())
	assert.Len(t, cart.Lines, 2)

	require.NoError(t, repo.SetQuantity(ctx, owner, 8, 0))
	cart, err = repo.GetCart(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, []entity.CartLine{{ProductID: 7, Quantity: 5}}, cart.Lines)

	qty, err = repo.AddQuantity(ctx, owner, 7, -5)
	require.NoError(t, err)
	assert.Zero(t, qty)

	require.NoError(t, repo.SetQuantity(ctx, owner, 9, 4))
	require.NoError(t, repo.Clear(ctx, owner))
	cart, err = repo.GetCart(ctx, owner)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
