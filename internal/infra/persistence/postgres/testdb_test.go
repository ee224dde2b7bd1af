package postgres

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory database with every model migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second connection would open a different in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func createTestAccount(t *testing.T, db *gorm.DB, role entity.Role) *entity.Account {
	t.Helper()

	account := &entity.Account{
		FirebaseUID: "uid-" + uuid.NewString(),
		Email:       "someone@example.com",
		Name:        "Someone",
		Role:        role,
	}
	require.NoError(t, NewAccountRepository(db).CreateAccount(context.Background(), account))

	return account
}

func createTestProduct(t *testing.T, db *gorm.DB, sellerID uuid.UUID, price string) *entity.Product {
	t.Helper()

	product := &entity.Product{
		SellerID: sellerID,
		Name:     "Mango",
		Price:    decimal.RequireFromString(price),
		Stock:    10,
		IsActive: true,
	}
	require.NoError(t, NewProductRepository(db).CreateProduct(context.Background(), product))

	return product
}
