package postgres

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Execute(t *testing.T) {
	db := setupTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			return factory.NewAccountRepository().CreateAccount(ctx, &entity.Account{FirebaseUID: "committed", Role: entity.RoleCustomer})
		})
		require.NoError(t, err)

		_, err = NewAccountRepository(db).FindAccountByFirebaseUID(ctx, "committed")
		assert.NoError(t, err)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			if err := factory.NewAccountRepository().CreateAccount(ctx, &entity.Account{FirebaseUID: "rolled-back", Role: entity.RoleCustomer}); err != nil {
				return err
			}

			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = NewAccountRepository(db).FindAccountByFirebaseUID(ctx, "rolled-back")
		assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	})

	t.Run("rolls back on panic", func(t *testing.T) {
		assert.Panics(t, func() {
			_ = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
				if err := factory.NewAccountRepository().CreateAccount(ctx, &entity.Account{FirebaseUID: "panicked", Role: entity.RoleCustomer}); err != nil {
					return err
				}
				panic("boom")
			})
		})

		_, err := NewAccountRepository(db).FindAccountByFirebaseUID(ctx, "panicked")
		assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	})
}
