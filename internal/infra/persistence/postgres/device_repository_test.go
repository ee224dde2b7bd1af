package postgres

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceRepository_UpsertDevice(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDeviceRepository(db)
	ctx := context.Background()
	account := createTestAccount(t, db, entity.RoleCustomer)

	first, err := repo.UpsertDevice(ctx, &entity.UserDevice{
		AccountID: account.ID,
		DeviceID:  "pixel-8",
		FCMToken:  "token-1",
		Platform:  "android",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.True(t, first.IsActive)

	require.NoError(t, repo.DeactivateDevicesByTokens(ctx, []string{"token-1"}))

	second, err := repo.UpsertDevice(ctx, &entity.UserDevice{
		AccountID: account.ID,
		DeviceID:  "pixel-8",
		FCMToken:  "token-2",
		Platform:  "android",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "token-2", second.FCMToken)
	assert.True(t, second.IsActive)

	active, err := repo.FindActiveDevicesByAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestDeviceRepository_DeleteThenRegisterAgain(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDeviceRepository(db)
	ctx := context.Background()
	account := createTestAccount(t, db, entity.RoleDelivery)

	device, err := repo.UpsertDevice(ctx, &entity.UserDevice{
		AccountID: account.ID,
		DeviceID:  "iphone",
		FCMToken:  "token-1",
		Platform:  "ios",
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteDevice(ctx, device.ID))
	assert.ErrorIs(t, repo.DeleteDevice(ctx, device.ID), repository.ErrDeviceNotFound)

	_, err = repo.FindDeviceByID(ctx, device.ID)
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)

	again, err := repo.UpsertDevice(ctx, &entity.UserDevice{
		AccountID: account.ID,
		DeviceID:  "iphone",
		FCMToken:  "token-3",
		Platform:  "ios",
	})
	require.NoError(t, err)
	assert.NotEqual(t, device.ID, again.ID)
}

func TestDeviceRepository_UpdateFCMToken(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDeviceRepository(db)
	ctx := context.Background()
	account := createTestAccount(t, db, entity.RoleSeller)

	device, err := repo.UpsertDevice(ctx, &entity.UserDevice{
		AccountID: account.ID,
		DeviceID:  "tablet",
		FCMToken:  "token-1",
		Platform:  "web",
	})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateFCMToken(ctx, device.ID, "token-9"))
	found, err := repo.FindDeviceByID(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, "token-9", found.FCMToken)

	assert.ErrorIs(t, repo.UpdateFCMToken(ctx, uuid.New(), "x"), repository.ErrDeviceNotFound)
}
