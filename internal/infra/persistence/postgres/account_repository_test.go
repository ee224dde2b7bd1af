package postgres

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	account := &entity.Account{FirebaseUID: "firebase-1", Email: "a@example.com", Name: "A", Role: entity.RoleCustomer}
	require.NoError(t, repo.CreateAccount(ctx, account))
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, entity.AccountActive, account.Status)

	found, err := repo.FindAccountByFirebaseUID(ctx, "firebase-1")
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
	assert.Equal(t, entity.RoleCustomer, found.Role)
	assert.Nil(t, found.SellerProfile)

	byID, err := repo.FindAccountByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", byID.Email)

	t.Run("duplicate firebase uid", func(t *testing.T) {
		err := repo.CreateAccount(ctx, &entity.Account{FirebaseUID: "firebase-1", Role: entity.RoleCustomer})
		assert.ErrorIs(t, err, repository.ErrDuplicateAccount)
	})

	t.Run("unknown uid", func(t *testing.T) {
		_, err := repo.FindAccountByFirebaseUID(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	})
}

func TestAccountRepository_UpdateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	customer := createTestAccount(t, db, entity.RoleCustomer)
	seller := createTestAccount(t, db, entity.RoleSeller)

	require.NoError(t, repo.UpdateAccountRole(ctx, customer.ID, entity.RoleAdmin))
	require.NoError(t, repo.UpdateAccountStatus(ctx, seller.ID, entity.AccountSuspended))

	admins, err := repo.ListAccounts(ctx, repository.AccountFilter{Role: entity.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, customer.ID, admins[0].ID)

	suspended, err := repo.ListAccounts(ctx, repository.AccountFilter{Status: entity.AccountSuspended})
	require.NoError(t, err)
	require.Len(t, suspended, 1)
	assert.True(t, suspended[0].IsSuspended())

	all, err := repo.ListAccounts(ctx, repository.AccountFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	err = repo.UpdateAccountRole(ctx, uuid.New(), entity.RoleAdmin)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestProfileRepository_SellerLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	account := createTestAccount(t, db, entity.RoleSeller)
	lat, lng := 25.03, 121.56
	profile := &entity.SellerProfile{
		AccountID:    account.ID,
		BusinessName: "Fresh Fruits",
		Address:      "1 Market St",
		Phone:        "0912345678",
		Latitude:     &lat,
		Longitude:    &lng,
		Approval:     entity.ApprovalPending,
	}
	require.NoError(t, repo.SaveSellerProfile(ctx, profile))

	pending, err := repo.ListSellerProfiles(ctx, entity.ApprovalPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.True(t, pending[0].HasLocation())

	admin := uuid.New()
	decision := repository.ApprovalDecision{
		AccountID:  account.ID,
		From:       entity.ApprovalPending,
		To:         entity.ApprovalRejected,
		ReviewedBy: admin,
		ReviewedAt: time.Now(),
	}
	require.NoError(t, repo.ResolveSellerApproval(ctx, decision))

	t.Run("second decision conflicts", func(t *testing.T) {
		err := repo.ResolveSellerApproval(ctx, decision)
		assert.ErrorIs(t, err, repository.ErrApprovalConflict)
	})

	t.Run("unknown profile", func(t *testing.T) {
		err := repo.ResolveSellerApproval(ctx, repository.ApprovalDecision{AccountID: uuid.New(), From: entity.ApprovalPending, To: entity.ApprovalApproved})
		assert.ErrorIs(t, err, repository.ErrSellerProfileNotFound)
	})

	stored, err := repo.FindSellerProfile(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalRejected, stored.Approval)
	require.NotNil(t, stored.ReviewedBy)
	assert.Equal(t, admin, *stored.ReviewedBy)

	// Re-application overwrites the rejected profile.
	profile.BusinessName = "Fresher Fruits"
	profile.Approval = entity.ApprovalPending
	profile.ReviewedBy = nil
	profile.ReviewedAt = nil
	require.NoError(t, repo.SaveSellerProfile(ctx, profile))

	stored, err = repo.FindSellerProfile(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fresher Fruits", stored.BusinessName)
	assert.Equal(t, entity.ApprovalPending, stored.Approval)
	assert.Nil(t, stored.ReviewedBy)

	loaded, err := NewAccountRepository(db).FindAccountByID(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.SellerProfile)
	assert.Equal(t, entity.ApprovalPending, loaded.Approval())
}

func TestProfileRepository_Delivery(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	_, err := repo.FindDeliveryProfile(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrDeliveryProfileNotFound)

	account := createTestAccount(t, db, entity.RoleDelivery)
	require.NoError(t, repo.SaveDeliveryProfile(ctx, &entity.DeliveryProfile{
		AccountID:   account.ID,
		FullName:    "Rider One",
		Phone:       "0911000000",
		Address:     "2 Side St",
		VehicleType: "scooter",
		Approval:    entity.ApprovalPending,
	}))

	require.NoError(t, repo.ResolveDeliveryApproval(ctx, repository.ApprovalDecision{
		AccountID:  account.ID,
		From:       entity.ApprovalPending,
		To:         entity.ApprovalApproved,
		ReviewedBy: uuid.New(),
		ReviewedAt: time.Now(),
	}))

	approved, err := repo.ListDeliveryProfiles(ctx, entity.ApprovalApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "scooter", approved[0].VehicleType)

	none, err := repo.ListDeliveryProfiles(ctx, entity.ApprovalPending)
	require.NoError(t, err)
	assert.Empty(t, none)
}
