package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAdminHash = "$2a$04$adminhash"

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
}

func createTestAccountService(t *testing.T, autoProvision bool) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewAccountService(AccountServiceParams{
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Config:      newTestConfig(autoProvision, testAdminHash),
		Logger:      newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		hasher:      hasher,
	}
}

func TestAccountService_ResolvePrincipal_ExistingSeller(t *testing.T) {
	fx := createTestAccountService(t, false)
	ctx := context.Background()

	account := &entity.Account{
		ID:            uuid.New(),
		FirebaseUID:   "uid-1",
		Email:         "seller@example.com",
		Role:          entity.RoleSeller,
		Status:        entity.AccountActive,
		SellerProfile: &entity.SellerProfile{Approval: entity.ApprovalPending},
	}
	fx.accountRepo.EXPECT().FindAccountByFirebaseUID(ctx, "uid-1").Return(account, nil)

	principal, err := fx.service.ResolvePrincipal(ctx, &entity.Identity{UID: "uid-1"})
	require.NoError(t, err)
	assert.Equal(t, account.ID, principal.AccountID)
	assert.Equal(t, entity.RoleSeller, principal.Role)
	assert.Equal(t, entity.ApprovalPending, principal.Approval)
	assert.False(t, principal.IsApproved())
}

func TestAccountService_ResolvePrincipal_AutoProvision(t *testing.T) {
	fx := createTestAccountService(t, true)
	ctx := context.Background()
	identity := &entity.Identity{UID: "new-uid", Email: "jane@example.com"}

	fx.accountRepo.EXPECT().FindAccountByFirebaseUID(ctx, "new-uid").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().
		CreateAccount(ctx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.FirebaseUID == "new-uid" && a.Role == entity.RoleCustomer && a.Name == "jane"
		})).
		Return(nil)

	principal, err := fx.service.ResolvePrincipal(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, principal.Role)
	assert.Empty(t, principal.Approval)
	assert.True(t, principal.IsApproved())
}

func TestAccountService_ResolvePrincipal_ProvisionRace(t *testing.T) {
	fx := createTestAccountService(t, true)
	ctx := context.Background()
	existing := &entity.Account{ID: uuid.New(), FirebaseUID: "uid", Role: entity.RoleCustomer, Status: entity.AccountActive}

	fx.accountRepo.EXPECT().FindAccountByFirebaseUID(ctx, "uid").Return(nil, repository.ErrAccountNotFound).Once()
	fx.accountRepo.EXPECT().CreateAccount(ctx, mock.AnythingOfType("*entity.Account")).Return(repository.ErrDuplicateAccount)
	fx.accountRepo.EXPECT().FindAccountByFirebaseUID(ctx, "uid").Return(existing, nil).Once()

	principal, err := fx.service.ResolvePrincipal(ctx, &entity.Identity{UID: "uid"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, principal.AccountID)
}

func TestAccountService_ResolvePrincipal_Errors(t *testing.T) {
	t.Run("unknown identity without auto provisioning", func(t *testing.T) {
		fx := createTestAccountService(t, false)
		ctx := context.Background()
		fx.accountRepo.EXPECT().FindAccountByFirebaseUID(ctx, "uid").Return(nil, repository.ErrAccountNotFound)

		_, err := fx.service.ResolvePrincipal(ctx, &entity.Identity{UID: "uid"})
		assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	})

	t.Run("suspended account", func(t *testing.T) {
		fx := createTestAccountService(t, false)
		ctx := context.Background()
		fx.accountRepo.EXPECT().FindAccountByFirebaseUID(ctx, "uid").
			Return(&entity.Account{Role: entity.RoleCustomer, Status: entity.AccountSuspended}, nil)

		_, err := fx.service.ResolvePrincipal(ctx, &entity.Identity{UID: "uid"})
		assert.True(t, errors.Is(err, domainerrors.ErrAccountSuspended))
	})

	t.Run("empty identity", func(t *testing.T) {
		fx := createTestAccountService(t, false)

		_, err := fx.service.ResolvePrincipal(context.Background(), &entity.Identity{})
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("database failure", func(t *testing.T) {
		fx := createTestAccountService(t, false)
		ctx := context.Background()
		fx.accountRepo.EXPECT().FindAccountByFirebaseUID(ctx, "uid").Return(nil, errors.New("connection reset"))

		_, err := fx.service.ResolvePrincipal(ctx, &entity.Identity{UID: "uid"})
		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 500, appErr.HTTPCode())
	})
}

func TestAccountService_AdminLogin_WrongPasswordRejectedRegardlessOfUID(t *testing.T) {
	for _, uid := range []string{"admin-uid", "unknown-uid", ""} {
		t.Run(uid, func(t *testing.T) {
			fx := createTestAccountService(t, false)
			fx.hasher.EXPECT().Matches("wrong", testAdminHash).Return(false)

			account, err := fx.service.AdminLogin(context.Background(), uid, "wrong")
			assert.Nil(t, account)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidAdminCredentials))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 401, appErr.HTTPCode())
		})
	}
}

func TestAccountService_AdminLogin_EmptyPassword(t *testing.T) {
	fx := createTestAccountService(t, false)
	fx.hasher.EXPECT().Matches("", testAdminHash).Return(false)

	_, err := fx.service.AdminLogin(context.Background(), "x", "")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAdminCredentials))
}

func TestAccountService_AdminLogin_PromotesAccount(t *testing.T) {
	fx := createTestAccountService(t, false)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), FirebaseUID: "uid", Role: entity.RoleCustomer, Status: entity.AccountActive}

	fx.hasher.EXPECT().Matches("secret", testAdminHash).Return(true)
	fx.accountRepo.EXPECT().FindAccountByFirebaseUID(ctx, "uid").Return(account, nil)
	fx.accountRepo.EXPECT().UpdateAccountRole(ctx, account.ID, entity.RoleAdmin).Return(nil)

	result, err := fx.service.AdminLogin(ctx, "uid", "secret")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, result.Role)
}

func TestAccountService_AdminLogin_UnknownUID(t *testing.T) {
	fx := createTestAccountService(t, false)
	ctx := context.Background()

	fx.hasher.EXPECT().Matches("secret", testAdminHash).Return(true)
	fx.accountRepo.EXPECT().FindAccountByFirebaseUID(ctx, "ghost").Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.AdminLogin(ctx, "ghost", "secret")
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_UpdateRole(t *testing.T) {
	t.Run("admin cannot demote self", func(t *testing.T) {
		fx := createTestAccountService(t, false)
		actor := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleAdmin}

		_, err := fx.service.UpdateRole(context.Background(), actor, actor.AccountID, entity.RoleCustomer)
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("invalid role", func(t *testing.T) {
		fx := createTestAccountService(t, false)

		_, err := fx.service.UpdateRole(context.Background(), nil, uuid.New(), entity.Role("owner"))
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestAccountService(t, false)
		ctx := context.Background()
		target := uuid.New()
		actor := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleAdmin}

		fx.accountRepo.EXPECT().FindAccountByID(ctx, target).
			Return(&entity.Account{ID: target, Role: entity.RoleCustomer}, nil).Once()
		fx.accountRepo.EXPECT().UpdateAccountRole(ctx, target, entity.RoleDelivery).Return(nil)
		fx.accountRepo.EXPECT().FindAccountByID(ctx, target).
			Return(&entity.Account{ID: target, Role: entity.RoleDelivery}, nil).Once()

		account, err := fx.service.UpdateRole(ctx, actor, target, entity.RoleDelivery)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleDelivery, account.Role)
	})
}

func TestAccountService_UpdateStatus(t *testing.T) {
	t.Run("suspend", func(t *testing.T) {
		fx := createTestAccountService(t, false)
		ctx := context.Background()
		target := uuid.New()
		actor := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleAdmin}

		fx.accountRepo.EXPECT().FindAccountByID(ctx, target).
			Return(&entity.Account{ID: target, Status: entity.AccountActive}, nil).Once()
		fx.accountRepo.EXPECT().UpdateAccountStatus(ctx, target, entity.AccountSuspended).Return(nil)
		fx.accountRepo.EXPECT().FindAccountByID(ctx, target).
			Return(&entity.Account{ID: target, Status: entity.AccountSuspended}, nil).Once()

		account, err := fx.service.UpdateStatus(ctx, actor, target, entity.AccountSuspended)
		require.NoError(t, err)
		assert.True(t, account.IsSuspended())
	})

	t.Run("unknown account", func(t *testing.T) {
		fx := createTestAccountService(t, false)
		ctx := context.Background()
		target := uuid.New()

		fx.accountRepo.EXPECT().FindAccountByID(ctx, target).Return(nil, repository.ErrAccountNotFound)

		_, err := fx.service.UpdateStatus(ctx, nil, target, entity.AccountActive)
		assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
	})

	t.Run("invalid status", func(t *testing.T) {
		fx := createTestAccountService(t, false)

		_, err := fx.service.UpdateStatus(context.Background(), nil, uuid.New(), entity.AccountStatus("deleted"))
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestAccountService_ListAccounts(t *testing.T) {
	fx := createTestAccountService(t, false)
	ctx := context.Background()
	filter := repository.AccountFilter{Role: entity.RoleSeller}

	fx.accountRepo.EXPECT().ListAccounts(ctx, filter).Return([]*entity.Account{{ID: uuid.New()}}, nil)

	accounts, err := fx.service.ListAccounts(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}
