package impl

import (
	"context"
	"testing"
	"time"

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

type onboardingServiceFixtures struct {
	service     usecase.OnboardingUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
	qrService   *mockSvc.MockQRCodeService

	// repositories handed out inside transactions
	txProfileRepo *mockRepo.MockProfileRepository
	txAccountRepo *mockRepo.MockAccountRepository
}

func createTestOnboardingService(t *testing.T) onboardingServiceFixtures {
	fixtures := onboardingServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		profileRepo:   mockRepo.NewMockProfileRepository(t),
		qrService:     mockSvc.NewMockQRCodeService(t),
		txProfileRepo: mockRepo.NewMockProfileRepository(t),
		txAccountRepo: mockRepo.NewMockAccountRepository(t),
	}
	fixtures.service = NewOnboardingService(OnboardingServiceParams{
		TxManager:   fixtures.txManager,
		ProfileRepo: fixtures.profileRepo,
		QRService:   fixtures.qrService,
		Logger:      newDiscardLogger(),
	})

	return fixtures
}

// expectTx runs the transaction body against the fixture's tx repositories.
func (f onboardingServiceFixtures) expectTx(t *testing.T) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewProfileRepository().Return(f.txProfileRepo).Maybe()
			factory.EXPECT().NewAccountRepository().Return(f.txAccountRepo).Maybe()

			return fn(factory)
		})
}

func TestOnboardingService_ApplySeller_FirstApplication(t *testing.T) {
	fx := createTestOnboardingService(t)
	ctx := context.Background()
	principal := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleCustomer}
	lat, lng := 25.03, 121.56

	fx.expectTx(t)
	fx.txProfileRepo.EXPECT().FindSellerProfile(ctx, principal.AccountID).Return(nil, repository.ErrSellerProfileNotFound)
	fx.txProfileRepo.EXPECT().
		SaveSellerProfile(ctx, mock.MatchedBy(func(p *entity.SellerProfile) bool {
			return p.Approval == entity.ApprovalPending && p.BusinessName == "Corner Bakery" && p.HasLocation()
		})).
		Return(nil)
	fx.txAccountRepo.EXPECT().UpdateAccountRole(ctx, principal.AccountID, entity.RoleSeller).Return(nil)

	profile, err := fx.service.ApplySeller(ctx, principal, &usecase.SellerApplication{
		BusinessName: " Corner Bakery ",
		Address:      "1 Main St",
		Latitude:     &lat,
		Longitude:    &lng,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalPending, profile.Approval)
	assert.Equal(t, principal.AccountID, profile.AccountID)
}

func TestOnboardingService_ApplySeller_Reapply(t *testing.T) {
	t.Run("after rejection", func(t *testing.T) {
		fx := createTestOnboardingService(t)
		ctx := context.Background()
		principal := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleSeller, Approval: entity.ApprovalRejected}
		created := time.Now().Add(-48 * time.Hour)

		fx.expectTx(t)
		fx.txProfileRepo.EXPECT().FindSellerProfile(ctx, principal.AccountID).
			Return(&entity.SellerProfile{AccountID: principal.AccountID, Approval: entity.ApprovalRejected, CreatedAt: created}, nil)
		fx.txProfileRepo.EXPECT().SaveSellerProfile(ctx, mock.AnythingOfType("*entity.SellerProfile")).Return(nil)

		profile, err := fx.service.ApplySeller(ctx, principal, &usecase.SellerApplication{BusinessName: "Shop"})
		require.NoError(t, err)
		assert.Equal(t, entity.ApprovalPending, profile.Approval)
		assert.Equal(t, created, profile.CreatedAt)
	})

	t.Run("while pending", func(t *testing.T) {
		fx := createTestOnboardingService(t)
		ctx := context.Background()
		principal := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleSeller}

		fx.expectTx(t)
		fx.txProfileRepo.EXPECT().FindSellerProfile(ctx, principal.AccountID).
			Return(&entity.SellerProfile{Approval: entity.ApprovalPending}, nil)

		_, err := fx.service.ApplySeller(ctx, principal, &usecase.SellerApplication{BusinessName: "Shop"})
		assert.True(t, errors.Is(err, domainerrors.ErrApplicationExists))
	})
}

func TestOnboardingService_ApplySeller_Validation(t *testing.T) {
	fx := createTestOnboardingService(t)
	lat := 1.0

	_, err := fx.service.ApplySeller(context.Background(), &entity.Principal{Role: entity.RoleAdmin}, &usecase.SellerApplication{BusinessName: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotAllowed))

	_, err = fx.service.ApplySeller(context.Background(), &entity.Principal{Role: entity.RoleCustomer}, &usecase.SellerApplication{BusinessName: "  "})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.ApplySeller(context.Background(), &entity.Principal{Role: entity.RoleCustomer}, &usecase.SellerApplication{BusinessName: "x", Latitude: &lat})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOnboardingService_RegisterDelivery(t *testing.T) {
	fx := createTestOnboardingService(t)
	ctx := context.Background()
	principal := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleCustomer}

	fx.expectTx(t)
	fx.txProfileRepo.EXPECT().FindDeliveryProfile(ctx, principal.AccountID).Return(nil, repository.ErrDeliveryProfileNotFound)
	fx.txProfileRepo.EXPECT().SaveDeliveryProfile(ctx, mock.AnythingOfType("*entity.DeliveryProfile")).Return(nil)
	fx.txAccountRepo.EXPECT().UpdateAccountRole(ctx, principal.AccountID, entity.RoleDelivery).Return(nil)

	profile, err := fx.service.RegisterDelivery(ctx, principal, &usecase.DeliveryApplication{FullName: "Sam Rider", VehicleType: "bike"})
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalPending, profile.Approval)
	assert.Equal(t, "bike", profile.VehicleType)
}

func TestOnboardingService_CrossRoleApplication(t *testing.T) {
	t.Run("approved seller cannot register as courier", func(t *testing.T) {
		fx := createTestOnboardingService(t)
		ctx := context.Background()
		principal := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleSeller, Approval: entity.ApprovalApproved}

		fx.expectTx(t)
		fx.txProfileRepo.EXPECT().FindSellerProfile(ctx, principal.AccountID).
			Return(&entity.SellerProfile{AccountID: principal.AccountID, Approval: entity.ApprovalApproved}, nil)

		profile, err := fx.service.RegisterDelivery(ctx, principal, &usecase.DeliveryApplication{FullName: "Sam Rider"})
		assert.Nil(t, profile)
		assert.True(t, errors.Is(err, domainerrors.ErrRoleNotAllowed))
	})

	t.Run("pending courier cannot apply as seller", func(t *testing.T) {
		fx := createTestOnboardingService(t)
		ctx := context.Background()
		principal := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleDelivery, Approval: entity.ApprovalPending}

		fx.expectTx(t)
		fx.txProfileRepo.EXPECT().FindDeliveryProfile(ctx, principal.AccountID).
			Return(&entity.DeliveryProfile{AccountID: principal.AccountID, Approval: entity.ApprovalPending}, nil)

		profile, err := fx.service.ApplySeller(ctx, principal, &usecase.SellerApplication{BusinessName: "Shop"})
		assert.Nil(t, profile)
		assert.True(t, errors.Is(err, domainerrors.ErrRoleNotAllowed))
	})

	t.Run("rejected seller may register as courier", func(t *testing.T) {
		fx := createTestOnboardingService(t)
		ctx := context.Background()
		principal := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleSeller, Approval: entity.ApprovalRejected}

		fx.expectTx(t)
		fx.txProfileRepo.EXPECT().FindSellerProfile(ctx, principal.AccountID).
			Return(&entity.SellerProfile{AccountID: principal.AccountID, Approval: entity.ApprovalRejected}, nil)
		fx.txProfileRepo.EXPECT().FindDeliveryProfile(ctx, principal.AccountID).Return(nil, repository.ErrDeliveryProfileNotFound)
		fx.txProfileRepo.EXPECT().SaveDeliveryProfile(ctx, mock.AnythingOfType("*entity.DeliveryProfile")).Return(nil)
		fx.txAccountRepo.EXPECT().UpdateAccountRole(ctx, principal.AccountID, entity.RoleDelivery).Return(nil)

		_, err := fx.service.RegisterDelivery(ctx, principal, &usecase.DeliveryApplication{FullName: "Sam Rider"})
		require.NoError(t, err)
	})
}

func TestOnboardingService_DeliveryLogin(t *testing.T) {
	tests := []struct {
		name    string
		profile *entity.DeliveryProfile
		findErr error
		wantErr error
	}{
		{name: "approved", profile: &entity.DeliveryProfile{Approval: entity.ApprovalApproved}},
		{name: "pending", profile: &entity.DeliveryProfile{Approval: entity.ApprovalPending}, wantErr: domainerrors.ErrDeliveryNotApproved},
		{name: "rejected", profile: &entity.DeliveryProfile{Approval: entity.ApprovalRejected}, wantErr: domainerrors.ErrDeliveryNotApproved},
		{name: "not registered", findErr: repository.ErrDeliveryProfileNotFound, wantErr: domainerrors.ErrDeliveryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOnboardingService(t)
			ctx := context.Background()
			accountID := uuid.New()
			fx.profileRepo.EXPECT().FindDeliveryProfile(ctx, accountID).Return(tt.profile, tt.findErr)

			profile, err := fx.service.DeliveryLogin(ctx, accountID)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, entity.ApprovalApproved, profile.Approval)

				return
			}

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantErr.(domainerrors.AppError).ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestOnboardingService_ResolveSellerApplication(t *testing.T) {
	reviewer := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleAdmin}

	t.Run("approve pending", func(t *testing.T) {
		fx := createTestOnboardingService(t)
		ctx := context.Background()
		sellerID := uuid.New()

		fx.profileRepo.EXPECT().FindSellerProfile(ctx, sellerID).
			Return(&entity.SellerProfile{AccountID: sellerID, Approval: entity.ApprovalPending}, nil)
		fx.profileRepo.EXPECT().
			ResolveSellerApproval(ctx, mock.MatchedBy(func(d repository.ApprovalDecision) bool {
				return d.From == entity.ApprovalPending && d.To == entity.ApprovalApproved && d.ReviewedBy == reviewer.AccountID
			})).
			Return(nil)

		profile, err := fx.service.ResolveSellerApplication(ctx, reviewer, sellerID, entity.ApprovalApproved)
		require.NoError(t, err)
		assert.Equal(t, entity.ApprovalApproved, profile.Approval)
		require.NotNil(t, profile.ReviewedBy)
		assert.Equal(t, reviewer.AccountID, *profile.ReviewedBy)
	})

	t.Run("already approved", func(t *testing.T) {
		fx := createTestOnboardingService(t)
		ctx := context.Background()
		sellerID := uuid.New()

		fx.profileRepo.EXPECT().FindSellerProfile(ctx, sellerID).
			Return(&entity.SellerProfile{Approval: entity.ApprovalApproved}, nil)

		_, err := fx.service.ResolveSellerApplication(ctx, reviewer, sellerID, entity.ApprovalRejected)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidApprovalTransition))
	})

	t.Run("concurrent decision", func(t *testing.T) {
		fx := createTestOnboardingService(t)
		ctx := context.Background()
		sellerID := uuid.New()

		fx.profileRepo.EXPECT().FindSellerProfile(ctx, sellerID).
			Return(&entity.SellerProfile{Approval: entity.ApprovalPending}, nil)
		fx.profileRepo.EXPECT().ResolveSellerApproval(ctx, mock.Anything).Return(repository.ErrApprovalConflict)

		_, err := fx.service.ResolveSellerApplication(ctx, reviewer, sellerID, entity.ApprovalApproved)
		assert.True(t, errors.Is(err, domainerrors.ErrConflict))
	})

	t.Run("pending is not a decision", func(t *testing.T) {
		fx := createTestOnboardingService(t)
		ctx := context.Background()
		sellerID := uuid.New()

		fx.profileRepo.EXPECT().FindSellerProfile(ctx, sellerID).
			Return(&entity.SellerProfile{Approval: entity.ApprovalPending}, nil)

		_, err := fx.service.ResolveSellerApplication(ctx, reviewer, sellerID, entity.ApprovalPending)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidApprovalTransition))
	})
}

func TestOnboardingService_ResolveDeliveryApplication_Reject(t *testing.T) {
	fx := createTestOnboardingService(t)
	ctx := context.Background()
	reviewer := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleAdmin}
	courierID := uuid.New()

	fx.profileRepo.EXPECT().FindDeliveryProfile(ctx, courierID).
		Return(&entity.DeliveryProfile{AccountID: courierID, Approval: entity.ApprovalPending}, nil)
	fx.profileRepo.EXPECT().ResolveDeliveryApproval(ctx, mock.AnythingOfType("repository.ApprovalDecision")).Return(nil)

	profile, err := fx.service.ResolveDeliveryApplication(ctx, reviewer, courierID, entity.ApprovalRejected)
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalRejected, profile.Approval)
}

func TestOnboardingService_StorefrontQR(t *testing.T) {
	t.Run("approved seller", func(t *testing.T) {
		fx := createTestOnboardingService(t)
		ctx := context.Background()
		sellerID := uuid.New()

		fx.profileRepo.EXPECT().FindSellerProfile(ctx, sellerID).
			Return(&entity.SellerProfile{Approval: entity.ApprovalApproved}, nil)
		fx.qrService.EXPECT().GenerateStorefrontQR(sellerID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := fx.service.StorefrontQR(ctx, sellerID)
		require.NoError(t, err)
		assert.NotEmpty(t, png)
	})

	t.Run("pending seller", func(t *testing.T) {
		fx := createTestOnboardingService(t)
		ctx := context.Background()
		sellerID := uuid.New()

		fx.profileRepo.EXPECT().FindSellerProfile(ctx, sellerID).
			Return(&entity.SellerProfile{Approval: entity.ApprovalPending}, nil)

		_, err := fx.service.StorefrontQR(ctx, sellerID)
		assert.True(t, errors.Is(err, domainerrors.ErrApprovalRequired))
	})
}

func TestOnboardingService_ListApplications_InvalidStatus(t *testing.T) {
	fx := createTestOnboardingService(t)

	_, err := fx.service.ListSellerApplications(context.Background(), entity.ApprovalStatus("maybe"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.ListDeliveryApplications(context.Background(), entity.ApprovalStatus("maybe"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
