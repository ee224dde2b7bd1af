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
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type onboardingService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// OnboardingServiceParams holds dependencies for OnboardingService, injected by Fx.
type OnboardingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewOnboardingService creates the seller and delivery onboarding service.
func NewOnboardingService(params OnboardingServiceParams) usecase.OnboardingUsecase {
	return &onboardingService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *onboardingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ApplySeller stores a pending seller application and switches the account role.
func (srv *onboardingService) ApplySeller(ctx context.Context, principal *entity.Principal, application *usecase.SellerApplication) (*entity.SellerProfile, error) {
	if principal.Role == entity.RoleAdmin {
		return nil, domainerrors.ErrRoleNotAllowed.WrapMessage("admins cannot apply as sellers")
	}
	if strings.TrimSpace(application.BusinessName) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("business name is required")
	}
	if (application.Latitude == nil) != (application.Longitude == nil) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("latitude and longitude must be given together")
	}

	var profile *entity.SellerProfile
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		profileRepo := factory.NewProfileRepository()
		accountRepo := factory.NewAccountRepository()

		if principal.Role == entity.RoleDelivery {
			if err := checkDeliveryReleased(ctx, profileRepo, principal.AccountID); err != nil {
				return err
			}
		}

		now := time.Now()
		createdAt := now
		existing, err := profileRepo.FindSellerProfile(ctx, principal.AccountID)
		switch {
		case err == nil:
			if !existing.Approval.CanReapply() {
				return domainerrors.ErrApplicationExists
			}
			createdAt = existing.CreatedAt
		case !errors.Is(err, repository.ErrSellerProfileNotFound):
			return errors.Wrap(err, "failed to find seller profile")
		}

		profile = &entity.SellerProfile{
			AccountID:    principal.AccountID,
			BusinessName: strings.TrimSpace(application.BusinessName),
			Address:      application.Address,
			Phone:        application.Phone,
			Latitude:     application.Latitude,
			Longitude:    application.Longitude,
			Approval:     entity.ApprovalPending,
			CreatedAt:    createdAt,
			UpdatedAt:    now,
		}
		if err := profileRepo.SaveSellerProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save seller profile")
		}

		if principal.Role != entity.RoleSeller {
			if err := accountRepo.UpdateAccountRole(ctx, principal.AccountID, entity.RoleSeller); err != nil {
				return errors.Wrap(err, "failed to switch account role")
			}
		}

		return nil
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	srv.log(ctx).Info("Seller application submitted", slog.String("account_id", principal.AccountID.String()))

	return profile, nil
}

func (srv *onboardingService) GetSellerProfile(ctx context.Context, accountID uuid.UUID) (*entity.SellerProfile, error) {
	profile, err := srv.profileRepo.FindSellerProfile(ctx, accountID)
	if errors.Is(err, repository.ErrSellerProfileNotFound) {
		return nil, domainerrors.ErrSellerNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find seller profile")
	}

	return profile, nil
}

// StorefrontQR renders the storefront code of an approved seller.
func (srv *onboardingService) StorefrontQR(ctx context.Context, accountID uuid.UUID) ([]byte, error) {
	profile, err := srv.GetSellerProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if profile.Approval != entity.ApprovalApproved {
		return nil, domainerrors.ErrApprovalRequired
	}

	png, err := srv.qrService.GenerateStorefrontQR(accountID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return png, nil
}

// RegisterDelivery stores a pending courier application and switches the account role.
func (srv *onboardingService) RegisterDelivery(ctx context.Context, principal *entity.Principal, application *usecase.DeliveryApplication) (*entity.DeliveryProfile, error) {
	if principal.Role == entity.RoleAdmin {
		return nil, domainerrors.ErrRoleNotAllowed.WrapMessage("admins cannot register as delivery personnel")
	}
	if strings.TrimSpace(application.FullName) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("full name is required")
	}

	var profile *entity.DeliveryProfile
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		profileRepo := factory.NewProfileRepository()
		accountRepo := factory.NewAccountRepository()

		if principal.Role == entity.RoleSeller {
			if err := checkSellerReleased(ctx, profileRepo, principal.AccountID); err != nil {
				return err
			}
		}

		now := time.Now()
		createdAt := now
		existing, err := profileRepo.FindDeliveryProfile(ctx, principal.AccountID)
		switch {
		case err == nil:
			if !existing.Approval.CanReapply() {
				return domainerrors.ErrApplicationExists
			}
			createdAt = existing.CreatedAt
		case !errors.Is(err, repository.ErrDeliveryProfileNotFound):
			return errors.Wrap(err, "failed to find delivery profile")
		}

		profile = &entity.DeliveryProfile{
			AccountID:   principal.AccountID,
			FullName:    strings.TrimSpace(application.FullName),
			Phone:       application.Phone,
			Address:     application.Address,
			VehicleType: application.VehicleType,
			Approval:    entity.ApprovalPending,
			CreatedAt:   createdAt,
			UpdatedAt:   now,
		}
		if err := profileRepo.SaveDeliveryProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save delivery profile")
		}

		if principal.Role != entity.RoleDelivery {
			if err := accountRepo.UpdateAccountRole(ctx, principal.AccountID, entity.RoleDelivery); err != nil {
				return errors.Wrap(err, "failed to switch account role")
			}
		}

		return nil
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	srv.log(ctx).Info("Delivery registration submitted", slog.String("account_id", principal.AccountID.String()))

	return profile, nil
}

// DeliveryLogin only lets approved couriers through.
func (srv *onboardingService) DeliveryLogin(ctx context.Context, accountID uuid.UUID) (*entity.DeliveryProfile, error) {
	profile, err := srv.profileRepo.FindDeliveryProfile(ctx, accountID)
	if errors.Is(err, repository.ErrDeliveryProfileNotFound) {
		return nil, domainerrors.ErrDeliveryNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find delivery profile")
	}
	if profile.Approval != entity.ApprovalApproved {
		return nil, domainerrors.ErrDeliveryNotApproved.WithDetails(string(profile.Approval))
	}

	return profile, nil
}

func (srv *onboardingService) ListSellerApplications(ctx context.Context, status entity.ApprovalStatus) ([]*entity.SellerProfile, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown approval status")
	}

	profiles, err := srv.profileRepo.ListSellerProfiles(ctx, status)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list seller profiles")
	}

	return profiles, nil
}

// ResolveSellerApplication approves or rejects a pending seller.
func (srv *onboardingService) ResolveSellerApplication(ctx context.Context, reviewer *entity.Principal, sellerID uuid.UUID, status entity.ApprovalStatus) (*entity.SellerProfile, error) {
	profile, err := srv.GetSellerProfile(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if !profile.Approval.CanResolveTo(status) {
		return nil, domainerrors.ErrInvalidApprovalTransition
	}

	decision := newApprovalDecision(reviewer, sellerID, profile.Approval, status)
	if err := srv.profileRepo.ResolveSellerApproval(ctx, decision); err != nil {
		return nil, mapApprovalError(err, domainerrors.ErrSellerNotFound)
	}

	profile.Approval = decision.To
	profile.ReviewedBy = &decision.ReviewedBy
	profile.ReviewedAt = &decision.ReviewedAt
	profile.UpdatedAt = decision.ReviewedAt

	srv.log(ctx).Info("Seller application resolved",
		slog.String("seller_id", sellerID.String()),
		slog.String("status", status.String()),
		slog.String("reviewer_id", reviewer.AccountID.String()),
	)

	return profile, nil
}

func (srv *onboardingService) ListDeliveryApplications(ctx context.Context, status entity.ApprovalStatus) ([]*entity.DeliveryProfile, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown approval status")
	}

	profiles, err := srv.profileRepo.ListDeliveryProfiles(ctx, status)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list delivery profiles")
	}

	return profiles, nil
}

// ResolveDeliveryApplication approves or rejects a pending courier.
func (srv *onboardingService) ResolveDeliveryApplication(ctx context.Context, reviewer *entity.Principal, courierID uuid.UUID, status entity.ApprovalStatus) (*entity.DeliveryProfile, error) {
	profile, err := srv.profileRepo.FindDeliveryProfile(ctx, courierID)
	if errors.Is(err, repository.ErrDeliveryProfileNotFound) {
		return nil, domainerrors.ErrDeliveryNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find delivery profile")
	}
	if !profile.Approval.CanResolveTo(status) {
		return nil, domainerrors.ErrInvalidApprovalTransition
	}

	decision := newApprovalDecision(reviewer, courierID, profile.Approval, status)
	if err := srv.profileRepo.ResolveDeliveryApproval(ctx, decision); err != nil {
		return nil, mapApprovalError(err, domainerrors.ErrDeliveryNotFound)
	}

	profile.Approval = decision.To
	profile.ReviewedBy = &decision.ReviewedBy
	profile.ReviewedAt = &decision.ReviewedAt
	profile.UpdatedAt = decision.ReviewedAt

	srv.log(ctx).Info("Delivery application resolved",
		slog.String("courier_id", courierID.String()),
		slog.String("status", status.String()),
		slog.String("reviewer_id", reviewer.AccountID.String()),
	)

	return profile, nil
}

func newApprovalDecision(reviewer *entity.Principal, accountID uuid.UUID, from, to entity.ApprovalStatus) repository.ApprovalDecision {
	return repository.ApprovalDecision{
		AccountID:  accountID,
		From:       from,
		To:         to,
		ReviewedBy: reviewer.AccountID,
		ReviewedAt: time.Now(),
	}
}

func mapApprovalError(err error, notFound error) error {
	switch {
	case errors.Is(err, repository.ErrApprovalConflict):
		return domainerrors.ErrConflict.WrapMessage("application was resolved concurrently")
	case errors.Is(err, repository.ErrSellerProfileNotFound), errors.Is(err, repository.ErrDeliveryProfileNotFound):
		return notFound
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to resolve application")
	}
}

// mapTxError keeps application errors raised inside a transaction and
// turns everything else into a database error.
// checkSellerReleased blocks a role switch away from a seller whose
// application is pending or approved; their orders need the seller role.
func checkSellerReleased(ctx context.Context, profileRepo repository.ProfileRepository, accountID uuid.UUID) error {
	profile, err := profileRepo.FindSellerProfile(ctx, accountID)
	switch {
	case errors.Is(err, repository.ErrSellerProfileNotFound):
		return nil
	case err != nil:
		return errors.Wrap(err, "failed to find seller profile")
	case !profile.Approval.CanReapply():
		return domainerrors.ErrRoleNotAllowed.WrapMessage("account has an active seller application")
	}

	return nil
}

// checkDeliveryReleased is checkSellerReleased for couriers.
func checkDeliveryReleased(ctx context.Context, profileRepo repository.ProfileRepository, accountID uuid.UUID) error {
	profile, err := profileRepo.FindDeliveryProfile(ctx, accountID)
	switch {
	case errors.Is(err, repository.ErrDeliveryProfileNotFound):
		return nil
	case err != nil:
		return errors.Wrap(err, "failed to find delivery profile")
	case !profile.Approval.CanReapply():
		return domainerrors.ErrRoleNotAllowed.WrapMessage("account has an active delivery registration")
	}

	return nil
}

func mapTxError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, "transaction failed")
}
