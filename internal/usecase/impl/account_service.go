// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"marketplace/config"
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

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo       repository.AccountRepository
	hasher            service.PasswordHasher
	autoProvision     bool
	adminPasswordHash string
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	srv := &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
	if params.Config != nil && params.Config.Auth != nil {
		srv.autoProvision = params.Config.Auth.AutoProvision
	}
	if params.Config != nil && params.Config.Admin != nil {
		srv.adminPasswordHash = params.Config.Admin.PasswordHash
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolvePrincipal maps a verified identity onto its application account.
func (srv *accountService) ResolvePrincipal(ctx context.Context, identity *entity.Identity) (*entity.Principal, error) {
	if identity == nil || identity.UID == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	account, err := srv.accountRepo.FindAccountByFirebaseUID(ctx, identity.UID)
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		if !srv.autoProvision {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("no account is linked to this identity")
		}
		account, err = srv.provisionCustomer(ctx, identity)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account")
	}

	if account.IsSuspended() {
		return nil, domainerrors.ErrAccountSuspended
	}

	return entity.NewPrincipal(account), nil
}

// provisionCustomer creates the customer account of a first-time identity.
// A concurrent request may create the same account; the loser reloads it.
func (srv *accountService) provisionCustomer(ctx context.Context, identity *entity.Identity) (*entity.Account, error) {
	now := time.Now()
	account := &entity.Account{
		ID:          uuid.New(),
		FirebaseUID: identity.UID,
		Email:       identity.Email,
		Name:        displayName(identity),
		Role:        entity.RoleCustomer,
		Status:      entity.AccountActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := srv.accountRepo.CreateAccount(ctx, account)
	if errors.Is(err, repository.ErrDuplicateAccount) {
		existing, findErr := srv.accountRepo.FindAccountByFirebaseUID(ctx, identity.UID)
		if findErr != nil {
			return nil, domainerrors.NewDatabaseExecuteError(findErr, "failed to reload provisioned account")
		}

		return existing, nil
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to provision account")
	}

	srv.log(ctx).Info("Provisioned customer account",
		slog.String("account_id", account.ID.String()),
		slog.String("uid", identity.UID),
	)

	return account, nil
}

func displayName(identity *entity.Identity) string {
	if name := strings.TrimSpace(identity.Name); name != "" {
		return name
	}
	if at := strings.Index(identity.Email, "@"); at > 0 {
		return identity.Email[:at]
	}

	return identity.UID
}

// GetAccount returns an account with its onboarding profiles.
func (srv *accountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindAccountByID(ctx, accountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account")
	}

	return account, nil
}

func (srv *accountService) ListAccounts(ctx context.Context, filter repository.AccountFilter) ([]*entity.Account, error) {
	if filter.Role != "" && !filter.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role filter")
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown status filter")
	}

	accounts, err := srv.accountRepo.ListAccounts(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list accounts")
	}

	return accounts, nil
}

// UpdateRole changes the role of an account on behalf of an admin.
func (srv *accountService) UpdateRole(ctx context.Context, actor *entity.Principal, accountID uuid.UUID, role entity.Role) (*entity.Account, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}
	if actor != nil && actor.AccountID == accountID && role != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("admins cannot demote themselves")
	}

	if _, err := srv.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	if err := srv.accountRepo.UpdateAccountRole(ctx, accountID, role); err != nil {
		return nil, srv.mapUpdateError(err, "failed to update account role")
	}

	srv.log(ctx).Info("Account role updated",
		slog.String("account_id", accountID.String()),
		slog.String("role", role.String()),
	)

	return srv.GetAccount(ctx, accountID)
}

// UpdateStatus suspends or reactivates an account.
func (srv *accountService) UpdateStatus(ctx context.Context, actor *entity.Principal, accountID uuid.UUID, status entity.AccountStatus) (*entity.Account, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown account status")
	}
	if actor != nil && actor.AccountID == accountID && status == entity.AccountSuspended {
		return nil, domainerrors.ErrForbidden.WrapMessage("admins cannot suspend themselves")
	}

	if _, err := srv.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	if err := srv.accountRepo.UpdateAccountStatus(ctx, accountID, status); err != nil {
		return nil, srv.mapUpdateError(err, "failed to update account status")
	}

	srv.log(ctx).Info("Account status updated",
		slog.String("account_id", accountID.String()),
		slog.String("status", string(status)),
	)

	return srv.GetAccount(ctx, accountID)
}

func (srv *accountService) mapUpdateError(err error, details string) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrAccountNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// AdminLogin checks the shared admin password before looking at the uid,
// so a wrong password is always rejected the same way.
func (srv *accountService) AdminLogin(ctx context.Context, firebaseUID, password string) (*entity.Account, error) {
	if srv.adminPasswordHash == "" || !srv.hasher.Matches(password, srv.adminPasswordHash) {
		srv.log(ctx).Warn("Rejected admin login", slog.String("uid", firebaseUID))

		return nil, domainerrors.ErrInvalidAdminCredentials
	}

	account, err := srv.accountRepo.FindAccountByFirebaseUID(ctx, firebaseUID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account")
	}
	if account.IsSuspended() {
		return nil, domainerrors.ErrAccountSuspended
	}

	if account.Role != entity.RoleAdmin {
		if err := srv.accountRepo.UpdateAccountRole(ctx, account.ID, entity.RoleAdmin); err != nil {
			return nil, srv.mapUpdateError(err, "failed to promote account")
		}
		account.Role = entity.RoleAdmin
		srv.log(ctx).Info("Account promoted to admin", slog.String("account_id", account.ID.String()))
	}

	return account, nil
}
