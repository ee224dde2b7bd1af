// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
)

// AccountUsecase resolves callers to accounts and manages accounts on behalf of admins.
type AccountUsecase interface {
	// ResolvePrincipal maps a verified identity to its account, role and approval status.
	// Unknown identities are provisioned as customers when auto-provisioning is enabled.
	ResolvePrincipal(ctx context.Context, identity *entity.Identity) (*entity.Principal, error)

	// GetAccount returns an account with its onboarding profiles.
	GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)

	ListAccounts(ctx context.Context, filter repository.AccountFilter) ([]*entity.Account, error)

	// UpdateRole changes the role of an account. Admins cannot demote themselves.
	UpdateRole(ctx context.Context, actor *entity.Principal, accountID uuid.UUID, role entity.Role) (*entity.Account, error)

	// UpdateStatus suspends or reactivates an account. Accounts are never deleted.
	UpdateStatus(ctx context.Context, actor *entity.Principal, accountID uuid.UUID, status entity.AccountStatus) (*entity.Account, error)

	// AdminLogin checks the shared admin password and promotes the account with firebaseUID.
	AdminLogin(ctx context.Context, firebaseUID, password string) (*entity.Account, error)
}
