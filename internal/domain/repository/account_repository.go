// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateAccount = errors.New("account already exists")
)

// AccountFilter narrows ListAccounts. Zero values mean no filtering.
type AccountFilter struct {
	Role   entity.Role
	Status entity.AccountStatus
}

// AccountRepository defines account-related database operations.
type AccountRepository interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, account *entity.Account) error

	// FindAccountByID retrieves an account with its onboarding profiles.
	FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindAccountByFirebaseUID retrieves an account by its external identity.
	FindAccountByFirebaseUID(ctx context.Context, uid string) (*entity.Account, error)

	// ListAccounts lists accounts ordered by creation time, newest first.
	ListAccounts(ctx context.Context, filter AccountFilter) ([]*entity.Account, error)

	UpdateAccountRole(ctx context.Context, id uuid.UUID, role entity.Role) error
	UpdateAccountStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) error
}
