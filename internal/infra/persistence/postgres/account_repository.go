// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// CreateAccount persists a new account.
func (repo *accountRepository) CreateAccount(ctx context.Context, account *entity.Account) error {
	if account.Status == "" {
		account.Status = entity.AccountActive
	}
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Omit("SellerProfile", "DeliveryProfile").Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAccount
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindAccountByID retrieves an account with its onboarding profiles.
func (repo *accountRepository) FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindAccountByFirebaseUID retrieves an account by its external identity.
func (repo *accountRepository) FindAccountByFirebaseUID(ctx context.Context, uid string) (*entity.Account, error) {
	return repo.findOne(ctx, "firebase_uid = ?", uid)
}

func (repo *accountRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Preload("SellerProfile").
		Preload("DeliveryProfile").
		Where(query, args...).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

// ListAccounts lists accounts ordered by creation time, newest first.
func (repo *accountRepository) ListAccounts(ctx context.Context, filter repository.AccountFilter) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel

	query := repo.db.WithContext(ctx).
		Preload("SellerProfile").
		Preload("DeliveryProfile")
	if filter.Role != "" {
		query = query.Where("role = ?", string(filter.Role))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	if err := query.Order("created_at DESC").Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// UpdateAccountRole sets the role of an account.
func (repo *accountRepository) UpdateAccountRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	return repo.updateColumn(ctx, id, "role", string(role))
}

// UpdateAccountStatus sets the soft status of an account.
func (repo *accountRepository) UpdateAccountStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) error {
	return repo.updateColumn(ctx, id, "status", string(status))
}

func (repo *accountRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update(column, value)

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update account %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:              data.ID,
		FirebaseUID:     data.FirebaseUID,
		Email:           data.Email,
		Name:            data.Name,
		Role:            entity.Role(data.Role),
		Status:          entity.AccountStatus(data.Status),
		SellerProfile:   toSellerProfileDomain(data.SellerProfile),
		DeliveryProfile: toDeliveryProfileDomain(data.DeliveryProfile),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:          data.ID,
		FirebaseUID: data.FirebaseUID,
		Email:       data.Email,
		Name:        data.Name,
		Role:        string(data.Role),
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
