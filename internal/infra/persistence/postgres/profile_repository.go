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
	"gorm.io/gorm/clause"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// SaveSellerProfile inserts the profile or overwrites the existing row for the account.
func (repo *profileRepository) SaveSellerProfile(ctx context.Context, profile *entity.SellerProfile) error {
	profileM := fromSellerProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"business_name", "address", "phone", "latitude", "longitude", "approval_status", "reviewed_by", "reviewed_at", "updated_at"}),
		}).
		Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save seller profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindSellerProfile retrieves the seller profile of an account.
func (repo *profileRepository) FindSellerProfile(ctx context.Context, accountID uuid.UUID) (*entity.SellerProfile, error) {
	var profileM model.SellerProfileModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller profile")
	}

	return toSellerProfileDomain(&profileM), nil
}

// ListSellerProfiles lists seller profiles, oldest application first.
func (repo *profileRepository) ListSellerProfiles(ctx context.Context, approval entity.ApprovalStatus) ([]*entity.SellerProfile, error) {
	var profileModels []*model.SellerProfileModel

	query := repo.db.WithContext(ctx)
	if approval != "" {
		query = query.Where("approval_status = ?", string(approval))
	}

	if err := query.Order("created_at ASC").Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list seller profiles")
	}

	profiles := make([]*entity.SellerProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toSellerProfileDomain(profileM))
	}

	return profiles, nil
}

// ResolveSellerApproval applies an admin decision with a compare-and-set on the stored status.
func (repo *profileRepository) ResolveSellerApproval(ctx context.Context, decision repository.ApprovalDecision) error {
	return repo.resolve(ctx, &model.SellerProfileModel{}, decision, repository.ErrSellerProfileNotFound)
}

// SaveDeliveryProfile inserts the profile or overwrites the existing row for the account.
func (repo *profileRepository) SaveDeliveryProfile(ctx context.Context, profile *entity.DeliveryProfile) error {
	profileM := fromDeliveryProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"full_name", "phone", "address", "vehicle_type", "approval_status", "reviewed_by", "reviewed_at", "updated_at"}),
		}).
		Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save delivery profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindDeliveryProfile retrieves the delivery profile of an account.
func (repo *profileRepository) FindDeliveryProfile(ctx context.Context, accountID uuid.UUID) (*entity.DeliveryProfile, error) {
	var profileM model.DeliveryProfileModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery profile")
	}

	return toDeliveryProfileDomain(&profileM), nil
}

// ListDeliveryProfiles lists delivery profiles, oldest application first.
func (repo *profileRepository) ListDeliveryProfiles(ctx context.Context, approval entity.ApprovalStatus) ([]*entity.DeliveryProfile, error) {
	var profileModels []*model.DeliveryProfileModel

	query := repo.db.WithContext(ctx)
	if approval != "" {
		query = query.Where("approval_status = ?", string(approval))
	}

	if err := query.Order("created_at ASC").Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list delivery profiles")
	}

	profiles := make([]*entity.DeliveryProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toDeliveryProfileDomain(profileM))
	}

	return profiles, nil
}

// ResolveDeliveryApproval applies an admin decision with a compare-and-set on the stored status.
func (repo *profileRepository) ResolveDeliveryApproval(ctx context.Context, decision repository.ApprovalDecision) error {
	return repo.resolve(ctx, &model.DeliveryProfileModel{}, decision, repository.ErrDeliveryProfileNotFound)
}

func (repo *profileRepository) resolve(ctx context.Context, target any, decision repository.ApprovalDecision, notFound error) error {
	result := repo.db.WithContext(ctx).
		Model(target).
		Where("account_id = ? AND approval_status = ?", decision.AccountID, string(decision.From)).
		Updates(map[string]any{
			"approval_status": string(decision.To),
			"reviewed_by":     decision.ReviewedBy,
			"reviewed_at":     decision.ReviewedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to resolve approval")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).Model(target).Where("account_id = ?", decision.AccountID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check profile existence")
		}
		if count == 0 {
			return notFound
		}

		return repository.ErrApprovalConflict
	}

	return nil
}

// --- Mapper Functions ---

func toSellerProfileDomain(data *model.SellerProfileModel) *entity.SellerProfile {
	if data == nil {
		return nil
	}

	return &entity.SellerProfile{
		AccountID:    data.AccountID,
		BusinessName: data.BusinessName,
		Address:      data.Address,
		Phone:        data.Phone,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Approval:     entity.ApprovalStatus(data.ApprovalStatus),
		ReviewedBy:   data.ReviewedBy,
		ReviewedAt:   data.ReviewedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromSellerProfileDomain(data *entity.SellerProfile) *model.SellerProfileModel {
	if data == nil {
		return nil
	}

	return &model.SellerProfileModel{
		AccountID:      data.AccountID,
		BusinessName:   data.BusinessName,
		Address:        data.Address,
		Phone:          data.Phone,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		ApprovalStatus: string(data.Approval),
		ReviewedBy:     data.ReviewedBy,
		ReviewedAt:     data.ReviewedAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toDeliveryProfileDomain(data *model.DeliveryProfileModel) *entity.DeliveryProfile {
	if data == nil {
		return nil
	}

	return &entity.DeliveryProfile{
		AccountID:   data.AccountID,
		FullName:    data.FullName,
		Phone:       data.Phone,
		Address:     data.Address,
		VehicleType: data.VehicleType,
		Approval:    entity.ApprovalStatus(data.ApprovalStatus),
		ReviewedBy:  data.ReviewedBy,
		ReviewedAt:  data.ReviewedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromDeliveryProfileDomain(data *entity.DeliveryProfile) *model.DeliveryProfileModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryProfileModel{
		AccountID:      data.AccountID,
		FullName:       data.FullName,
		Phone:          data.Phone,
		Address:        data.Address,
		VehicleType:    data.VehicleType,
		ApprovalStatus: string(data.Approval),
		ReviewedBy:     data.ReviewedBy,
		ReviewedAt:     data.ReviewedAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
