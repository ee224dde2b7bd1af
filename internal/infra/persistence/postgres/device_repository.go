package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// UpsertDevice targets the partial unique index on (account_id, device_id),
// so a soft deleted registration never blocks a new one.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.UserDevice) (*entity.UserDevice, error) {
	row := fromDeviceDomain(device)
	row.IsActive = true

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:     []clause.Column{{Name: "account_id"}, {Name: "device_id"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "deleted_at IS NULL"}}},
			DoUpdates:   clause.AssignmentColumns([]string{"fcm_token", "platform", "is_active", "updated_at"}),
		}).
		Create(row).Error
	switch {
	case err == nil:
	case isForeignKeyConstraintViolation(err):
		return nil, repository.ErrAccountNotFound
	case isNotNullConstraintViolation(err):
		return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
	default:
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	// On conflict the generated id was discarded, so read the surviving row back.
	var stored model.UserDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("account_id = ? AND device_id = ?", device.AccountID, device.DeviceID).
		First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload device")
	}

	return toDeviceDomain(&stored), nil
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var row model.UserDeviceModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrDeviceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&row), nil
}

func (repo *deviceRepository) FindActiveDevicesByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.UserDevice, error) {
	var rows []*model.UserDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("account_id = ? AND is_active = ?", accountID, true).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by account")
	}

	devices := make([]*entity.UserDevice, len(rows))
	for i, row := range rows {
		devices[i] = toDeviceDomain(row)
	}

	return devices, nil
}

// UpdateFCMToken also reactivates the device, since a fresh token is live.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{"fcm_token": fcmToken, "is_active": true})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update FCM token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) DeactivateDevicesByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Update("is_active", false).Error

	return errors.Wrap(err, "failed to deactivate devices")
}

func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserDeviceModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func toDeviceDomain(row *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        row.ID,
		AccountID: row.AccountID,
		FCMToken:  row.FCMToken,
		DeviceID:  row.DeviceID,
		Platform:  row.Platform,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func fromDeviceDomain(device *entity.UserDevice) *model.UserDeviceModel {
	return &model.UserDeviceModel{
		ID:        device.ID,
		AccountID: device.AccountID,
		FCMToken:  device.FCMToken,
		DeviceID:  device.DeviceID,
		Platform:  device.Platform,
		IsActive:  device.IsActive,
		CreatedAt: device.CreatedAt,
		UpdatedAt: device.UpdatedAt,
	}
}
