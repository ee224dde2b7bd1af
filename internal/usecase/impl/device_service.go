package impl

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice is idempotent per (account, device id): a reinstall or token
// rotation refreshes the existing registration.
func (s *deviceService) RegisterDevice(ctx context.Context, accountID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.UpsertDevice(ctx, &entity.UserDevice{
		AccountID: accountID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
	})
	if err != nil {
		return nil, mapDeviceError(err, "failed to register device")
	}

	return device, nil
}

func (s *deviceService) UpdateFCMToken(ctx context.Context, accountID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if err := s.checkOwner(ctx, accountID, deviceID); err != nil {
		return err
	}

	return mapDeviceError(s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken), "failed to update FCM token")
}

// GetDevices lists the devices that still receive pushes.
func (s *deviceService) GetDevices(ctx context.Context, accountID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByAccount(ctx, accountID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find active devices by account")
	}

	return devices, nil
}

func (s *deviceService) DeactivateDevice(ctx context.Context, accountID, deviceID uuid.UUID) error {
	if err := s.checkOwner(ctx, accountID, deviceID); err != nil {
		return err
	}

	return mapDeviceError(s.deviceRepo.DeleteDevice(ctx, deviceID), "failed to delete device")
}

func (s *deviceService) checkOwner(ctx context.Context, accountID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return mapDeviceError(err, "failed to find device by ID")
	}
	if device.AccountID != accountID {
		return domainerrors.ErrForbidden.WrapMessage("device belongs to another account")
	}

	return nil
}

// mapDeviceError passes domain errors through and keeps nil as nil.
func mapDeviceError(err error, details string) error {
	var appErr domainerrors.AppError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDeviceNotFound):
		return domainerrors.ErrDeviceNotFound
	case errors.Is(err, repository.ErrAccountNotFound):
		return domainerrors.ErrAccountNotFound
	case errors.As(err, &appErr):
		return err
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
