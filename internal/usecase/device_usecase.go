package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcmToken"`
	DeviceID string `json:"deviceId"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice upserts on (accountID, DeviceID) and reactivates the device.
	RegisterDevice(ctx context.Context, accountID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, accountID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// GetDevices retrieves all active devices for an account
	GetDevices(ctx context.Context, accountID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, accountID, deviceID uuid.UUID) error
}
