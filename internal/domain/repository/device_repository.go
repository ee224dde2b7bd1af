package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when no live device matches.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores the push targets of each account.
type DeviceRepository interface {
	// UpsertDevice registers device under its account. When the account already
	// has that device id the stored row gets the new token and is reactivated.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) (*entity.UserDevice, error)

	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)
	FindActiveDevicesByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.UserDevice, error)
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateDevicesByTokens is called with tokens FCM reported as stale.
	DeactivateDevicesByTokens(ctx context.Context, tokens []string) error

	// DeleteDevice soft deletes the row.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
