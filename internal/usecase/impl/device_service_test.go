package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	accountID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}
	stored := &entity.UserDevice{
		ID:        uuid.New(),
		AccountID: accountID,
		FCMToken:  "test-fcm-token",
		DeviceID:  "device-123",
		Platform:  "ios",
		IsActive:  true,
	}

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
			return d.AccountID == accountID && d.DeviceID == "device-123" &&
				d.FCMToken == "test-fcm-token" && d.IsActive
		})).
		Return(stored, nil)

	device, err := fx.service.RegisterDevice(ctx, accountID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, stored, device)
}

func TestDeviceService_RegisterDevice_Errors(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantCode string
	}{
		{name: "unknown account", repoErr: repository.ErrAccountNotFound, wantCode: "ACCOUNT_NOT_FOUND"},
		{name: "database failure", repoErr: errors.New("database error"), wantCode: "DATABASE_EXECUTE_FAILED"},
		{name: "validation passes through", repoErr: domainerrors.ErrValidationFailed, wantCode: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			ctx := context.Background()

			fx.deviceRepo.EXPECT().UpsertDevice(ctx, mock.Anything).Return(nil, tt.repoErr)

			device, err := fx.service.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{DeviceID: "device-123"})
			assert.Nil(t, device)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantCode, appErr.ErrorCode())
		})
	}
}

func TestDeviceService_UpdateFCMToken_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	accountID := uuid.New()
	deviceID := uuid.New()
	newToken := "new-fcm-token"

	existingDevice := &entity.UserDevice{
		ID:        deviceID,
		AccountID: accountID,
		FCMToken:  "old-token",
		DeviceID:  "device-123",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(existingDevice, nil)

	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, newToken).
		Return(nil)

	err := fx.service.UpdateFCMToken(ctx, accountID, deviceID, newToken)
	require.NoError(t, err)
}

func TestDeviceService_UpdateFCMToken_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.UpdateFCMToken(ctx, uuid.New(), deviceID, "new-fcm-token")
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestDeviceService_UpdateFCMToken_OtherAccount(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, AccountID: uuid.New()}, nil)

	err := fx.service.UpdateFCMToken(ctx, uuid.New(), deviceID, "new-fcm-token")
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestDeviceService_GetDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	accountID := uuid.New()
	expectedDevices := []*entity.UserDevice{
		{ID: uuid.New(), AccountID: accountID, IsActive: true},
		{ID: uuid.New(), AccountID: accountID, IsActive: true},
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByAccount(ctx, accountID).
		Return(expectedDevices, nil)

	devices, err := fx.service.GetDevices(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, expectedDevices, devices)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	accountID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, AccountID: accountID, IsActive: true}, nil)

	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(nil)

	err := fx.service.DeactivateDevice(ctx, accountID, deviceID)
	require.NoError(t, err)
}

func TestDeviceService_DeactivateDevice_OtherAccount(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, AccountID: uuid.New(), IsActive: true}, nil)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
