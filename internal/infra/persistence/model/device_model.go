package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// It represents an account's device registered for push notifications.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_devices_account_device,where:deleted_at IS NULL"`
	FCMToken  string    `gorm:"type:varchar(255);not null;index"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_account_device,where:deleted_at IS NULL"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}

// BeforeCreate assigns a time-ordered UUID when none is set.
func (m *UserDeviceModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		m.ID = id
	}

	return nil
}

// All returns every model managed by the persistence layer, in dependency order.
func All() []any {
	return []any{
		&AccountModel{},
		&SellerProfileModel{},
		&DeliveryProfileModel{},
		&ProductModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&OrderStatusHistoryModel{},
		&UserDeviceModel{},
	}
}
