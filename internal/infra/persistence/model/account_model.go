package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirebaseUID string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	Email       string    `gorm:"type:varchar(255)"`
	Name        string    `gorm:"type:varchar(100)"`
	Role        string    `gorm:"type:varchar(20);not null;index"`
	Status      string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	SellerProfile   *SellerProfileModel   `gorm:"foreignKey:AccountID"`
	DeliveryProfile *DeliveryProfileModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// BeforeCreate assigns a time-ordered UUID when none is set.
func (m *AccountModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		m.ID = id
	}

	return nil
}

// SellerProfileModel mirrors the 'seller_profiles' table. AccountID references accounts.id.
type SellerProfileModel struct {
	AccountID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessName   string    `gorm:"type:varchar(150);not null"`
	Address        string    `gorm:"type:text;not null"`
	Phone          string    `gorm:"type:varchar(32);not null"`
	Latitude       *float64
	Longitude      *float64
	ApprovalStatus string     `gorm:"type:varchar(20);not null;index"`
	ReviewedBy     *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerProfileModel) TableName() string {
	return "seller_profiles"
}

// DeliveryProfileModel mirrors the 'delivery_profiles' table. AccountID references accounts.id.
type DeliveryProfileModel struct {
	AccountID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName       string     `gorm:"type:varchar(150);not null"`
	Phone          string     `gorm:"type:varchar(32);not null"`
	Address        string     `gorm:"type:text;not null"`
	VehicleType    string     `gorm:"type:varchar(50);not null"`
	ApprovalStatus string     `gorm:"type:varchar(20);not null;index"`
	ReviewedBy     *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryProfileModel) TableName() string {
	return "delivery_profiles"
}
