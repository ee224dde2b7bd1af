package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents an account's device registered for push notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"accountId"`
	FCMToken  string    `json:"fcmToken"`
	DeviceID  string    `json:"deviceId"` // Unique device identifier from the client.
	Platform  string    `json:"platform"` // ios, android or web.
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
