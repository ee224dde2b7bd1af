package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountStatus is the soft status used instead of deleting accounts.
type AccountStatus string

const (
	AccountActive    AccountStatus = "active"
	AccountSuspended AccountStatus = "suspended"
)

// IsValid checks if the status is one of the known values.
func (s AccountStatus) IsValid() bool {
	return s == AccountActive || s == AccountSuspended
}

// Account is the application-side record linked to an external identity.
type Account struct {
	ID              uuid.UUID        `json:"id"`                        // Application account identifier.
	FirebaseUID     string           `json:"firebaseUid"`               // Identity provider subject. Unique.
	Email           string           `json:"email"`                     // Contact email taken from the identity token.
	Name            string           `json:"name"`                      // Display name.
	Role            Role             `json:"role"`                      // Exactly one role per account.
	Status          AccountStatus    `json:"status"`                    // Accounts are suspended, never deleted.
	SellerProfile   *SellerProfile   `json:"sellerProfile,omitempty"`   // Nil unless the account applied as a seller.
	DeliveryProfile *DeliveryProfile `json:"deliveryProfile,omitempty"` // Nil unless the account applied as a courier.
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// IsSuspended reports whether the account has been suspended by an admin.
func (a *Account) IsSuspended() bool {
	return a.Status == AccountSuspended
}

// Approval returns the approval status relevant to the account's role.
// Roles without an approval gate return an empty status. Seller and
// delivery accounts that have no profile yet count as pending.
func (a *Account) Approval() ApprovalStatus {
	switch a.Role {
	case RoleSeller:
		if a.SellerProfile == nil {
			return ApprovalPending
		}

		return a.SellerProfile.Approval
	case RoleDelivery:
		if a.DeliveryProfile == nil {
			return ApprovalPending
		}

		return a.DeliveryProfile.Approval
	default:
		return ""
	}
}

// SellerProfile holds the onboarding application of a seller.
type SellerProfile struct {
	AccountID    uuid.UUID      `json:"accountId"`
	BusinessName string         `json:"businessName"`
	Address      string         `json:"address"`
	Phone        string         `json:"phone"`
	Latitude     *float64       `json:"latitude,omitempty"`
	Longitude    *float64       `json:"longitude,omitempty"`
	Approval     ApprovalStatus `json:"approvalStatus"`
	ReviewedBy   *uuid.UUID     `json:"reviewedBy,omitempty"`
	ReviewedAt   *time.Time     `json:"reviewedAt,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// HasLocation reports whether the seller registered coordinates.
func (p *SellerProfile) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// DeliveryProfile holds the onboarding application of a courier.
type DeliveryProfile struct {
	AccountID   uuid.UUID      `json:"accountId"`
	FullName    string         `json:"fullName"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	VehicleType string         `json:"vehicleType"`
	Approval    ApprovalStatus `json:"approvalStatus"`
	ReviewedBy  *uuid.UUID     `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time     `json:"reviewedAt,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
