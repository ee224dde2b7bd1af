package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrSellerProfileNotFound   = errors.New("seller profile not found")
	ErrDeliveryProfileNotFound = errors.New("delivery profile not found")
	// ErrApprovalConflict is returned when the stored approval no longer matches the expected one.
	ErrApprovalConflict = errors.New("approval status changed concurrently")
)

// ApprovalDecision moves a profile from one approval status to another.
type ApprovalDecision struct {
	AccountID  uuid.UUID
	From       entity.ApprovalStatus
	To         entity.ApprovalStatus
	ReviewedBy uuid.UUID
	ReviewedAt time.Time
}

// ProfileRepository stores seller and delivery onboarding profiles.
type ProfileRepository interface {
	// SaveSellerProfile creates the profile or overwrites an existing one.
	SaveSellerProfile(ctx context.Context, profile *entity.SellerProfile) error
	FindSellerProfile(ctx context.Context, accountID uuid.UUID) (*entity.SellerProfile, error)
	// ListSellerProfiles lists profiles, optionally filtered by approval status.
	ListSellerProfiles(ctx context.Context, approval entity.ApprovalStatus) ([]*entity.SellerProfile, error)
	// ResolveSellerApproval applies the decision only if the stored status equals decision.From.
	ResolveSellerApproval(ctx context.Context, decision ApprovalDecision) error

	SaveDeliveryProfile(ctx context.Context, profile *entity.DeliveryProfile) error
	FindDeliveryProfile(ctx context.Context, accountID uuid.UUID) (*entity.DeliveryProfile, error)
	ListDeliveryProfiles(ctx context.Context, approval entity.ApprovalStatus) ([]*entity.DeliveryProfile, error)
	ResolveDeliveryApproval(ctx context.Context, decision ApprovalDecision) error
}
