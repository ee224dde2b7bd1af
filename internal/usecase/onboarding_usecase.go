package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// SellerApplication is the data submitted by a prospective seller.
type SellerApplication struct {
	BusinessName string
	Address      string
	Phone        string
	Latitude     *float64
	Longitude    *float64
}

// DeliveryApplication is the data submitted by a prospective courier.
type DeliveryApplication struct {
	FullName    string
	Phone       string
	Address     string
	VehicleType string
}

// OnboardingUsecase covers seller and delivery applications and their review.
type OnboardingUsecase interface {
	// ApplySeller submits a seller application and switches the account to the seller role.
	// Only first applications and re-applications after a rejection are accepted.
	ApplySeller(ctx context.Context, principal *entity.Principal, application *SellerApplication) (*entity.SellerProfile, error)
	GetSellerProfile(ctx context.Context, accountID uuid.UUID) (*entity.SellerProfile, error)
	// StorefrontQR renders the PNG QR code of an approved seller's storefront.
	StorefrontQR(ctx context.Context, accountID uuid.UUID) ([]byte, error)

	// RegisterDelivery submits a courier application and switches the account to the delivery role.
	RegisterDelivery(ctx context.Context, principal *entity.Principal, application *DeliveryApplication) (*entity.DeliveryProfile, error)
	// DeliveryLogin returns the courier profile if the application was approved.
	DeliveryLogin(ctx context.Context, accountID uuid.UUID) (*entity.DeliveryProfile, error)

	ListSellerApplications(ctx context.Context, status entity.ApprovalStatus) ([]*entity.SellerProfile, error)
	ResolveSellerApplication(ctx context.Context, reviewer *entity.Principal, sellerID uuid.UUID, status entity.ApprovalStatus) (*entity.SellerProfile, error)

	ListDeliveryApplications(ctx context.Context, status entity.ApprovalStatus) ([]*entity.DeliveryProfile, error)
	ResolveDeliveryApplication(ctx context.Context, reviewer *entity.Principal, courierID uuid.UUID, status entity.ApprovalStatus) (*entity.DeliveryProfile, error)
}
