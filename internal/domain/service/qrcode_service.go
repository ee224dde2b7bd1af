package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateStorefrontQR generates a QR code linking to a seller's storefront
	GenerateStorefrontQR(sellerID uuid.UUID) ([]byte, error)

	// ParseStorefrontQR parses QR code data and returns the seller ID
	ParseStorefrontQR(qrData string) (uuid.UUID, error)
}
