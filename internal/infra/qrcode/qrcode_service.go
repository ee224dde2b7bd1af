package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const storefrontType = "storefront"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	SellerID string `json:"seller_id"`
	Type     string `json:"type"`
	URL      string `json:"url,omitempty"` // Storefront link for generic scanners
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateStorefrontQR generates a PNG QR code for a seller's storefront
func (s *qrcodeService) GenerateStorefrontQR(sellerID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		SellerID: sellerID.String(),
		Type:     storefrontType,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/products?sellerId=" + url.QueryEscape(sellerID.String())
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseStorefrontQR parses QR code data and returns the seller ID
func (s *qrcodeService) ParseStorefrontQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != storefrontType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	sellerID, err := uuid.Parse(data.SellerID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse seller ID")
	}

	return sellerID, nil
}
