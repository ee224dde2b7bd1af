package identity

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
)

// NewVerifier selects the identity verifier configured by auth.provider.
func NewVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	switch cfg.Auth.Provider {
	case config.AuthProviderFirebase:
		return NewFirebaseVerifier(ctx, cfg.Firebase, logger)
	case config.AuthProviderLocal:
		logger.Warn("Using local identity verifier; do not enable in production")

		return NewLocalVerifier(cfg.Auth.LocalSecret)
	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Auth.Provider)
	}
}
