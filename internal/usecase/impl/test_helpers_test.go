package impl

import (
	"io"
	"log/slog"

	"marketplace/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(autoProvision bool, adminPasswordHash string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			Provider:      config.AuthProviderLocal,
			AutoProvision: autoProvision,
			BcryptCost:    4,
		},
		Admin: &config.AdminConfig{
			PasswordHash: adminPasswordHash,
		},
	}
}
