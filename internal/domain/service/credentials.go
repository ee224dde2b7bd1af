package service

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid identity token")

// IdentityVerifier validates identity tokens issued by the external identity provider.
type IdentityVerifier interface {
	// VerifyIDToken checks signature, audience and expiry and returns the verified identity.
	VerifyIDToken(ctx context.Context, token string) (*entity.Identity, error)
}

// PasswordHasher guards the operator login. Only the hash is kept in config.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Matches reports whether password produces hash. An empty hash never matches.
	Matches(password, hash string) bool
}
