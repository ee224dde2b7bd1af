// Package identity verifies bearer tokens issued by the identity provider.
package identity

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/infra/firebase"

	"firebase.google.com/go/v4/auth"
)

// tokenVerifier is the subset of the Firebase auth client used here.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type firebaseVerifier struct {
	client tokenVerifier
	logger *slog.Logger
}

// NewFirebaseVerifier creates a verifier backed by Firebase Authentication.
func NewFirebaseVerifier(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.IdentityVerifier, error) {
	app, err := firebase.NewApp(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &firebaseVerifier{client: client, logger: logger}, nil
}

func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, service.ErrInvalidToken
	}

	verified, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		v.logger.Debug("Firebase token rejected", slog.Any("error", err))

		return nil, errors.WithMessage(service.ErrInvalidToken, err.Error())
	}

	return &entity.Identity{
		UID:   verified.UID,
		Email: stringClaim(verified.Claims, "email"),
		Name:  stringClaim(verified.Claims, "name"),
	}, nil
}

func stringClaim(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}
