package identity

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// localClaims mirrors the Firebase ID token fields the backend reads.
type localClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// LocalVerifier verifies HS256 tokens for development and tests.
type LocalVerifier struct {
	secret []byte
}

// NewLocalVerifier creates a verifier for tokens signed with secret.
func NewLocalVerifier(secret string) (*LocalVerifier, error) {
	if secret == "" {
		return nil, errors.New("local token secret must be provided")
	}

	return &LocalVerifier{secret: []byte(secret)}, nil
}

// IssueToken signs a token for identity that expires after ttl.
func (v *LocalVerifier) IssueToken(identity *entity.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := localClaims{
		Email: identity.Email,
		Name:  identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (v *LocalVerifier) VerifyIDToken(_ context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, service.ErrInvalidToken
	}

	claims := &localClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return v.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, service.ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, service.ErrInvalidToken
	}

	return &entity.Identity{UID: claims.Subject, Email: claims.Email, Name: claims.Name}, nil
}
