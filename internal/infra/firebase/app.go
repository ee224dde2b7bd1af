// Package firebase builds the Firebase app shared by identity verification and push messaging.
package firebase

import (
	"context"

	"marketplace/config"
	"marketplace/internal/errors"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp initializes a Firebase app. Without a credentials path the default
// application credentials are used.
func NewApp(ctx context.Context, cfg *config.FirebaseConfig) (*firebase.App, error) {
	if cfg == nil {
		return nil, errors.New("firebase configuration is missing")
	}

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}
