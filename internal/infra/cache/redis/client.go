// Package redis provides the Redis client and Redis-backed repositories.
package redis

import (
	"context"
	"log/slog"
	"strconv"

	"marketplace/config"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the shared Redis client. It returns nil when no Redis section is configured.
func New(params Params) (*goredis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Host == "" {
		return nil, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Host + ":" + strconv.Itoa(cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to connect to Redis")
			}

			params.Logger.Info("Redis connected", slog.String("addr", client.Options().Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
