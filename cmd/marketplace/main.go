package main

import (
	"context"
	"log/slog"
	"os"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/api"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/delivery/ws"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/infra/auth"
	"marketplace/internal/infra/cache/redis"
	"marketplace/internal/infra/identity"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/infra/pubsub"
	"marketplace/internal/infra/qrcode"
	"marketplace/internal/usecase/impl"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		redis.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewProfileRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
			newCartRepository,
		),
	)
}

// newCartRepository picks the cart backend from configuration
func newCartRepository(cfg *config.Config, db *gorm.DB, client *goredis.Client) (repository.CartRepository, error) {
	if cfg.Cart.Backend != config.CartBackendRedis {
		return postgres.NewCartRepository(db), nil
	}
	if client == nil {
		return nil, errors.New("cart backend is redis but no redis is configured")
	}

	return redis.NewCartRepository(client, cfg.Redis.KeyPrefix, cfg.Cart.TTL), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			identity.NewVerifier,
			auth.NewBcryptHasher,
			newQRCodeService,
			pubsub.NewEventPublisher,
			ws.NewHub,
			newOrderBroadcaster,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// newOrderBroadcaster exposes the WebSocket hub to the order service
func newOrderBroadcaster(hub *ws.Hub) service.OrderBroadcaster {
	return hub
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewOnboardingService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSellerHandler,
			handler.NewDeliveryHandler,
			handler.NewAdminHandler,
			handler.NewProductHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewDeviceHandler,
			ws.NewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
