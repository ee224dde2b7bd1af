package main

import (
	"context"
	"log/slog"
	"os"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/worker"
	"marketplace/internal/delivery/worker/handler"
	"marketplace/internal/domain/constants"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/notification"
	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/usecase/impl"

	"go.uber.org/fx"
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
		injectHandler(),
		injectDelivery(),
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewFCMSender,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOrderNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				newConsumers,
				fx.ResultTags(`group:"deliveries,flatten"`),
			),
		),
	)
}

// newConsumers joins the Kafka consumer group only for the kafka provider;
// the other providers deliver through the push endpoint.
func newConsumers(params worker.KafkaConsumerParams) ([]delivery.Delivery, error) {
	if params.Cfg.PubSub.Provider != constants.PubSubProviderKafka {
		return nil, nil
	}

	consumer, err := worker.NewKafkaConsumer(params)
	if err != nil {
		return nil, err
	}

	return []delivery.Delivery{consumer}, nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
