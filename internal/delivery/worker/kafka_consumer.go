package worker

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/worker/handler"
	"marketplace/internal/infra/pubsub"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultConsumerGroup = "marketplace-notifier"
	maxProcessAttempts   = 3
	initialRetryDelay    = time.Second
)

// KafkaConsumerParams holds dependencies for the kafka consumer
type KafkaConsumerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

type kafkaConsumer struct {
	group   sarama.ConsumerGroup
	topics  []string
	handler *consumerGroupHandler
	logger  *slog.Logger
}

type consumerGroupHandler struct {
	pushHandler *handler.PushHandler
	logger      *slog.Logger
	retryDelay  time.Duration
}

// NewKafkaConsumer joins the order event consumer group
func NewKafkaConsumer(params KafkaConsumerParams) (delivery.Delivery, error) {
	kafkaCfg := params.Cfg.PubSub.Kafka
	if kafkaCfg == nil || len(kafkaCfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required for kafka provider")
	}

	groupID := kafkaCfg.GroupID
	if groupID == "" {
		groupID = defaultConsumerGroup
	}
	topic := kafkaCfg.Topic
	if topic == "" {
		topic = pubsub.DefaultKafkaTopic
	}

	group, err := sarama.NewConsumerGroup(kafkaCfg.Brokers, groupID, pubsub.NewKafkaSaramaConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka consumer group")
	}

	consumer := &kafkaConsumer{
		group:  group,
		topics: []string{topic},
		handler: &consumerGroupHandler{
			pushHandler: params.PushHandler,
			logger:      params.Logger,
			retryDelay:  initialRetryDelay,
		},
		logger: params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing Kafka consumer group")

			return errors.WithStack(group.Close())
		},
	})

	return consumer, nil
}

// Serve consumes until ctx is cancelled or the group is closed
func (k *kafkaConsumer) Serve(ctx context.Context) error {
	k.logger.Info("Starting Kafka consumer", slog.Any("topics", k.topics))

	for {
		if err := k.group.Consume(ctx, k.topics, k.handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}

			return errors.WithStack(err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error {
	h.logger.Info("Kafka consumer group session setup")

	return nil
}

func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	h.logger.Info("Kafka consumer group session cleanup")

	return nil
}

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if !h.handleMessage(session.Context(), message) {
				// Interrupted by shutdown or rebalance; the next owner redelivers it.
				return nil
			}
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

// handleMessage processes one record, retrying retryable failures with
// exponential backoff. It returns false only when ctx ended first, in which
// case the record must not be committed.
func (h *consumerGroupHandler) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) bool {
	logger := h.logger.With(
		slog.String("topic", message.Topic),
		slog.Int("partition", int(message.Partition)),
		slog.Int64("offset", message.Offset),
	)

	event, err := pubsub.DecodeEvent(message.Value)
	if err != nil {
		logger.Error("[Worker] Dropping undecodable Kafka record", slog.Any("error", err))

		return true
	}

	requestID := headerValue(message.Headers, pubsub.AttrRequestID)
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	delay := h.retryDelay
	for attempt := 1; attempt <= maxProcessAttempts; attempt++ {
		err = h.pushHandler.Process(ctx, event, requestID)
		if err == nil || !handler.IsRetryable(err) {
			return true
		}
		if ctx.Err() != nil {
			return false
		}
		if attempt == maxProcessAttempts {
			break
		}

		select {
		case <-time.After(delay):
			delay *= 2
		case <-ctx.Done():
			logger.Warn("[Worker] Order event interrupted, leaving it uncommitted", slog.Int64("order_id", event.OrderID))

			return false
		}
	}

	logger.Error("[Worker] Giving up on order event",
		slog.Int64("order_id", event.OrderID),
		slog.Int("attempts", maxProcessAttempts),
		slog.Any("error", err),
	)

	return true
}

func headerValue(headers []*sarama.RecordHeader, key string) string {
	for _, header := range headers {
		if header != nil && string(header.Key) == key {
			return string(header.Value)
		}
	}

	return ""
}
