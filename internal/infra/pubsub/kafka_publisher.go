package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/IBM/sarama"
)

// DefaultKafkaTopic is used when pubsub.kafka.topic is empty.
const DefaultKafkaTopic = "order.status_changed"

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaSaramaConfig returns the producer/consumer settings shared by the API and the worker.
func NewKafkaSaramaConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Version = sarama.V2_6_0_0

	return cfg
}

// NewKafkaPublisher creates a publisher backed by a sarama sync producer.
func NewKafkaPublisher(cfg *config.KafkaConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required for kafka provider")
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, NewKafkaSaramaConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka producer")
	}

	return newKafkaPublisher(producer, cfg.Topic, logger), nil
}

func newKafkaPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *kafkaPublisher {
	if topic == "" {
		topic = DefaultKafkaTopic
	}

	return &kafkaPublisher{producer: producer, topic: topic, logger: logger}
}

// PublishOrderStatusChanged keys messages by order id so one order stays on one partition.
func (p *kafkaPublisher) PublishOrderStatusChanged(_ context.Context, event *entity.OrderStatusChangedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := make([]sarama.RecordHeader, 0, 3)
	for key, value := range eventAttributes(event) {
		headers = append(headers, sarama.RecordHeader{Key: []byte(key), Value: []byte(value)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value:   sarama.ByteEncoder(data),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return errors.Wrap(err, "failed to send message to kafka")
	}

	p.logger.Info("[Kafka] Event published",
		slog.String("topic", p.topic),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
		slog.Int64("order_id", event.OrderID),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.producer.Close())
}
