package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePubSubPublisher publishes order events to a Cloud Pub/Sub topic.
// Events of one order share an ordering key so the worker sees them in
// transition order.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher checks the topic exists before returning a publisher for it.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not available", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized", slog.String("topic", topic))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishOrderStatusChanged(ctx context.Context, event *entity.OrderStatusChangedEvent) error {
	msg, err := newOrderedMessage(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		// A failed publish pauses its ordering key until resumed.
		p.publisher.ResumePublish(msg.OrderingKey)

		return errors.Wrapf(err, "publish order %d event", event.OrderID)
	}

	p.logger.Debug("[GooglePubSub] Event published",
		slog.Int64("order_id", event.OrderID),
		slog.String("to", string(event.To)),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}

// newOrderedMessage encodes event keyed by its order.
func newOrderedMessage(event *entity.OrderStatusChangedEvent) (*pubsub.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: strconv.FormatInt(event.OrderID, 10),
	}, nil
}
