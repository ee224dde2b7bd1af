package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"
)

const (
	AttrEventType = "event_type"
	AttrOrderID   = "order_id"
	AttrRequestID = "request_id"
)

// PushMessage represents the structure of a Pub/Sub push message.
// Google Pub/Sub uses this format when pushing to HTTP endpoints; the local
// publisher produces the same shape so the worker handles both.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes builds the routing and tracing attributes for an event.
func eventAttributes(event *entity.OrderStatusChangedEvent) map[string]string {
	attributes := map[string]string{
		AttrEventType: event.Type,
		AttrOrderID:   strconv.FormatInt(event.OrderID, 10),
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}

// NewPushMessage wraps an event in the push envelope.
func NewPushMessage(event *entity.OrderStatusChangedEvent, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.Type + ":" + strconv.FormatInt(event.OrderID, 10) + ":" + string(event.To)
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeEvent extracts the order event from a push envelope.
func (m *PushMessage) DecodeEvent() (*entity.OrderStatusChangedEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base64 payload")
	}

	return DecodeEvent(data)
}

// DecodeEvent parses a JSON encoded order event.
func DecodeEvent(data []byte) (*entity.OrderStatusChangedEvent, error) {
	var event entity.OrderStatusChangedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "invalid event payload")
	}

	if event.Type == "" {
		event.Type = entity.EventTypeOrderStatusChanged
	}

	return &event, nil
}
