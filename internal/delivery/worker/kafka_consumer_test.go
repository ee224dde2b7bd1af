package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/delivery/worker/handler"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/infra/pubsub"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestConsumerHandler(t *testing.T) (*consumerGroupHandler, *mockUC.MockOrderNotificationUsecase) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notificationUC := mockUC.NewMockOrderNotificationUsecase(t)

	return &consumerGroupHandler{
		pushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:         &config.Config{},
			Logger:         logger,
			NotificationUC: notificationUC,
		}),
		logger:     logger,
		retryDelay: time.Millisecond,
	}, notificationUC
}

func record(t *testing.T, event *entity.OrderStatusChangedEvent) *sarama.ConsumerMessage {
	value, err := json.Marshal(event)
	require.NoError(t, err)

	return &sarama.ConsumerMessage{
		Topic: pubsub.DefaultKafkaTopic,
		Value: value,
		Headers: []*sarama.RecordHeader{
			{Key: []byte(pubsub.AttrRequestID), Value: []byte("req-from-header")},
		},
	}
}

func TestHandleMessage_RetriesRetryableFailures(t *testing.T) {
	h, notificationUC := createTestConsumerHandler(t)
	event := &entity.OrderStatusChangedEvent{Type: entity.EventTypeOrderStatusChanged, OrderID: 42, To: entity.OrderAccepted}

	notificationUC.EXPECT().HandleOrderStatusChanged(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUpstreamUnavailable).Times(2)
	notificationUC.EXPECT().HandleOrderStatusChanged(mock.Anything, mock.Anything).
		Return(&usecase.DeliveryResult{SuccessCount: 1}, nil).Once()

	assert.True(t, h.handleMessage(context.Background(), record(t, event)))
}

func TestHandleMessage_GivesUpAfterMaxAttempts(t *testing.T) {
	h, notificationUC := createTestConsumerHandler(t)
	event := &entity.OrderStatusChangedEvent{Type: entity.EventTypeOrderStatusChanged, OrderID: 7, To: entity.OrderDelivered}

	notificationUC.EXPECT().HandleOrderStatusChanged(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUpstreamUnavailable).Times(maxProcessAttempts)

	assert.True(t, h.handleMessage(context.Background(), record(t, event)))
}

func TestHandleMessage_DoesNotRetryClientErrors(t *testing.T) {
	h, notificationUC := createTestConsumerHandler(t)
	event := &entity.OrderStatusChangedEvent{Type: entity.EventTypeOrderStatusChanged, OrderID: 7, To: entity.OrderDelivered}

	notificationUC.EXPECT().HandleOrderStatusChanged(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrOrderNotFound).Once()

	assert.True(t, h.handleMessage(context.Background(), record(t, event)))
}

func TestHandleMessage_DropsUndecodableRecord(t *testing.T) {
	h, _ := createTestConsumerHandler(t)

	assert.True(t, h.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte("{")}))
}

// fakeSession records marked offsets.
type fakeSession struct {
	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Claims() map[string][]int32 { return nil }
func (s *fakeSession) MemberID() string { return "member-1" }
func (s *fakeSession) GenerationID() int32 { return 1 }
func (s *fakeSession) MarkOffset(string, int32, int64, string) {}
func (s *fakeSession) Commit() {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) Context() context.Context { return s.ctx }
func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) { s.marked = append(s.marked, msg.Offset) }

type fakeClaim struct {
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Topic() string { return pubsub.DefaultKafkaTopic }
func (c *fakeClaim) Partition() int32 { return 0 }
func (c *fakeClaim) InitialOffset() int64 { return 0 }
func (c *fakeClaim) HighWaterMarkOffset() int64 { return 0 }
func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func TestConsumeClaim_MarksProcessedRecords(t *testing.T) {
	h, notificationUC := createTestConsumerHandler(t)
	event := &entity.OrderStatusChangedEvent{Type: entity.EventTypeOrderStatusChanged, OrderID: 3, To: entity.OrderPreparing}

	notificationUC.EXPECT().HandleOrderStatusChanged(mock.Anything, mock.Anything).
		Return(&usecase.DeliveryResult{SuccessCount: 1}, nil).Once()

	msg := record(t, event)
	msg.Offset = 11
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 1)}
	claim.messages <- msg
	close(claim.messages)
	session := &fakeSession{ctx: context.Background()}

	require.NoError(t, h.ConsumeClaim(session, claim))
	assert.Equal(t, []int64{11}, session.marked)
}

func TestConsumeClaim_ShutdownDuringBackoffLeavesRecordUncommitted(t *testing.T) {
	h, notificationUC := createTestConsumerHandler(t)
	h.retryDelay = time.Hour
	event := &entity.OrderStatusChangedEvent{Type: entity.EventTypeOrderStatusChanged, OrderID: 5, To: entity.OrderAccepted}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	notificationUC.EXPECT().HandleOrderStatusChanged(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.OrderStatusChangedEvent) (*usecase.DeliveryResult, error) {
			// Let the first attempt fail, then shut down while the consumer waits to retry.
			go func() {
				time.Sleep(10 * time.Millisecond)
				cancel()
			}()

			return nil, domainerrors.ErrUpstreamUnavailable
		}).Once()

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 1)}
	claim.messages <- record(t, event)
	session := &fakeSession{ctx: ctx}

	require.NoError(t, h.ConsumeClaim(session, claim))
	assert.Empty(t, session.marked)
}

func TestHandleMessage_CancelledDuringProcessing(t *testing.T) {
	h, notificationUC := createTestConsumerHandler(t)
	event := &entity.OrderStatusChangedEvent{Type: entity.EventTypeOrderStatusChanged, OrderID: 6, To: entity.OrderAccepted}

	ctx, cancel := context.WithCancel(context.Background())
	notificationUC.EXPECT().HandleOrderStatusChanged(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.OrderStatusChangedEvent) (*usecase.DeliveryResult, error) {
			cancel()

			return nil, domainerrors.ErrUpstreamUnavailable
		}).Once()

	assert.False(t, h.handleMessage(ctx, record(t, event)))
}

func TestHeaderValue(t *testing.T) {
	headers := []*sarama.RecordHeader{
		nil,
		{Key: []byte("event_type"), Value: []byte(entity.EventTypeOrderStatusChanged)},
		{Key: []byte("request_id"), Value: []byte("abc")},
	}

	assert.Equal(t, "abc", headerValue(headers, "request_id"))
	assert.Empty(t, headerValue(headers, "missing"))
}
