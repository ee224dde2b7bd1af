package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	localSubscription = "projects/local/subscriptions/order-events-sub"

	// Pub/Sub keeps redelivering a push the endpoint answers with 5xx.
	// Locally a few attempts are enough to ride out a worker restart.
	localPushAttempts = 3
	localPushBackoff  = 200 * time.Millisecond
)

// localHTTPPublisher posts push envelopes straight to the worker so
// development runs without a Pub/Sub emulator.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	backoff    time.Duration
	logger     *slog.Logger
}

// NewLocalHTTPPublisher creates a publisher that pushes to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		backoff:    localPushBackoff,
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishOrderStatusChanged(ctx context.Context, event *entity.OrderStatusChangedEvent) error {
	envelope, err := NewPushMessage(event, localSubscription)
	if err != nil {
		return err
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	logger := p.logger.With(
		slog.Int64("order_id", event.OrderID),
		slog.String("to", string(event.To)),
	)

	var lastErr error
	for attempt := 1; attempt <= localPushAttempts; attempt++ {
		var retry bool
		retry, lastErr = p.push(ctx, body, event.RequestID)
		if lastErr == nil {
			logger.Debug("[LocalPubSub] Event pushed", slog.Int("attempt", attempt))

			return nil
		}
		if !retry || attempt == localPushAttempts {
			break
		}

		logger.Warn("[LocalPubSub] Push failed, retrying", slog.Int("attempt", attempt), slog.Any("error", lastErr))
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.backoff * time.Duration(attempt)):
		}
	}

	return lastErr
}

// push sends one envelope and reports whether a failure is worth retrying.
func (p *localHTTPPublisher) push(ctx context.Context, body []byte, requestID string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return true, errors.Wrap(err, "push to local worker")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return true, errors.Errorf("local worker answered %d", resp.StatusCode)
	case resp.StatusCode >= http.StatusMultipleChoices:
		return false, errors.Errorf("local worker rejected event with %d", resp.StatusCode)
	}

	return false, nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
