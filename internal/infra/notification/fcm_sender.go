// Package notification sends push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"

	"marketplace/config"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/infra/firebase"

	"firebase.google.com/go/v4/messaging"
)

// multicaster is the part of *messaging.Client the sender needs.
type multicaster interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type fcmSender struct {
	client multicaster
}

// NewFCMSender builds a PushSender on the project's Firebase app.
func NewFCMSender(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	app, err := firebase.NewApp(ctx, cfg.Firebase)
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmSender{client: client}, nil
}

func (s *fcmSender) Send(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushReport, error) {
	if len(tokens) == 0 {
		return &service.PushReport{}, nil
	}
	if len(tokens) > service.MaxPushTokens {
		return nil, errors.Errorf("push batch of %d tokens exceeds %d", len(tokens), service.MaxPushTokens)
	}

	resp, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	report := &service.PushReport{
		Sent:   resp.SuccessCount,
		Failed: resp.FailureCount,
	}
	for i, r := range resp.Responses {
		if r.Error != nil && isStaleToken(r.Error) {
			report.StaleTokens = append(report.StaleTokens, tokens[i])
		}
	}

	return report, nil
}

// isStaleToken reports whether FCM rejected the token itself rather than the send.
func isStaleToken(err error) bool {
	return messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err)
}
