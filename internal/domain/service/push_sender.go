package service

import "context"

// MaxPushTokens is the most device tokens a single Send accepts.
const MaxPushTokens = 500

// PushMessage is what a device shows, plus the data payload the app reads.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushReport is the outcome of one multicast send.
type PushReport struct {
	Sent   int
	Failed int
	// StaleTokens were rejected by the provider and should be deactivated.
	StaleTokens []string
}

// PushSender delivers one message to a batch of device tokens.
type PushSender interface {
	Send(ctx context.Context, tokens []string, msg PushMessage) (*PushReport, error)
}
