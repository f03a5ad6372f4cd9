package service

import (
	"context"
	"time"
)

// ReauthEvent tells the host that an account session was rejected and a
// password is needed to log in again.
type ReauthEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Account    string    `json:"account"`
	BaseURL    string    `json:"base"`
	Level      string    `json:"level,omitempty"` // Refresh level that observed the rejection
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReauthRequired announces that an account needs re-authentication
	PublishReauthRequired(ctx context.Context, event *ReauthEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
