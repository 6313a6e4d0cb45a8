package service

import (
	"context"

	"mentorhub/internal/domain/entity"
)

// Account event types.
const (
	EventAccountRegistered = "account.registered"
	EventAccountUpdated    = "account.updated"
)

// AccountEvent represents an account lifecycle event for async consumers.
type AccountEvent struct {
	RequestID string      `json:"request_id,omitempty"` // For distributed tracing
	Type      string      `json:"type"`
	AccountID int64       `json:"account_id"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
}

// EventPublisher defines the interface for publishing events to a message queue.
// Publishing is best-effort: account operations never fail because an event
// could not be delivered.
type EventPublisher interface {
	// PublishAccountEvent publishes an account lifecycle event.
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
