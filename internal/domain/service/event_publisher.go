package service

import (
	"context"

	"beacon/internal/domain/entity"
)

// DispatchEvent carries one notification intent to the worker fleet.
type DispatchEvent struct {
	RequestID string         `json:"request_id,omitempty"` // For distributed tracing
	EventID   string         `json:"event_id"`
	Intent    *entity.Intent `json:"intent"`
}

// EventPublisher defines the interface for publishing dispatch events to a
// message queue for asynchronous processing.
type EventPublisher interface {
	// PublishDispatchEvent publishes a dispatch event for async processing.
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
