// Package service defines interfaces for external collaborators of the domain.
package service

import (
	"context"

	"beacon/internal/domain/entity"
)

// FailureKind classifies a failed delivery attempt.
type FailureKind string

const (
	// FailureNone marks a successful delivery.
	FailureNone FailureKind = ""
	// FailureTokenInvalid means the gateway reported the token as
	// unregistered or malformed. The endpoint is permanently unreachable
	// and gets pruned.
	FailureTokenInvalid FailureKind = "token_invalid"
	// FailureTransient covers rate limits, network errors, timeouts and
	// unknown gateway errors. Never triggers pruning.
	FailureTransient FailureKind = "transient"
	// FailureServiceUnavailable means the gateway itself is unreachable or
	// unconfigured. Not evidence that any token is invalid; never prunes.
	FailureServiceUnavailable FailureKind = "service_unavailable"
)

// DeliveryOutcome is the per-endpoint result of one send attempt.
type DeliveryOutcome struct {
	Token   string
	Success bool
	Failure FailureKind
}

// DeliveryClient sends one notification to one endpoint via the external
// push gateway. Send never returns an error and never panics past its own
// boundary: every call yields an outcome, with internal failures classified
// as transient.
type DeliveryClient interface {
	Send(ctx context.Context, endpoint *entity.Endpoint, title, body string, data map[string]string) DeliveryOutcome
}
