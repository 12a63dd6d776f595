// Package constants holds shared domain-level constants.
package constants

import "context"

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// ContextKey is the type for request-scoped values shared across layers.
type ContextKey string

// ContextKeyRequestID carries the inbound request ID for tracing.
const ContextKeyRequestID ContextKey = "requestID"

// RequestIDFromContext returns the request ID stored on the context, or an
// empty string when none is set.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return id
	}

	return ""
}
