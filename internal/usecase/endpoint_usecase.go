// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// EndpointInfo represents endpoint information for registration
type EndpointInfo struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

// EndpointUsecase defines the interface for endpoint registry use cases
type EndpointUsecase interface {
	// RegisterEndpoint registers a device token or refreshes an existing registration
	RegisterEndpoint(ctx context.Context, userID uuid.UUID, info *EndpointInfo) (*entity.Endpoint, error)

	// DeregisterEndpoint removes the caller's registration for a token
	DeregisterEndpoint(ctx context.Context, userID uuid.UUID, token string) error

	// SetChatPreference enables or disables chat notifications on all of the
	// caller's endpoints
	SetChatPreference(ctx context.Context, userID uuid.UUID, enabled bool) error
}
