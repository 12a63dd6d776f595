// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrEndpointNotFound is returned when an endpoint lookup misses.
var ErrEndpointNotFound = errors.New("endpoint not found")

// EndpointRepository manages the registry of push delivery endpoints.
// The token is the identity key: Upsert must never create a second row
// for an existing token.
type EndpointRepository interface {
	// Upsert creates the endpoint, or updates owner, platform and updated_at
	// when the token is already registered. Idempotent on identical calls.
	Upsert(ctx context.Context, endpoint *entity.Endpoint) error

	// FindByToken retrieves a single endpoint, ErrEndpointNotFound on a miss.
	FindByToken(ctx context.Context, token string) (*entity.Endpoint, error)

	// FindAll retrieves every registered endpoint.
	FindAll(ctx context.Context) ([]*entity.Endpoint, error)

	// FindAllExcept retrieves every endpoint not owned by the given user.
	FindAllExcept(ctx context.Context, excludeUserID uuid.UUID) ([]*entity.Endpoint, error)

	// FindByUsers retrieves the endpoints owned by any of the given users.
	FindByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Endpoint, error)

	// FindChatEnabledExcept retrieves every chat-enabled endpoint not owned
	// by the given user.
	FindChatEnabledExcept(ctx context.Context, excludeUserID uuid.UUID) ([]*entity.Endpoint, error)

	// SetChatPreference updates the chat flag on every endpoint of the user.
	SetChatPreference(ctx context.Context, userID uuid.UUID, enabled bool) error

	// Remove deletes the endpoint for the token. Removing an absent token
	// is a no-op, not an error.
	Remove(ctx context.Context, token string) error

	// RemoveStale deletes endpoints that have not been re-registered since
	// the given time and returns how many were removed.
	RemoveStale(ctx context.Context, before time.Time) (int64, error)
}
