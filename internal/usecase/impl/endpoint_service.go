// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrInvalidPlatform is returned when the platform is not a supported value
	ErrInvalidPlatform = errors.New("invalid platform")
	// ErrEmptyToken is returned when the device token is empty
	ErrEmptyToken = errors.New("device token must not be empty")
	// ErrEndpointUnauthorized is returned when a user tries to deregister a token they don't own
	ErrEndpointUnauthorized = errors.New("unauthorized to deregister this endpoint")
)

type endpointService struct {
	endpointRepo repository.EndpointRepository
}

// NewEndpointService creates a new endpoint service instance
func NewEndpointService(endpointRepo repository.EndpointRepository) usecase.EndpointUsecase {
	return &endpointService{
		endpointRepo: endpointRepo,
	}
}

// RegisterEndpoint registers a device token or refreshes an existing registration.
// Registering a token that belongs to another user reassigns it: the push
// gateway issues tokens per device, so the latest registration wins.
func (s *endpointService) RegisterEndpoint(ctx context.Context, userID uuid.UUID, info *usecase.EndpointInfo) (*entity.Endpoint, error) {
	if info.Token == "" {
		return nil, ErrEmptyToken
	}

	platform := entity.Platform(info.Platform)
	if !platform.Valid() {
		return nil, ErrInvalidPlatform
	}

	now := time.Now()
	endpoint := &entity.Endpoint{
		Token:       info.Token,
		UserID:      userID,
		Platform:    platform,
		ChatEnabled: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Upsert writes the stored row back into the entity, so an upsert over an
	// existing token surfaces the original CreatedAt and ChatEnabled values.
	if err := s.endpointRepo.Upsert(ctx, endpoint); err != nil {
		return nil, fmt.Errorf("failed to upsert endpoint: %w", err)
	}

	return endpoint, nil
}

// DeregisterEndpoint removes the caller's registration for a token.
// Deregistering a token that is not registered is a no-op.
func (s *endpointService) DeregisterEndpoint(ctx context.Context, userID uuid.UUID, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	endpoint, err := s.endpointRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrEndpointNotFound) {
			return nil
		}

		return fmt.Errorf("failed to find endpoint by token: %w", err)
	}

	// Verify ownership
	if endpoint.UserID != userID {
		return ErrEndpointUnauthorized
	}

	if err := s.endpointRepo.Remove(ctx, token); err != nil {
		return fmt.Errorf("failed to remove endpoint: %w", err)
	}

	return nil
}

// SetChatPreference enables or disables chat notifications on all of the
// caller's endpoints. A user with no endpoints is not an error.
func (s *endpointService) SetChatPreference(ctx context.Context, userID uuid.UUID, enabled bool) error {
	if err := s.endpointRepo.SetChatPreference(ctx, userID, enabled); err != nil {
		return fmt.Errorf("failed to set chat preference: %w", err)
	}

	return nil
}
