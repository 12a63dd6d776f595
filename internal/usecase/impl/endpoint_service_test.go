package impl

import (
	"context"
	"testing"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	mockRepo "beacon/internal/mocks/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestEndpointService(t *testing.T) (usecase.EndpointUsecase, *mockRepo.MockEndpointRepository) {
	endpointRepo := mockRepo.NewMockEndpointRepository(t)

	return NewEndpointService(endpointRepo), endpointRepo
}

func TestEndpointService_RegisterEndpoint_Success(t *testing.T) {
	service, endpointRepo := createTestEndpointService(t)
	ctx := context.Background()
	userID := uuid.New()

	endpointRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(endpoint *entity.Endpoint) bool {
			return endpoint.Token == "device-token" &&
				endpoint.UserID == userID &&
				endpoint.Platform == entity.PlatformAndroid &&
				endpoint.ChatEnabled
		})).
		Return(nil)

	endpoint, err := service.RegisterEndpoint(ctx, userID, &usecase.EndpointInfo{
		Token:    "device-token",
		Platform: "android",
	})

	require.NoError(t, err)
	assert.Equal(t, "device-token", endpoint.Token)
	assert.Equal(t, userID, endpoint.UserID)
	assert.True(t, endpoint.ChatEnabled)
}

func TestEndpointService_RegisterEndpoint_ReassignsToken(t *testing.T) {
	service, endpointRepo := createTestEndpointService(t)
	ctx := context.Background()
	newOwnerID := uuid.New()

	// The upsert returns the stored row in place: the original CreatedAt and
	// chat preference survive, only the owner moves.
	firstRegistered := time.Now().Add(-48 * time.Hour)

	endpointRepo.EXPECT().
		Upsert(ctx, mock.Anything).
		Run(func(_ context.Context, endpoint *entity.Endpoint) {
			endpoint.ChatEnabled = false
			endpoint.CreatedAt = firstRegistered
		}).
		Return(nil)

	endpoint, err := service.RegisterEndpoint(ctx, newOwnerID, &usecase.EndpointInfo{
		Token:    "shared-device-token",
		Platform: "ios",
	})

	require.NoError(t, err)
	assert.Equal(t, newOwnerID, endpoint.UserID)
	assert.Equal(t, firstRegistered, endpoint.CreatedAt)
	assert.False(t, endpoint.ChatEnabled)
}

func TestEndpointService_RegisterEndpoint_InvalidPlatform(t *testing.T) {
	service, _ := createTestEndpointService(t)

	_, err := service.RegisterEndpoint(context.Background(), uuid.New(), &usecase.EndpointInfo{
		Token:    "device-token",
		Platform: "blackberry",
	})

	assert.ErrorIs(t, err, ErrInvalidPlatform)
}

func TestEndpointService_RegisterEndpoint_EmptyToken(t *testing.T) {
	service, _ := createTestEndpointService(t)

	_, err := service.RegisterEndpoint(context.Background(), uuid.New(), &usecase.EndpointInfo{
		Platform: "android",
	})

	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestEndpointService_DeregisterEndpoint_Success(t *testing.T) {
	service, endpointRepo := createTestEndpointService(t)
	ctx := context.Background()
	userID := uuid.New()

	endpointRepo.EXPECT().FindByToken(ctx, "device-token").Return(&entity.Endpoint{
		Token:  "device-token",
		UserID: userID,
	}, nil)
	endpointRepo.EXPECT().Remove(ctx, "device-token").Return(nil)

	err := service.DeregisterEndpoint(ctx, userID, "device-token")

	require.NoError(t, err)
}

func TestEndpointService_DeregisterEndpoint_AbsentTokenIsNoop(t *testing.T) {
	service, endpointRepo := createTestEndpointService(t)
	ctx := context.Background()

	endpointRepo.EXPECT().
		FindByToken(ctx, "unknown-token").
		Return(nil, repository.ErrEndpointNotFound)

	err := service.DeregisterEndpoint(ctx, uuid.New(), "unknown-token")

	require.NoError(t, err)
}

func TestEndpointService_DeregisterEndpoint_Unauthorized(t *testing.T) {
	service, endpointRepo := createTestEndpointService(t)
	ctx := context.Background()

	endpointRepo.EXPECT().FindByToken(ctx, "device-token").Return(&entity.Endpoint{
		Token:  "device-token",
		UserID: uuid.New(),
	}, nil)

	err := service.DeregisterEndpoint(ctx, uuid.New(), "device-token")

	assert.ErrorIs(t, err, ErrEndpointUnauthorized)
}

func TestEndpointService_SetChatPreference(t *testing.T) {
	service, endpointRepo := createTestEndpointService(t)
	ctx := context.Background()
	userID := uuid.New()

	endpointRepo.EXPECT().SetChatPreference(ctx, userID, false).Return(nil)

	err := service.SetChatPreference(ctx, userID, false)

	require.NoError(t, err)
}
