package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	mockRepo "beacon/internal/mocks/repository"
	mockSvc "beacon/internal/mocks/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func createTestEngine(t *testing.T, dispatchCfg *config.DispatchConfig) (
	usecase.DispatchRunner,
	*mockRepo.MockEndpointRepository,
	*mockRepo.MockTaskRepository,
	*mockSvc.MockDeliveryClient,
) {
	endpointRepo := mockRepo.NewMockEndpointRepository(t)
	taskRepo := mockRepo.NewMockTaskRepository(t)
	client := mockSvc.NewMockDeliveryClient(t)

	cfg := &config.Config{Dispatch: dispatchCfg}
	if cfg.Dispatch == nil {
		cfg.Dispatch = &config.DispatchConfig{}
	}
	cfg.Dispatch.Normalize()

	engine := NewDispatchEngine(cfg, endpointRepo, taskRepo, client, discardLogger())

	return engine, endpointRepo, taskRepo, client
}

func TestDispatchEngine_PrunesOnlyInvalidTokens(t *testing.T) {
	engine, endpointRepo, _, client := createTestEngine(t, nil)

	audience := []*entity.Endpoint{
		{Token: "token-ok", UserID: uuid.New(), Platform: entity.PlatformAndroid},
		{Token: "token-dead", UserID: uuid.New(), Platform: entity.PlatformIOS},
		{Token: "token-flaky", UserID: uuid.New(), Platform: entity.PlatformWeb},
	}

	endpointRepo.EXPECT().FindAll(mock.Anything).Return(audience, nil)

	client.EXPECT().
		Send(mock.Anything, mock.Anything, "title", "body", mock.Anything).
		RunAndReturn(func(_ context.Context, endpoint *entity.Endpoint, _, _ string, _ map[string]string) service.DeliveryOutcome {
			switch endpoint.Token {
			case "token-dead":
				return service.DeliveryOutcome{Token: endpoint.Token, Failure: service.FailureTokenInvalid}
			case "token-flaky":
				return service.DeliveryOutcome{Token: endpoint.Token, Failure: service.FailureTransient}
			default:
				return service.DeliveryOutcome{Token: endpoint.Token, Success: true}
			}
		})

	// Only the invalid token gets removed; any other Remove call would fail
	// the mock's expectations.
	endpointRepo.EXPECT().Remove(mock.Anything, "token-dead").Return(nil)

	err := engine.Run(context.Background(), &entity.Intent{
		Kind:  entity.IntentBroadcast,
		Title: "title",
		Body:  "body",
	})

	require.NoError(t, err)
}

func TestDispatchEngine_EmptyAudienceNeverCallsGateway(t *testing.T) {
	engine, _, _, _ := createTestEngine(t, nil)

	// Direct intent with no users resolves without touching the repository,
	// and the client mock has no expectations at all.
	err := engine.Run(context.Background(), &entity.Intent{
		Kind:  entity.IntentDirect,
		Title: "title",
		Body:  "body",
	})

	require.NoError(t, err)
}

func TestDispatchEngine_UnavailableGatewayPrunesNothing(t *testing.T) {
	engine, endpointRepo, _, client := createTestEngine(t, nil)

	audience := makeEndpoints(10)
	endpointRepo.EXPECT().FindAll(mock.Anything).Return(audience, nil)

	client.EXPECT().
		Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, endpoint *entity.Endpoint, _, _ string, _ map[string]string) service.DeliveryOutcome {
			return service.DeliveryOutcome{Token: endpoint.Token, Failure: service.FailureServiceUnavailable}
		})

	// No Remove expectation: a down gateway says nothing about token validity.
	err := engine.Run(context.Background(), &entity.Intent{Kind: entity.IntentBroadcast})

	require.NoError(t, err)
}

func TestDispatchEngine_BoundsConcurrentSends(t *testing.T) {
	const (
		audienceSize = 500
		concurrency  = 8
	)

	engine, endpointRepo, _, client := createTestEngine(t, &config.DispatchConfig{
		SendConcurrency: concurrency,
	})

	endpointRepo.EXPECT().FindAll(mock.Anything).Return(makeEndpoints(audienceSize), nil)

	var mu sync.Mutex
	var inFlight, maxInFlight, total int

	client.EXPECT().
		Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, endpoint *entity.Endpoint, _, _ string, _ map[string]string) service.DeliveryOutcome {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			total++
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()

			return service.DeliveryOutcome{Token: endpoint.Token, Success: true}
		})

	err := engine.Run(context.Background(), &entity.Intent{Kind: entity.IntentBroadcast})

	require.NoError(t, err)
	assert.Equal(t, audienceSize, total)
	assert.LessOrEqual(t, maxInFlight, concurrency)
}

func TestDispatchEngine_ResolutionFailureReturnsError(t *testing.T) {
	engine, _, _, _ := createTestEngine(t, nil)

	err := engine.Run(context.Background(), &entity.Intent{Kind: "carrier_pigeon"})

	assert.ErrorIs(t, err, ErrUnknownIntentKind)
}

func TestDispatchEngine_PruneFailureDoesNotFailDispatch(t *testing.T) {
	engine, endpointRepo, _, client := createTestEngine(t, nil)

	audience := []*entity.Endpoint{
		{Token: "token-dead", UserID: uuid.New(), Platform: entity.PlatformAndroid},
	}
	endpointRepo.EXPECT().FindAll(mock.Anything).Return(audience, nil)
	client.EXPECT().
		Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(service.DeliveryOutcome{Token: "token-dead", Failure: service.FailureTokenInvalid})
	endpointRepo.EXPECT().Remove(mock.Anything, "token-dead").Return(errors.New("remove failed"))

	err := engine.Run(context.Background(), &entity.Intent{Kind: entity.IntentBroadcast})

	require.NoError(t, err)
}
