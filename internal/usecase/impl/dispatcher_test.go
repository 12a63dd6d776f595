package impl

import (
	"context"
	"testing"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	mockSvc "beacon/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// fakeRunner records intents handed to the engine by the queue consumer.
type fakeRunner struct {
	ran chan *entity.Intent
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{ran: make(chan *entity.Intent, 16)}
}

func (f *fakeRunner) Run(_ context.Context, intent *entity.Intent) error {
	f.ran <- intent

	return nil
}

func TestDispatcher_LocalQueueDeliversIntent(t *testing.T) {
	runner := newFakeRunner()
	publisher := mockSvc.NewMockEventPublisher(t)
	lc := fxtest.NewLifecycle(t)

	dispatcher := NewDispatcher(DispatcherParams{
		Lc:        lc,
		Config:    &config.Config{},
		Engine:    runner,
		Publisher: publisher,
		Logger:    discardLogger(),
	})

	lc.RequireStart()
	defer lc.RequireStop()

	intent := &entity.Intent{Kind: entity.IntentBroadcast, Title: "hello"}
	dispatcher.Dispatch(context.Background(), intent)

	select {
	case got := <-runner.ran:
		assert.Equal(t, intent, got)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer never ran the queued intent")
	}
}

func TestDispatcher_RemoteModePublishesEvent(t *testing.T) {
	runner := newFakeRunner()
	publisher := mockSvc.NewMockEventPublisher(t)
	lc := fxtest.NewLifecycle(t)

	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"},
	}

	dispatcher := NewDispatcher(DispatcherParams{
		Lc:        lc,
		Config:    cfg,
		Engine:    runner,
		Publisher: publisher,
		Logger:    discardLogger(),
	})

	lc.RequireStart()
	defer lc.RequireStop()

	userID := uuid.New()
	published := make(chan *service.DispatchEvent, 1)
	publisher.EXPECT().
		PublishDispatchEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.DispatchEvent) error {
			published <- event

			return nil
		})

	dispatcher.Dispatch(context.Background(), &entity.Intent{
		Kind:          entity.IntentChatMessage,
		ExcludeUserID: userID,
		Title:         "chat",
	})

	select {
	case event := <-published:
		assert.NotEmpty(t, event.EventID)
		assert.Equal(t, entity.IntentChatMessage, event.Intent.Kind)
		assert.Equal(t, userID, event.Intent.ExcludeUserID)
	case <-time.After(2 * time.Second):
		t.Fatal("event was never published")
	}

	// The local engine must stay idle in remote mode.
	select {
	case <-runner.ran:
		t.Fatal("engine ran locally despite remote mode")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDispatcher_RemoteModeDoesNotBlockCaller(t *testing.T) {
	runner := newFakeRunner()
	publisher := mockSvc.NewMockEventPublisher(t)
	lc := fxtest.NewLifecycle(t)

	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"},
	}

	dispatcher := NewDispatcher(DispatcherParams{
		Lc:        lc,
		Config:    cfg,
		Engine:    runner,
		Publisher: publisher,
		Logger:    discardLogger(),
	})

	lc.RequireStart()
	defer lc.RequireStop()

	// A stalled broker must not stall the caller: the publisher blocks until
	// released, while Dispatch has to return immediately.
	release := make(chan struct{})
	publishing := make(chan struct{}, 1)
	publisher.EXPECT().
		PublishDispatchEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *service.DispatchEvent) error {
			publishing <- struct{}{}
			<-release

			return nil
		})

	started := time.Now()
	dispatcher.Dispatch(context.Background(), &entity.Intent{Kind: entity.IntentBroadcast, Title: "hello"})
	elapsed := time.Since(started)

	assert.Less(t, elapsed, time.Second, "Dispatch must return without waiting on the publisher")

	select {
	case <-publishing:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer never handed the intent to the publisher")
	}
	close(release)
}

func TestDispatcher_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	runner := newFakeRunner()
	publisher := mockSvc.NewMockEventPublisher(t)
	lc := fxtest.NewLifecycle(t)

	cfg := &config.Config{Dispatch: &config.DispatchConfig{QueueSize: 1}}
	cfg.Dispatch.Normalize()

	dispatcher := NewDispatcher(DispatcherParams{
		Lc:        lc,
		Config:    cfg,
		Engine:    runner,
		Publisher: publisher,
		Logger:    discardLogger(),
	})

	// Consumer never started: the queue fills up and extra intents must be
	// dropped without blocking the caller.
	done := make(chan struct{})
	go func() {
		dispatcher.Dispatch(context.Background(), &entity.Intent{Kind: entity.IntentBroadcast})
		dispatcher.Dispatch(context.Background(), &entity.Intent{Kind: entity.IntentBroadcast})
		dispatcher.Dispatch(context.Background(), &entity.Intent{Kind: entity.IntentBroadcast})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}

	require.NotNil(t, dispatcher)
}
