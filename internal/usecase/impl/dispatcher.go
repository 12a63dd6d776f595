package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"beacon/config"
	"beacon/internal/domain/constants"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const publishTimeout = 10 * time.Second

// dispatchJob carries one queued intent. The request ID is captured at
// enqueue time because the triggering request's context is gone by the time
// the consumer picks the job up.
type dispatchJob struct {
	intent    *entity.Intent
	requestID string
}

// queuedDispatcher decouples dispatch from the triggering request. Every
// intent goes onto a bounded in-process queue; a background consumer either
// publishes it to the worker fleet (when Pub/Sub is configured) or runs the
// engine locally. Either way the caller returns immediately and never
// observes delivery failures.
type queuedDispatcher struct {
	engine    usecase.DispatchRunner
	publisher service.EventPublisher
	remote    bool
	queue     chan dispatchJob
	stop      chan struct{}
	wg        sync.WaitGroup
	logger    *slog.Logger
}

// DispatcherParams holds dependencies for the dispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Engine    usecase.DispatchRunner
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewDispatcher creates the fire-and-forget dispatcher and hooks its consumer
// into the application lifecycle.
func NewDispatcher(params DispatcherParams) usecase.Dispatcher {
	dispatchCfg := params.Config.Dispatch
	if dispatchCfg == nil {
		dispatchCfg = &config.DispatchConfig{}
		dispatchCfg.Normalize()
	}

	d := &queuedDispatcher{
		engine:    params.Engine,
		publisher: params.Publisher,
		remote:    params.Config.PubSub != nil && params.Config.PubSub.Provider != "",
		queue:     make(chan dispatchJob, dispatchCfg.QueueSize),
		stop:      make(chan struct{}),
		logger:    params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.wg.Add(1)
			go d.consume()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(d.stop)

			done := make(chan struct{})
			go func() {
				d.wg.Wait()
				close(done)
			}()

			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})

	return d
}

// Dispatch hands the intent off for asynchronous delivery. The enqueue never
// blocks: a broker outage or a slow engine must not stall the request that
// triggered the notification. When the queue is full the intent is dropped
// with a warning.
func (d *queuedDispatcher) Dispatch(ctx context.Context, intent *entity.Intent) {
	job := dispatchJob{
		intent:    intent,
		requestID: constants.RequestIDFromContext(ctx),
	}

	select {
	case d.queue <- job:
	default:
		d.logger.Warn("Dispatch queue full, dropping intent",
			slog.String("intent_kind", string(intent.Kind)),
		)
	}
}

func (d *queuedDispatcher) publish(job dispatchJob) {
	event := &service.DispatchEvent{
		RequestID: job.requestID,
		EventID:   uuid.New().String(),
		Intent:    job.intent,
	}

	publishCtx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := d.publisher.PublishDispatchEvent(publishCtx, event); err != nil {
		d.logger.Error("Failed to publish dispatch event",
			slog.String("event_id", event.EventID),
			slog.String("intent_kind", string(job.intent.Kind)),
			slog.String("error", err.Error()),
		)
	}
}

// consume drains the queue until stopped. Intents already queued at shutdown
// are delivered before the consumer exits.
func (d *queuedDispatcher) consume() {
	defer d.wg.Done()

	for {
		select {
		case job := <-d.queue:
			d.run(job)
		case <-d.stop:
			for {
				select {
				case job := <-d.queue:
					d.run(job)
				default:
					return
				}
			}
		}
	}
}

func (d *queuedDispatcher) run(job dispatchJob) {
	if d.remote {
		d.publish(job)

		return
	}

	// Engine errors are already logged; the consumer only keeps draining.
	//nolint:errcheck
	_ = d.engine.Run(context.Background(), job.intent)
}
