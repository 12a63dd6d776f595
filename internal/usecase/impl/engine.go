package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"golang.org/x/time/rate"
)

// dispatchEngine resolves an intent's audience and fans the notification out
// to the push gateway with bounded concurrency. Endpoints whose tokens the
// gateway reports as invalid are pruned from the registry; transient and
// gateway-availability failures are only counted.
type dispatchEngine struct {
	resolver     *audienceResolver
	client       service.DeliveryClient
	endpointRepo repository.EndpointRepository
	cfg          *config.DispatchConfig
	limiter      *rate.Limiter
	logger       *slog.Logger
}

// NewDispatchEngine creates the synchronous dispatch engine.
func NewDispatchEngine(
	cfg *config.Config,
	endpointRepo repository.EndpointRepository,
	taskRepo repository.TaskRepository,
	client service.DeliveryClient,
	logger *slog.Logger,
) usecase.DispatchRunner {
	dispatchCfg := cfg.Dispatch
	if dispatchCfg == nil {
		dispatchCfg = &config.DispatchConfig{}
		dispatchCfg.Normalize()
	}

	var limiter *rate.Limiter
	if dispatchCfg.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(dispatchCfg.RatePerSec), dispatchCfg.RatePerSec)
	}

	return &dispatchEngine{
		resolver:     newAudienceResolver(endpointRepo, taskRepo),
		client:       client,
		endpointRepo: endpointRepo,
		cfg:          dispatchCfg,
		limiter:      limiter,
		logger:       logger,
	}
}

// Run executes one dispatch. Only audience resolution can fail; everything
// past that point is absorbed into the outcome counts.
func (e *dispatchEngine) Run(ctx context.Context, intent *entity.Intent) error {
	started := time.Now()

	ctx, cancel := context.WithTimeout(ctx, e.cfg.DispatchTimeout)
	defer cancel()

	endpoints, err := e.resolver.Resolve(ctx, intent)
	if err != nil {
		e.logger.Error("Audience resolution failed",
			slog.String("intent_kind", string(intent.Kind)),
			slog.String("error", err.Error()),
		)

		return err
	}

	if len(endpoints) == 0 {
		e.logger.Debug("Dispatch resolved to empty audience, nothing to send",
			slog.String("intent_kind", string(intent.Kind)),
		)

		return nil
	}

	outcomes := e.fanOut(ctx, intent, endpoints)

	var sent, transient, unavailable int
	var invalidTokens []string
	for _, outcome := range outcomes {
		switch {
		case outcome.Success:
			sent++
		case outcome.Failure == service.FailureTokenInvalid:
			invalidTokens = append(invalidTokens, outcome.Token)
		case outcome.Failure == service.FailureServiceUnavailable:
			unavailable++
		default:
			transient++
		}
	}

	// Prune endpoints the gateway reported as permanently unreachable.
	// Removal errors are logged and ignored; a failed prune only means the
	// token gets retried on the next dispatch.
	for _, token := range invalidTokens {
		if err := e.endpointRepo.Remove(ctx, token); err != nil {
			e.logger.Warn("Failed to prune invalid endpoint",
				slog.String("token_prefix", entity.TokenPrefix(token)),
				slog.String("error", err.Error()),
			)
		}
	}

	e.logger.Info("Dispatch completed",
		slog.String("intent_kind", string(intent.Kind)),
		slog.Int("audience", len(endpoints)),
		slog.Int("sent", sent),
		slog.Int("transient_failures", transient),
		slog.Int("unavailable_failures", unavailable),
		slog.Int("pruned", len(invalidTokens)),
		slog.Duration("elapsed", time.Since(started)),
	)

	return nil
}

// fanOut delivers to every endpoint using a bounded worker pool. Each send
// gets its own timeout so one slow gateway call cannot stall the pool.
func (e *dispatchEngine) fanOut(ctx context.Context, intent *entity.Intent, endpoints []*entity.Endpoint) []service.DeliveryOutcome {
	jobs := make(chan *entity.Endpoint)
	results := make(chan service.DeliveryOutcome, len(endpoints))

	workers := e.cfg.SendConcurrency
	if workers > len(endpoints) {
		workers = len(endpoints)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for endpoint := range jobs {
				results <- e.send(ctx, intent, endpoint)
			}
		}()
	}

	for _, endpoint := range endpoints {
		jobs <- endpoint
	}
	close(jobs)
	wg.Wait()
	close(results)

	outcomes := make([]service.DeliveryOutcome, 0, len(endpoints))
	for outcome := range results {
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

func (e *dispatchEngine) send(ctx context.Context, intent *entity.Intent, endpoint *entity.Endpoint) service.DeliveryOutcome {
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return service.DeliveryOutcome{Token: endpoint.Token, Failure: service.FailureTransient}
		}
	}

	sendCtx, cancel := context.WithTimeout(ctx, e.cfg.SendTimeout)
	defer cancel()

	return e.client.Send(sendCtx, endpoint, intent.Title, intent.Body, intent.Data)
}
