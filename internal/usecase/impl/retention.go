package impl

import (
	"context"
	"log/slog"
	"time"

	"beacon/config"
	"beacon/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const (
	defaultRetentionSchedule = "0 4 * * *"
	defaultRetentionMaxAge   = 90 * 24 * time.Hour
	retentionSweepTimeout    = 5 * time.Minute
)

// RetentionSweeper periodically removes endpoints that have not been
// re-registered within the retention window. Clients refresh their token on
// every launch, so a long-untouched endpoint belongs to an abandoned install.
type RetentionSweeper struct {
	endpointRepo repository.EndpointRepository
	maxAge       time.Duration
	logger       *slog.Logger
}

// RetentionParams holds dependencies for the retention sweeper, injected by Fx
type RetentionParams struct {
	fx.In

	Lc           fx.Lifecycle
	Config       *config.Config
	EndpointRepo repository.EndpointRepository
	Logger       *slog.Logger
}

// NewRetentionSweeper creates the sweeper and schedules it on the application
// lifecycle. A nil or disabled retention config produces an inert sweeper.
func NewRetentionSweeper(params RetentionParams) (*RetentionSweeper, error) {
	cfg := params.Config.Retention

	sweeper := &RetentionSweeper{
		endpointRepo: params.EndpointRepo,
		maxAge:       defaultRetentionMaxAge,
		logger:       params.Logger,
	}

	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Endpoint retention sweep disabled")

		return sweeper, nil
	}

	if cfg.MaxAge > 0 {
		sweeper.maxAge = cfg.MaxAge
	}

	schedule := cfg.Schedule
	if schedule == "" {
		schedule = defaultRetentionSchedule
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), retentionSweepTimeout)
		defer cancel()

		sweeper.Sweep(ctx)
	}); err != nil {
		return nil, errors.Wrapf(err, "invalid retention schedule %q", schedule)
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			params.Logger.Info("Starting endpoint retention sweep",
				slog.String("schedule", schedule),
				slog.Duration("max_age", sweeper.maxAge),
			)
			scheduler.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx := scheduler.Stop()
			select {
			case <-stopCtx.Done():
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})

	return sweeper, nil
}

// Sweep removes stale endpoints once. Exposed for manual triggering.
func (s *RetentionSweeper) Sweep(ctx context.Context) {
	before := time.Now().Add(-s.maxAge)

	removed, err := s.endpointRepo.RemoveStale(ctx, before)
	if err != nil {
		s.logger.Error("Endpoint retention sweep failed",
			slog.String("error", err.Error()),
		)

		return
	}

	s.logger.Info("Endpoint retention sweep completed",
		slog.Int64("removed", removed),
		slog.Time("before", before),
	)
}
