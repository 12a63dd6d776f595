package impl

import (
	"context"
	"testing"
	"time"

	"beacon/config"
	mockRepo "beacon/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func createTestSweeper(t *testing.T, retention *config.RetentionConfig) (*RetentionSweeper, *mockRepo.MockEndpointRepository) {
	endpointRepo := mockRepo.NewMockEndpointRepository(t)
	lc := fxtest.NewLifecycle(t)

	sweeper, err := NewRetentionSweeper(RetentionParams{
		Lc:           lc,
		Config:       &config.Config{Retention: retention},
		EndpointRepo: endpointRepo,
		Logger:       discardLogger(),
	})
	require.NoError(t, err)

	return sweeper, endpointRepo
}

func TestRetentionSweeper_SweepRemovesStaleEndpoints(t *testing.T) {
	maxAge := 30 * 24 * time.Hour
	sweeper, endpointRepo := createTestSweeper(t, &config.RetentionConfig{
		Enabled: true,
		MaxAge:  maxAge,
	})

	endpointRepo.EXPECT().
		RemoveStale(mock.Anything, mock.MatchedBy(func(before time.Time) bool {
			expected := time.Now().Add(-maxAge)

			return before.Sub(expected).Abs() < time.Minute
		})).
		Return(int64(3), nil)

	sweeper.Sweep(context.Background())
}

func TestRetentionSweeper_SweepSurvivesRepositoryError(t *testing.T) {
	sweeper, endpointRepo := createTestSweeper(t, &config.RetentionConfig{Enabled: true})

	endpointRepo.EXPECT().
		RemoveStale(mock.Anything, mock.Anything).
		Return(int64(0), errors.New("database unavailable"))

	sweeper.Sweep(context.Background())
}

func TestRetentionSweeper_InvalidScheduleRejected(t *testing.T) {
	endpointRepo := mockRepo.NewMockEndpointRepository(t)
	lc := fxtest.NewLifecycle(t)

	_, err := NewRetentionSweeper(RetentionParams{
		Lc: lc,
		Config: &config.Config{Retention: &config.RetentionConfig{
			Enabled:  true,
			Schedule: "not a cron expression",
		}},
		EndpointRepo: endpointRepo,
		Logger:       discardLogger(),
	})

	assert.Error(t, err)
}

func TestRetentionSweeper_DisabledConfigIsInert(t *testing.T) {
	sweeper, _ := createTestSweeper(t, nil)

	assert.NotNil(t, sweeper)
}
