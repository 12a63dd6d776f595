package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestNewFCMClient_UnconfiguredGatewayIsDisabled(t *testing.T) {
	client, err := NewFCMClient(context.Background(), &config.Config{}, discardLogger())
	require.NoError(t, err)

	endpoint := &entity.Endpoint{Token: "unconfigured-token", UserID: uuid.New()}
	outcome := client.Send(context.Background(), endpoint, "title", "body", nil)

	assert.False(t, outcome.Success)
	assert.Equal(t, service.FailureServiceUnavailable, outcome.Failure)
	assert.Equal(t, "unconfigured-token", outcome.Token)
}

func TestClassify_UnknownErrorsAreTransient(t *testing.T) {
	assert.Equal(t, service.FailureTransient, classify(errors.New("connection reset by peer")))
	assert.Equal(t, service.FailureTransient, classify(context.DeadlineExceeded))
}

func TestTokenPrefix_NeverExposesFullToken(t *testing.T) {
	endpoint := &entity.Endpoint{Token: "a-very-long-device-token-value"}
	assert.Equal(t, "a-very-l", endpoint.TokenPrefix())

	short := &entity.Endpoint{Token: "tiny"}
	assert.Equal(t, "tiny", short.TokenPrefix())
}
