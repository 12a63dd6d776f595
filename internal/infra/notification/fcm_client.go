// Package notification implements the push delivery client on top of
// Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type fcmClient struct {
	client *messaging.Client // nil when the gateway is unconfigured
	logger *slog.Logger
}

// NewFCMClient creates the delivery client. When the Firebase section is
// missing or has no credentials path, the returned client is disabled: every
// Send reports service_unavailable. An unreachable gateway is not evidence
// that any token is invalid, so the dispatcher never prunes on that kind.
func NewFCMClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.DeliveryClient, error) {
	fb := cfg.Firebase
	if fb == nil || fb.CredentialsPath == "" {
		logger.Warn("Firebase is not configured, push delivery disabled")

		return &fcmClient{logger: logger}, nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(fb.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	logger.Info("Firebase messaging client initialized",
		slog.String("project_id", fb.ProjectID),
	)

	return &fcmClient{
		client: client,
		logger: logger,
	}, nil
}

// Send delivers one notification to one endpoint. It never returns an error:
// every attempt yields an outcome, and a panic inside the send path is
// classified as transient.
func (c *fcmClient) Send(ctx context.Context, endpoint *entity.Endpoint, title, body string, data map[string]string) (outcome service.DeliveryOutcome) {
	outcome = service.DeliveryOutcome{Token: endpoint.Token}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("panic during push send",
				slog.String("token_prefix", endpoint.TokenPrefix()),
				slog.Any("panic", r),
			)
			outcome.Success = false
			outcome.Failure = service.FailureTransient
		}
	}()

	if c.client == nil {
		outcome.Failure = service.FailureServiceUnavailable

		return outcome
	}

	message := &messaging.Message{
		Token: endpoint.Token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := c.client.Send(ctx, message); err != nil {
		outcome.Failure = classify(err)
		c.logger.Warn("push send failed",
			slog.String("token_prefix", endpoint.TokenPrefix()),
			slog.String("failure_kind", string(outcome.Failure)),
			slog.Any("error", err),
		)

		return outcome
	}

	outcome.Success = true

	return outcome
}

// classify maps a gateway error onto the failure taxonomy. Only errors that
// prove the registration is permanently gone become token_invalid; rate
// limits, timeouts and unknown errors stay transient.
func classify(err error) service.FailureKind {
	switch {
	case messaging.IsUnregistered(err),
		messaging.IsInvalidArgument(err),
		messaging.IsSenderIDMismatch(err):
		return service.FailureTokenInvalid
	default:
		return service.FailureTransient
	}
}
