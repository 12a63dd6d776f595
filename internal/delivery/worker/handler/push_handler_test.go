package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	"beacon/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	err  error
	runs []*entity.Intent
}

func (s *stubRunner) Run(_ context.Context, intent *entity.Intent) error {
	s.runs = append(s.runs, intent)

	return s.err
}

func newTestPushHandler(runner *stubRunner) *PushHandler {
	return NewPushHandler(PushHandlerParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Engine: runner,
	})
}

func pushRequest(t *testing.T, event *service.DispatchEvent) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	eventData, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.EventID
	pushMsg.Subscription = "projects/local/subscriptions/dispatch-sub"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_ProcessesEvent(t *testing.T) {
	runner := &stubRunner{}
	h := newTestPushHandler(runner)

	c, rec := pushRequest(t, &service.DispatchEvent{
		EventID: "evt-1",
		Intent:  &entity.Intent{Kind: entity.IntentBroadcast, Title: "hello"},
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, runner.runs, 1)
	assert.Equal(t, entity.IntentBroadcast, runner.runs[0].Kind)
}

func TestPushHandler_RetryableFailureReturns503(t *testing.T) {
	runner := &stubRunner{err: errors.New("database unavailable")}
	h := newTestPushHandler(runner)

	c, rec := pushRequest(t, &service.DispatchEvent{
		EventID: "evt-2",
		Intent:  &entity.Intent{Kind: entity.IntentBroadcast},
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_UnknownIntentIsAcknowledged(t *testing.T) {
	runner := &stubRunner{err: impl.ErrUnknownIntentKind}
	h := newTestPushHandler(runner)

	c, rec := pushRequest(t, &service.DispatchEvent{
		EventID: "evt-3",
		Intent:  &entity.Intent{Kind: "carrier_pigeon"},
	})

	require.NoError(t, h.HandlePush(c))
	// A retry can never fix an unknown kind, so the message is acked.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedDataReturns400(t *testing.T) {
	runner := &stubRunner{}
	h := newTestPushHandler(runner)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = "not base64!!"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, runner.runs)
}

func TestPushHandler_MissingIntentReturns400(t *testing.T) {
	runner := &stubRunner{}
	h := newTestPushHandler(runner)

	c, rec := pushRequest(t, &service.DispatchEvent{EventID: "evt-4"})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, runner.runs)
}
