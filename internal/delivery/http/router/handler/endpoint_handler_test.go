package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"beacon/internal/delivery/http/validator"
	"beacon/internal/domain/entity"
	"beacon/internal/usecase"
	"beacon/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labstack/echo/v4"
)

type stubEndpointUsecase struct {
	registered    *usecase.EndpointInfo
	deregistered  string
	chatEnabled   *bool
	registerErr   error
	deregisterErr error
}

func (s *stubEndpointUsecase) RegisterEndpoint(_ context.Context, userID uuid.UUID, info *usecase.EndpointInfo) (*entity.Endpoint, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	s.registered = info

	return &entity.Endpoint{
		Token:       info.Token,
		UserID:      userID,
		Platform:    entity.Platform(info.Platform),
		ChatEnabled: true,
	}, nil
}

func (s *stubEndpointUsecase) DeregisterEndpoint(_ context.Context, _ uuid.UUID, token string) error {
	if s.deregisterErr != nil {
		return s.deregisterErr
	}
	s.deregistered = token

	return nil
}

func (s *stubEndpointUsecase) SetChatPreference(_ context.Context, _ uuid.UUID, enabled bool) error {
	s.chatEnabled = &enabled

	return nil
}

func newEndpointTestContext(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, "/notifications/endpoints", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestEndpointHandler(uc usecase.EndpointUsecase) *EndpointHandler {
	return &EndpointHandler{
		endpointUC: uc,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestEndpointHandler_RegisterEndpoint(t *testing.T) {
	uc := &stubEndpointUsecase{}
	h := newTestEndpointHandler(uc)

	c, rec := newEndpointTestContext(t, http.MethodPost, `{"token":"device-token","platform":"android"}`)
	c.Set("userID", uuid.New())

	require.NoError(t, h.RegisterEndpoint(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.registered)
	assert.Equal(t, "device-token", uc.registered.Token)
}

func TestEndpointHandler_RegisterEndpoint_RejectsUnknownPlatform(t *testing.T) {
	uc := &stubEndpointUsecase{}
	h := newTestEndpointHandler(uc)

	c, rec := newEndpointTestContext(t, http.MethodPost, `{"token":"device-token","platform":"blackberry"}`)
	c.Set("userID", uuid.New())

	require.NoError(t, h.RegisterEndpoint(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.registered)
}

func TestEndpointHandler_RegisterEndpoint_RequiresAuth(t *testing.T) {
	h := newTestEndpointHandler(&stubEndpointUsecase{})

	c, rec := newEndpointTestContext(t, http.MethodPost, `{"token":"device-token","platform":"android"}`)

	require.NoError(t, h.RegisterEndpoint(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEndpointHandler_DeregisterEndpoint(t *testing.T) {
	uc := &stubEndpointUsecase{}
	h := newTestEndpointHandler(uc)

	c, rec := newEndpointTestContext(t, http.MethodDelete, `{"token":"device-token"}`)
	c.Set("userID", uuid.New())

	require.NoError(t, h.DeregisterEndpoint(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "device-token", uc.deregistered)
}

func TestEndpointHandler_DeregisterEndpoint_ForbiddenForOtherUsers(t *testing.T) {
	uc := &stubEndpointUsecase{deregisterErr: impl.ErrEndpointUnauthorized}
	h := newTestEndpointHandler(uc)

	c, rec := newEndpointTestContext(t, http.MethodDelete, `{"token":"device-token"}`)
	c.Set("userID", uuid.New())

	require.NoError(t, h.DeregisterEndpoint(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestEndpointHandler_SetChatPreference(t *testing.T) {
	uc := &stubEndpointUsecase{}
	h := newTestEndpointHandler(uc)

	c, rec := newEndpointTestContext(t, http.MethodPut, `{"enabled":false}`)
	c.Set("userID", uuid.New())

	require.NoError(t, h.SetChatPreference(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.chatEnabled)
	assert.False(t, *uc.chatEnabled)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, true, envelope["success"])
}
