// Package handler contains the HTTP request handlers.
package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/errors"
	"beacon/internal/usecase"
	"beacon/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EndpointHandlerParams holds dependencies for EndpointHandler, injected by Fx.
type EndpointHandlerParams struct {
	fx.In

	EndpointUC usecase.EndpointUsecase
	Logger     *slog.Logger
}

// EndpointHandler holds dependencies for endpoint registry handlers
type EndpointHandler struct {
	endpointUC usecase.EndpointUsecase
	logger     *slog.Logger
}

// NewEndpointHandler is the constructor for EndpointHandler
func NewEndpointHandler(params EndpointHandlerParams) *EndpointHandler {
	return &EndpointHandler{
		endpointUC: params.EndpointUC,
		logger:     params.Logger,
	}
}

// RegisterEndpointRequest represents the request body for registering an endpoint
type RegisterEndpointRequest struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=android ios web"`
}

// DeregisterEndpointRequest represents the request body for removing an endpoint
type DeregisterEndpointRequest struct {
	Token string `json:"token" validate:"required"`
}

// SetChatPreferenceRequest represents the request body for the chat opt-out flag
type SetChatPreferenceRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// RegisterEndpoint handles device token registration
func (h *EndpointHandler) RegisterEndpoint(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req RegisterEndpointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid endpoint input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	endpoint, err := h.endpointUC.RegisterEndpoint(c.Request().Context(), userID, &usecase.EndpointInfo{
		Token:    req.Token,
		Platform: req.Platform,
	})
	if err != nil {
		if errors.Is(err, impl.ErrInvalidPlatform) || errors.Is(err, impl.ErrEmptyToken) {
			return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, endpoint, "Endpoint registered successfully")
}

// DeregisterEndpoint handles endpoint removal
func (h *EndpointHandler) DeregisterEndpoint(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req DeregisterEndpointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid endpoint input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.endpointUC.DeregisterEndpoint(c.Request().Context(), userID, req.Token); err != nil {
		if errors.Is(err, impl.ErrEndpointUnauthorized) {
			return response.Forbidden(c, "FORBIDDEN", "Endpoint belongs to another user")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Endpoint removed"}, "Endpoint removed successfully")
}

// SetChatPreference handles the chat notification opt-out flag
func (h *EndpointHandler) SetChatPreference(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req SetChatPreferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.endpointUC.SetChatPreference(c.Request().Context(), userID, *req.Enabled); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"chat_enabled": *req.Enabled}, "Chat preference updated successfully")
}

// getUserID extracts the user ID from the context
func (h *EndpointHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
