// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"beacon/config"
	"beacon/internal/delivery/http/middleware"
	"beacon/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config          *config.Config
	EndpointHandler *handler.EndpointHandler
	NotifyHandler   *handler.NotifyHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg             *config.Config
	endpointHandler *handler.EndpointHandler
	notifyHandler   *handler.NotifyHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:             params.Config,
		endpointHandler: params.EndpointHandler,
		notifyHandler:   params.NotifyHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Endpoint registry routes, authenticated per-user
	endpointGroup := e.Group("/notifications/endpoints")
	endpointGroup.Use(r.authMiddleware.Authenticate)
	{
		endpointGroup.POST("", r.endpointHandler.RegisterEndpoint)
		endpointGroup.DELETE("", r.endpointHandler.DeregisterEndpoint)
		endpointGroup.PUT("/chat-preference", r.endpointHandler.SetChatPreference)
	}

	// Notify trigger routes, only mounted when test routes are enabled.
	// Production callers reach the notifier use case in-process.
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		notifyGroup := e.Group("/test/notify")
		notifyGroup.Use(r.authMiddleware.Authenticate)
		{
			notifyGroup.POST("/broadcast", r.notifyHandler.Broadcast)
			notifyGroup.POST("/direct", r.notifyHandler.Direct)
			notifyGroup.POST("/task-assignees", r.notifyHandler.TaskAssignees)
			notifyGroup.POST("/chat-message", r.notifyHandler.ChatMessage)
		}
	}
}
