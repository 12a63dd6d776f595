package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotifyHandlerParams holds dependencies for NotifyHandler, injected by Fx.
type NotifyHandlerParams struct {
	fx.In

	NotifierUC usecase.NotifierUsecase
	Logger     *slog.Logger
}

// NotifyHandler exposes the notifier operations over HTTP. The routes are
// gated behind testRoutes config; in production other features call the
// notifier use case in-process.
type NotifyHandler struct {
	notifierUC usecase.NotifierUsecase
	logger     *slog.Logger
}

// NewNotifyHandler is the constructor for NotifyHandler
func NewNotifyHandler(params NotifyHandlerParams) *NotifyHandler {
	return &NotifyHandler{
		notifierUC: params.NotifierUC,
		logger:     params.Logger,
	}
}

// BroadcastRequest represents the request body for a broadcast notification
type BroadcastRequest struct {
	Title         string            `json:"title" validate:"required"`
	Body          string            `json:"body" validate:"required"`
	Data          map[string]string `json:"data"`
	ExcludeUserID string            `json:"exclude_user_id"`
}

// DirectRequest represents the request body for a direct notification
type DirectRequest struct {
	Title   string            `json:"title" validate:"required"`
	Body    string            `json:"body" validate:"required"`
	Data    map[string]string `json:"data"`
	UserIDs []string          `json:"user_ids" validate:"required,min=1"`
}

// TaskAssigneesRequest represents the request body for a task assignee notification
type TaskAssigneesRequest struct {
	Title         string            `json:"title" validate:"required"`
	Body          string            `json:"body" validate:"required"`
	Data          map[string]string `json:"data"`
	TaskID        string            `json:"task_id" validate:"required,uuid"`
	ExcludeUserID string            `json:"exclude_user_id"`
}

// ChatMessageRequest represents the request body for a chat notification
type ChatMessageRequest struct {
	AuthorName string `json:"author_name" validate:"required"`
	Message    string `json:"message" validate:"required"`
}

// Broadcast queues a broadcast notification
func (h *NotifyHandler) Broadcast(c echo.Context) error {
	var req BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	excludeUserID := uuid.Nil
	if req.ExcludeUserID != "" {
		parsed, err := uuid.Parse(req.ExcludeUserID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid exclude_user_id")
		}
		excludeUserID = parsed
	}

	h.notifierUC.NotifyBroadcast(c.Request().Context(), excludeUserID, req.Title, req.Body, req.Data)

	return response.Success(c, http.StatusAccepted, nil, "Broadcast queued")
}

// Direct queues a notification to an explicit set of users
func (h *NotifyHandler) Direct(c echo.Context) error {
	var req DirectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid direct input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userIDs := make([]uuid.UUID, 0, len(req.UserIDs))
	for _, raw := range req.UserIDs {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid user ID: "+raw)
		}
		userIDs = append(userIDs, parsed)
	}

	h.notifierUC.NotifyUsers(c.Request().Context(), userIDs, req.Title, req.Body, req.Data)

	return response.Success(c, http.StatusAccepted, nil, "Notification queued")
}

// TaskAssignees queues a notification to a task's assignees
func (h *NotifyHandler) TaskAssignees(c echo.Context) error {
	var req TaskAssigneesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid task ID")
	}

	excludeUserID := uuid.Nil
	if req.ExcludeUserID != "" {
		parsed, err := uuid.Parse(req.ExcludeUserID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid exclude_user_id")
		}
		excludeUserID = parsed
	}

	h.notifierUC.NotifyTaskAssignees(c.Request().Context(), taskID, excludeUserID, req.Title, req.Body, req.Data)

	return response.Success(c, http.StatusAccepted, nil, "Notification queued")
}

// ChatMessage queues a chat notification from the authenticated sender
func (h *NotifyHandler) ChatMessage(c echo.Context) error {
	senderID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ChatMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	h.notifierUC.NotifyChatMessage(c.Request().Context(), senderID, req.AuthorName, req.Message)

	return response.Success(c, http.StatusAccepted, nil, "Notification queued")
}
