package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchRunner executes one dispatch synchronously: resolve the audience,
// fan out to the gateway, prune invalid endpoints. An error means the
// audience could not be resolved; individual delivery failures never surface.
type DispatchRunner interface {
	Run(ctx context.Context, intent *entity.Intent) error
}

// Dispatcher accepts notification intents for asynchronous delivery.
// Dispatch never blocks on delivery and never reports delivery errors to the
// caller; the calling operation must not fail because notifications do.
type Dispatcher interface {
	Dispatch(ctx context.Context, intent *entity.Intent)
}

// NotifierUsecase is the entry point other application features use to send
// push notifications. All operations are fire-and-forget.
type NotifierUsecase interface {
	// NotifyBroadcast notifies every registered endpoint except those owned
	// by excludeUserID. Pass uuid.Nil to notify everyone.
	NotifyBroadcast(ctx context.Context, excludeUserID uuid.UUID, title, body string, data map[string]string)

	// NotifyUsers notifies all endpoints of the given users.
	NotifyUsers(ctx context.Context, userIDs []uuid.UUID, title, body string, data map[string]string)

	// NotifyTaskAssignees notifies the users assigned to a task through
	// their team memberships, except excludeUserID (usually the actor).
	NotifyTaskAssignees(ctx context.Context, taskID, excludeUserID uuid.UUID, title, body string, data map[string]string)

	// NotifyChatMessage notifies every chat-enabled endpoint except the
	// sender's own devices. The author's name becomes the notification title.
	NotifyChatMessage(ctx context.Context, senderUserID uuid.UUID, authorName, messageText string)
}
