package impl

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type notifierService struct {
	dispatcher usecase.Dispatcher
}

// NewNotifierService creates the notifier entry point used by other features.
func NewNotifierService(dispatcher usecase.Dispatcher) usecase.NotifierUsecase {
	return &notifierService{
		dispatcher: dispatcher,
	}
}

// NotifyBroadcast notifies every registered endpoint except those owned by
// excludeUserID. Pass uuid.Nil to notify everyone.
func (s *notifierService) NotifyBroadcast(ctx context.Context, excludeUserID uuid.UUID, title, body string, data map[string]string) {
	s.dispatcher.Dispatch(ctx, &entity.Intent{
		Kind:          entity.IntentBroadcast,
		ExcludeUserID: excludeUserID,
		Title:         title,
		Body:          body,
		Data:          data,
	})
}

// NotifyUsers notifies all endpoints of the given users.
func (s *notifierService) NotifyUsers(ctx context.Context, userIDs []uuid.UUID, title, body string, data map[string]string) {
	s.dispatcher.Dispatch(ctx, &entity.Intent{
		Kind:    entity.IntentDirect,
		UserIDs: userIDs,
		Title:   title,
		Body:    body,
		Data:    data,
	})
}

// NotifyTaskAssignees notifies the users assigned to a task through their
// team memberships, except excludeUserID.
func (s *notifierService) NotifyTaskAssignees(ctx context.Context, taskID, excludeUserID uuid.UUID, title, body string, data map[string]string) {
	s.dispatcher.Dispatch(ctx, &entity.Intent{
		Kind:          entity.IntentTaskAssignees,
		TaskID:        taskID,
		ExcludeUserID: excludeUserID,
		Title:         title,
		Body:          body,
		Data:          data,
	})
}

// NotifyChatMessage notifies every chat-enabled endpoint except the sender's
// own devices. The author's name is the title so the device shows who wrote.
func (s *notifierService) NotifyChatMessage(ctx context.Context, senderUserID uuid.UUID, authorName, messageText string) {
	s.dispatcher.Dispatch(ctx, &entity.Intent{
		Kind:          entity.IntentChatMessage,
		ExcludeUserID: senderUserID,
		Title:         authorName,
		Body:          messageText,
		Data:          map[string]string{"type": "chat_message"},
	})
}
