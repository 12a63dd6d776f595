package impl

import (
	"context"
	"testing"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureDispatcher records the intents handed to it.
type captureDispatcher struct {
	intents []*entity.Intent
}

func (d *captureDispatcher) Dispatch(_ context.Context, intent *entity.Intent) {
	d.intents = append(d.intents, intent)
}

func TestNotifierService_NotifyBroadcast(t *testing.T) {
	dispatcher := &captureDispatcher{}
	notifier := NewNotifierService(dispatcher)
	actorID := uuid.New()

	notifier.NotifyBroadcast(context.Background(), actorID, "Project updated", "The roadmap changed", map[string]string{"project_id": "p1"})

	require.Len(t, dispatcher.intents, 1)
	intent := dispatcher.intents[0]
	assert.Equal(t, entity.IntentBroadcast, intent.Kind)
	assert.Equal(t, actorID, intent.ExcludeUserID)
	assert.Equal(t, "Project updated", intent.Title)
	assert.Equal(t, "The roadmap changed", intent.Body)
	assert.Equal(t, "p1", intent.Data["project_id"])
}

func TestNotifierService_NotifyUsers(t *testing.T) {
	dispatcher := &captureDispatcher{}
	notifier := NewNotifierService(dispatcher)
	userIDs := []uuid.UUID{uuid.New(), uuid.New()}

	notifier.NotifyUsers(context.Background(), userIDs, "Mentioned", "You were mentioned", nil)

	require.Len(t, dispatcher.intents, 1)
	intent := dispatcher.intents[0]
	assert.Equal(t, entity.IntentDirect, intent.Kind)
	assert.Equal(t, userIDs, intent.UserIDs)
	assert.Equal(t, uuid.Nil, intent.ExcludeUserID)
}

func TestNotifierService_NotifyTaskAssignees(t *testing.T) {
	dispatcher := &captureDispatcher{}
	notifier := NewNotifierService(dispatcher)
	taskID := uuid.New()
	actorID := uuid.New()

	notifier.NotifyTaskAssignees(context.Background(), taskID, actorID, "Task assigned", "You have a new task", nil)

	require.Len(t, dispatcher.intents, 1)
	intent := dispatcher.intents[0]
	assert.Equal(t, entity.IntentTaskAssignees, intent.Kind)
	assert.Equal(t, taskID, intent.TaskID)
	assert.Equal(t, actorID, intent.ExcludeUserID)
}

func TestNotifierService_NotifyChatMessage(t *testing.T) {
	dispatcher := &captureDispatcher{}
	notifier := NewNotifierService(dispatcher)
	senderID := uuid.New()

	notifier.NotifyChatMessage(context.Background(), senderID, "Alice", "hello there")

	require.Len(t, dispatcher.intents, 1)
	intent := dispatcher.intents[0]
	assert.Equal(t, entity.IntentChatMessage, intent.Kind)
	assert.Equal(t, senderID, intent.ExcludeUserID)
	assert.Equal(t, "Alice", intent.Title)
	assert.Equal(t, "hello there", intent.Body)
	assert.Equal(t, "chat_message", intent.Data["type"])
}
