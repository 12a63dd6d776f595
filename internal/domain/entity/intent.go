package entity

import "github.com/google/uuid"

// IntentKind selects the audience-resolution strategy for a dispatch.
type IntentKind string

const (
	// IntentBroadcast targets every endpoint, minus the excluded user's.
	IntentBroadcast IntentKind = "broadcast"
	// IntentDirect targets the endpoints of an explicit set of users.
	IntentDirect IntentKind = "direct"
	// IntentTaskAssignees targets the users linked to a task's assigned team members.
	IntentTaskAssignees IntentKind = "task_assignees"
	// IntentChatMessage is a broadcast additionally filtered to endpoints
	// that have chat notifications enabled.
	IntentChatMessage IntentKind = "chat_message"
)

// Intent describes whom to notify and with what content. Intents only live
// in memory for the duration of one dispatch; they are never persisted.
type Intent struct {
	Kind IntentKind `json:"kind"`

	// ExcludeUserID drops endpoints owned by this user from the audience.
	// uuid.Nil means no exclusion.
	ExcludeUserID uuid.UUID `json:"exclude_user_id,omitempty"`

	// UserIDs is the explicit target set for IntentDirect.
	UserIDs []uuid.UUID `json:"user_ids,omitempty"`

	// TaskID selects the assignee chain for IntentTaskAssignees.
	TaskID uuid.UUID `json:"task_id,omitempty"`

	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}
