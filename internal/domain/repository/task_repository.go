package repository

import (
	"context"

	"github.com/google/uuid"
)

// TaskRepository exposes the read side of the task/assignee tables that the
// audience resolver needs. Task CRUD itself lives elsewhere.
type TaskRepository interface {
	// FindAssigneeUserIDs resolves task -> assigned team members -> linked
	// user IDs. Team members without a linked user account contribute
	// nothing. A task with no assignees yields an empty slice.
	FindAssigneeUserIDs(ctx context.Context, taskID uuid.UUID) ([]uuid.UUID, error)
}
