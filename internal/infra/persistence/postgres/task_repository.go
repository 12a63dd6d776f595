package postgres

import (
	"context"

	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new GORM-backed task repository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// FindAssigneeUserIDs resolves a task's assignees to user IDs through the
// team membership table. Members without a linked user account are skipped.
func (r *taskRepository) FindAssigneeUserIDs(ctx context.Context, taskID uuid.UUID) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("task_assignees").
		Select("DISTINCT team_members.user_id").
		Joins("JOIN team_members ON team_members.id = task_assignees.team_member_id").
		Where("task_assignees.task_id = ? AND team_members.user_id IS NOT NULL", taskID).
		Scan(&userIDs).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to resolve task assignees")
	}

	return userIDs, nil
}
