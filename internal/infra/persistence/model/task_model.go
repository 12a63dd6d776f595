package model

import (
	"github.com/google/uuid"
)

// TaskAssigneeModel is the GORM-specific struct for the 'task_assignees'
// join table linking tasks to assigned team members.
type TaskAssigneeModel struct {
	TaskID       uuid.UUID `gorm:"type:uuid;not null;primaryKey"`
	TeamMemberID uuid.UUID `gorm:"type:uuid;not null;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (TaskAssigneeModel) TableName() string {
	return "task_assignees"
}

// TeamMemberModel is the GORM-specific struct for the 'team_members' table.
// UserID is nullable: a team member may exist before being linked to a user
// account, and unlinked members receive no notifications.
type TeamMemberModel struct {
	ID     uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName explicitly sets the table name for GORM.
func (TeamMemberModel) TableName() string {
	return "team_members"
}
