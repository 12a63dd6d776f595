// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// EndpointModel is the GORM-specific struct for the 'notification_endpoints'
// table. The device token is the primary key: re-registration of a token is
// an update, never a second row. Pruning is a hard delete so that no two
// live endpoints ever share a token.
type EndpointModel struct {
	Token       string    `gorm:"type:varchar(255);primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Platform    string    `gorm:"type:varchar(50);not null"`
	ChatEnabled bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EndpointModel) TableName() string {
	return "notification_endpoints"
}
