// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform identifies the client platform an endpoint belongs to.
// It is informational only and never affects delivery behavior.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformWeb     Platform = "web"
)

// Valid reports whether the platform is one of the supported values.
func (p Platform) Valid() bool {
	switch p {
	case PlatformAndroid, PlatformIOS, PlatformWeb:
		return true
	}

	return false
}

// Endpoint represents one device's registration for push delivery. The token
// is the identity of the registration: re-registering the same token updates
// the existing endpoint instead of creating a second one.
type Endpoint struct {
	Token       string    `json:"token"`        // Push gateway device token, globally unique.
	UserID      uuid.UUID `json:"user_id"`      // The user this device belongs to.
	Platform    Platform  `json:"platform"`     // Client platform (android, ios, web).
	ChatEnabled bool      `json:"chat_enabled"` // Opt-out flag for chat notifications; defaults to true.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of the first registration.
	UpdatedAt   time.Time `json:"updated_at"`   // Refreshed on every re-registration.
}

// TokenPrefix returns a short, log-safe prefix of the endpoint token.
// Full tokens never appear in logs.
func (e *Endpoint) TokenPrefix() string {
	return TokenPrefix(e.Token)
}

// TokenPrefix shortens a raw token for logging.
func TokenPrefix(token string) string {
	const n = 8
	if len(token) <= n {
		return token
	}

	return token[:n]
}
