// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is a long-running transport (HTTP API, worker endpoint) managed by the app.
type Delivery interface {
	Serve(ctx context.Context) error
}
