// Package delivery holds the inbound surfaces of the poller.
package delivery

import "context"

// Delivery is a server started by the entrypoint once the fx graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
