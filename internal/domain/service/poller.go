package service

import (
	"context"
	"time"
)

// Poller is the host scheduling port: run a job now, or every interval.
type Poller interface {
	// Every runs fn each interval until the returned cancel func is called.
	Every(name string, interval time.Duration, fn func(ctx context.Context)) (cancel func())

	// Now runs fn once, asynchronously.
	Now(name string, fn func(ctx context.Context))
}
