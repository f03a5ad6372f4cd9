// Package scheduler runs the periodic refresh jobs of every account.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"smartlunch/internal/domain/lifecycle"
	"smartlunch/internal/domain/service"
	"smartlunch/internal/infra/clock"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Scheduler is an in-process Poller. Each job runs on its own goroutine,
// so a job never overlaps with itself and ticks missed while it runs
// are dropped.
type Scheduler struct {
	clock  clock.Clock
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ service.Poller = (*Scheduler)(nil)

// New creates a Scheduler. Jobs stop when Stop is called.
func New(clk clock.Clock, logger *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		clock:  clk,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Every runs fn each interval until the returned func or Stop is called.
func (s *Scheduler) Every(name string, interval time.Duration, fn func(ctx context.Context)) func() {
	jobCtx, cancel := context.WithCancel(s.ctx)
	ticker := s.clock.NewTicker(interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-ticker.C:
				s.run(jobCtx, name, fn)
			}
		}
	}()

	s.logger.Debug("Job scheduled", slog.String("job", name), slog.Duration("interval", interval))

	return cancel
}

// Now runs fn once in the background.
func (s *Scheduler) Now(name string, fn func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(s.ctx, name, fn)
	}()
}

func (s *Scheduler) run(ctx context.Context, name string, fn func(ctx context.Context)) {
	if ctx.Err() != nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Job panicked", slog.String("job", name), slog.Any("panic", r))
		}
	}()

	fn(ctx)
}

// Stop cancels every job and waits for running ones to return.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "wait for scheduled jobs")
	}
}

// PollerParams holds dependencies for the Poller, injected by Fx
type PollerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Clock  clock.Clock
	Logger *slog.Logger
}

// NewPoller creates the process Scheduler and stops it on shutdown.
func NewPoller(params PollerParams) service.Poller {
	s := New(params.Clock, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			params.Logger.Info("Stopping scheduler")

			return s.Stop(stopCtx)
		},
	})

	return s
}

// Module provides the scheduler FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(clock.Real),
	fx.Provide(NewPoller),
)
