// Package clock abstracts time so that polling can be driven by tests.
package clock

import (
	"sync"
	"time"
)

// Clock is the subset of the time package used by the scheduler and the
// expiry watch.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) *Ticker
}

// Ticker delivers ticks on C until Stop is called. C has capacity 1,
// so ticks are dropped when the consumer falls behind.
type Ticker struct {
	C <-chan time.Time

	stop func()
}

// Stop turns the ticker off. C is not closed.
func (t *Ticker) Stop() { t.stop() }

// Real returns a Clock backed by the time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) NewTicker(d time.Duration) *Ticker {
	ticker := time.NewTicker(d)

	return &Ticker{C: ticker.C, stop: ticker.Stop}
}

// FakeClock is a Clock whose time only moves on Advance.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	tickers []*fakeTicker
	changed *sync.Cond
}

type fakeTicker struct {
	next     time.Time
	interval time.Duration
	ch       chan time.Time
	stopped  bool
}

// Fake returns a FakeClock set to initial.
func Fake(initial time.Time) *FakeClock {
	c := &FakeClock{current: initial}
	c.changed = sync.NewCond(&c.mu)

	return c
}

// Now returns the fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current
}

// NewTicker registers a ticker that fires each time the clock passes a
// multiple of d from now. Panics if d <= 0, like time.NewTicker.
func (c *FakeClock) NewTicker(d time.Duration) *Ticker {
	if d <= 0 {
		panic("clock: non-positive interval for NewTicker")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ft := &fakeTicker{
		next:     c.current.Add(d),
		interval: d,
		ch:       make(chan time.Time, 1),
	}
	c.tickers = append(c.tickers, ft)
	c.changed.Broadcast()

	return &Ticker{
		C: ft.ch,
		stop: func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			ft.stopped = true
			c.changed.Broadcast()
		},
	}
}

// Advance moves the clock forward and fires every ticker whose deadline
// was crossed. A ticker crossed several times delivers at most one
// pending tick.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = c.current.Add(d)
	active := c.tickers[:0]
	for _, ft := range c.tickers {
		if ft.stopped {
			continue
		}
		active = append(active, ft)
		if c.current.Before(ft.next) {
			continue
		}
		for !c.current.Before(ft.next) {
			ft.next = ft.next.Add(ft.interval)
		}
		select {
		case ft.ch <- c.current:
		default:
		}
	}
	c.tickers = active
}

// BlockUntilTickers waits until at least n tickers are active. Tests use
// it to make sure a goroutine has registered before advancing.
func (c *FakeClock) BlockUntilTickers(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.activeTickers() < n {
		c.changed.Wait()
	}
}

func (c *FakeClock) activeTickers() int {
	count := 0
	for _, ft := range c.tickers {
		if !ft.stopped {
			count++
		}
	}

	return count
}
