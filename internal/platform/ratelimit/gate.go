package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Gate enforces a minimum interval between consecutive passes. All callers
// share one gate: the elapsed-time check, the sleep and the timestamp update
// run under a single lock so concurrent callers cannot squeeze requests
// closer together than the interval.
type Gate struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time

	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

func NewGate(interval time.Duration) *Gate {
	return &Gate{
		interval: interval,
		now:      time.Now,
		sleep:    sleepContext,
	}
}

// NewGateWithClock injects the time source and sleeper, for tests.
func NewGateWithClock(interval time.Duration, now func() time.Time, sleep func(context.Context, time.Duration) error) *Gate {
	g := NewGate(interval)
	if now != nil {
		g.now = now
	}
	if sleep != nil {
		g.sleep = sleep
	}
	return g
}

// Wait blocks until at least the configured interval has elapsed since the
// previous pass, then records the pass. Returns early only on context
// cancellation, in which case the pass is not recorded.
func (g *Gate) Wait(ctx context.Context) error {
	if g == nil || g.interval <= 0 {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.last.IsZero() {
		if remaining := g.interval - g.now().Sub(g.last); remaining > 0 {
			if err := g.sleep(ctx, remaining); err != nil {
				return err
			}
		}
	}
	g.last = g.now()
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
