// Package latency simulates the delay of a remote API call. The entity
// stores hold local fixtures, but every operation still waits the way a
// network round trip would, so callers are shaped for the real backend.
//
// The Sleeper is an injected dependency: production wiring uses Wall,
// tests use None so nothing waits on the clock.
package latency

import (
	"context"
	"time"
)

// Standard delays, matching what the real API's latency profile is mocked as.
const (
	Bulk   = 500 * time.Millisecond  // list, create, update, delete
	Lookup = 300 * time.Millisecond  // single-item reads and search
	Auth   = 1000 * time.Millisecond // login and signup
)

// Sleeper waits for a simulated round trip. Implementations must return
// early with ctx.Err() when the context is canceled.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Wall sleeps on the wall clock.
type Wall struct{}

func (Wall) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// None completes immediately, still honoring an already-canceled context.
type None struct{}

func (None) Sleep(ctx context.Context, d time.Duration) error {
	return ctx.Err()
}
