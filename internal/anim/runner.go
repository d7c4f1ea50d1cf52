package anim

import (
	"context"
	"time"
)

// Tickable is the slice of a replay host the runner needs: one call per
// tick, false when done. Both *Animator and session.Session satisfy it.
type Tickable interface {
	Advance() bool
}

// Run drives a replay from a real clock, one Advance per interval, until
// the replay finishes or the context is canceled. Cancellation takes
// effect at the next tick boundary, never mid-tick.
func Run(ctx context.Context, t Tickable, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !t.Advance() {
				return nil
			}
		}
	}
}
