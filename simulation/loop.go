package simulation

import (
	"context"
	"time"
)

// RunRealtime ticks the runner at tickRate ticks per second until the
// scenario ends or ctx is cancelled.
func RunRealtime(ctx context.Context, r *Runner, tickRate int) (Summary, error) {
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	for !r.Done() {
		select {
		case <-ctx.Done():
			return r.Summary(), ctx.Err()
		case <-ticker.C:
			r.Tick()
		}
	}
	return r.Summary(), nil
}
