package fallback

import (
	"context"
	"math/rand/v2"
	"time"
)

// Delay simulates backend latency before a local answer is produced.
// It must return once ctx is done.
type Delay func(ctx context.Context)

// NoDelay returns immediately
func NoDelay() Delay {
	return func(context.Context) {}
}

// RandomDelay waits a uniformly random duration in [lo, hi]
func RandomDelay(lo, hi time.Duration) Delay {
	if hi < lo {
		lo, hi = hi, lo
	}
	return func(ctx context.Context) {
		d := lo
		if span := hi - lo; span > 0 {
			d += time.Duration(rand.Int64N(int64(span) + 1))
		}
		if d <= 0 {
			return
		}

		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
		}
	}
}
