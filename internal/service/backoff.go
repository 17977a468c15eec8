package service

import (
	"context"
	"math/rand/v2"
	"time"
)

// backoffDelay computes the wait before retry number attempt (0-based):
// exponential growth from min, capped at max, with the upper half of the
// interval randomized so parallel clients do not retry in lockstep.
func backoffDelay(attempt int, min, max time.Duration) time.Duration {
	delay := min
	for i := 0; i < attempt && delay < max; i++ {
		delay *= 2
	}
	if delay > max {
		delay = max
	}

	half := delay / 2
	return half + time.Duration(rand.Int64N(int64(half)+1))
}

// sleepCtx blocks for d or until ctx is cancelled, returning the context
// error in the latter case.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
