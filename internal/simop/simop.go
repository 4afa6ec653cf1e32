// Package simop models the app's simulated processing delay as a real
// asynchronous operation: cancellable, with genuine success and failure
// branches, so a future backend call can replace the delay in place.
package simop

import (
	"context"
	"time"
)

// Run waits out a simulated processing delay, then executes fn and
// returns its result. If ctx is cancelled before the delay elapses, fn is
// never called and no state changes.
func Run[T any](ctx context.Context, delay time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return zero, err
	}
	return fn()
}
