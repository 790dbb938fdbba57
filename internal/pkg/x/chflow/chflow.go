// Package chflow holds small channel helpers that give up as soon as a
// context is done.
package chflow

import (
	"context"
	"time"
)

// Receive returns the next value from ch. ok is false when ch is closed or
// ctx is done first.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var zero T
	select {
	case <-ctx.Done():
		return zero, false
	case v, ok := <-ch:
		return v, ok
	}
}

// Sleep pauses for d and reports whether the full duration elapsed with ctx
// still alive.
func Sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return ctx.Err() == nil
	}
}
