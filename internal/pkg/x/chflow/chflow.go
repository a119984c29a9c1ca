// Package chflow holds context-aware channel helpers.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to be done. ok is false when ctx
// is done or ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data to ch unless ctx is done first.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Collect receives exactly n values from ch, stopping early if ctx is done or
// ch is closed. It returns what was received so far.
func Collect[T any](ctx context.Context, ch <-chan T, n int) []T {
	out := make([]T, 0, n)
	for len(out) < n {
		v, ok := Receive(ctx, ch)
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}
