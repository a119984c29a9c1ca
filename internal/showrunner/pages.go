package showrunner

import (
	"context"
	"iter"
)

// PageFunc fetches one page of a paginated source. Page numbers start at the
// value given to Pages.
type PageFunc[T any] func(ctx context.Context, page int) ([]T, error)

// Pages lazily walks a paginated source. The sequence ends after the first
// empty page, or after yielding the first error. Each call to the returned
// sequence starts again from first.
func Pages[T any](ctx context.Context, first int, fetch PageFunc[T]) iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		for page := first; ; page++ {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}

			items, err := fetch(ctx, page)
			if err != nil {
				yield(nil, err)
				return
			}

			if len(items) == 0 {
				return
			}

			if !yield(items, nil) {
				return
			}
		}
	}
}

// Items flattens a page sequence.
func Items[T any](pages iter.Seq2[[]T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for page, err := range pages {
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}

			for _, item := range page {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

// Slice turns an already fetched list into a sequence.
func Slice[T any](items []T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Fail is a sequence that yields err once.
func Fail[T any](err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}
