// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confound

import (
	"context"
)

// ValueSource represents a deferred computation which produces a single value.
// Every call to Read re-runs the computation.
type ValueSource[T any] interface {
	Read(context.Context) (T, error)
}

// ValueSourceFunc is a functional implementation of the [ValueSource] interface.
type ValueSourceFunc[T any] func(context.Context) (T, error)

// Read implements the [ValueSource] interface.
func (f ValueSourceFunc[T]) Read(ctx context.Context) (T, error) {
	return f(ctx)
}

// Of wraps the given producer as a [ValueSource]. The producer is not
// called until the returned source is read.
func Of[T any](f func(context.Context) (T, error)) ValueSource[T] {
	return ValueSourceFunc[T](f)
}

// Lit returns a [ValueSource] which always produces v.
func Lit[T any](v T) ValueSource[T] {
	return ValueSourceFunc[T](func(_ context.Context) (T, error) {
		return v, nil
	})
}

// Map returns a [ValueSource] which applies f to the value produced by src.
// If src fails, f is never called and the error is returned as is.
func Map[T, S any](src ValueSource[T], f func(context.Context, T) (S, error)) ValueSource[S] {
	return ValueSourceFunc[S](func(ctx context.Context) (S, error) {
		t, err := src.Read(ctx)
		if err != nil {
			var zero S
			return zero, err
		}
		return f(ctx, t)
	})
}

// FlatMap returns a [ValueSource] which reads src, uses its value to
// construct the next [ValueSource] and, lastly, reads that source.
func FlatMap[T, S any](src ValueSource[T], f func(context.Context, T) ValueSource[S]) ValueSource[S] {
	return ValueSourceFunc[S](func(ctx context.Context) (S, error) {
		t, err := src.Read(ctx)
		if err != nil {
			var zero S
			return zero, err
		}
		return f(ctx, t).Read(ctx)
	})
}

// Must reads src and panics if it fails.
func Must[T any](ctx context.Context, src ValueSource[T]) T {
	v, err := src.Read(ctx)
	if err != nil {
		panic(err)
	}
	return v
}
