// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confound

import "context"

// Value represents a value which may or may not be present. The zero
// Value is absent, which is distinct from a present zero value.
type Value[T any] struct {
	value T
	set   bool
}

// ValueOf returns a present Value.
func ValueOf[T any](v T) Value[T] {
	return Value[T]{
		value: v,
		set:   true,
	}
}

// Value returns the underlying value and whether or not it is present.
func (v Value[T]) Value() (T, bool) {
	return v.value, v.set
}

type optional interface {
	optional() any
}

func (v Value[T]) optional() any {
	if !v.set {
		return nil
	}
	return v.value
}

// Present lifts src into an optional [ValueSource] whose values are always present.
func Present[T any](src ValueSource[T]) ValueSource[Value[T]] {
	return Map(src, func(_ context.Context, t T) (Value[T], error) {
		return ValueOf(t), nil
	})
}

// Or returns a [ValueSource] which substitutes def whenever src produces an absent [Value].
func Or[T any](src ValueSource[Value[T]], def T) ValueSource[T] {
	return Map(src, func(_ context.Context, v Value[T]) (T, error) {
		t, ok := v.Value()
		if !ok {
			return def, nil
		}
		return t, nil
	})
}

// OrDie returns a [ValueSource] which fails with a [MissingValueError],
// carrying msg, whenever src produces an absent [Value].
func OrDie[T any](src ValueSource[Value[T]], msg string) ValueSource[T] {
	return Map(src, func(_ context.Context, v Value[T]) (T, error) {
		t, ok := v.Value()
		if !ok {
			return t, MissingValueError{Message: msg}
		}
		return t, nil
	})
}
