// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try converts panics raised by user supplied code into errors.
package try

import (
	"errors"
	"fmt"
)

// PanicError wraps the value recovered from a panic.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
// It returns nil if the recovered value was not an error.
func (e PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Recover must be deferred. It recovers from a panic and joins
// a [PanicError] with whatever error err already points to.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	perr := PanicError{
		Value: r,
	}
	if *err == nil {
		*err = perr
		return
	}
	*err = errors.Join(*err, perr)
}

// Func wraps f so that a panic in f is returned as a [PanicError].
func Func(f func() error) func() error {
	return func() (err error) {
		defer Recover(&err)
		return f()
	}
}
