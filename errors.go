// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confound

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/z5labs/confound/internal/try"
)

// ErrValueNotSet is matched by [errors.Is] for every [MissingValueError].
var ErrValueNotSet = errors.New("config value not set")

// MissingValueError occurs when a required value is absent. Its error
// message is exactly the message given to [OrDie].
type MissingValueError struct {
	Message string
}

// Error implements the error interface.
func (e MissingValueError) Error() string {
	return e.Message
}

// Is implements the implicit interface used by [errors.Is].
func (e MissingValueError) Is(target error) bool {
	return target == ErrValueNotSet
}

// PanicError occurs when a value source panics while being resolved by [Obj].
type PanicError = try.PanicError

// TypeCoercionError occurs when decoding a resolved config value
// into a struct field whose type does not match the value type,
// up to, coercion.
type TypeCoercionError struct {
	from  reflect.Value
	to    reflect.Value
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.from.Type(), e.to.Type(), e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

// InvalidJsonError occurs if a config value contains invalid JSON.
type InvalidJsonError struct {
	Cause error
}

// Error implements the error interface.
func (e InvalidJsonError) Error() string {
	return fmt.Sprintf("invalid json: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidJsonError) Unwrap() error {
	return e.Cause
}

// InvalidYamlError occurs if a config value contains invalid YAML.
type InvalidYamlError struct {
	Cause error
}

// Error implements the error interface.
func (e InvalidYamlError) Error() string {
	return fmt.Sprintf("invalid yaml: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidYamlError) Unwrap() error {
	return e.Cause
}
