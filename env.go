// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confound

import (
	"context"
	"os"
)

// LookupFunc reports the value stored under a key and whether the key exists.
// [os.LookupEnv] is a LookupFunc.
type LookupFunc func(key string) (string, bool)

// Lookup returns a [ValueSource] which calls f with key every time it is read.
func Lookup(f LookupFunc, key string) ValueSource[Value[string]] {
	return ValueSourceFunc[Value[string]](func(_ context.Context) (Value[string], error) {
		s, ok := f(key)
		if !ok {
			return Value[string]{}, nil
		}
		return ValueOf(s), nil
	})
}

// Env returns a [ValueSource] for the environment variable, name. The variable
// is looked up when the source is read. An unset variable produces an absent
// [Value] while a variable set to the empty string is present.
func Env(name string) ValueSource[Value[string]] {
	return Lookup(os.LookupEnv, name)
}

// EnvOr is shorthand for Or(Env(name), def).
func EnvOr(name string, def string) ValueSource[string] {
	return Or(Env(name), def)
}

// EnvOrDie is shorthand for OrDie(Env(name), "Expected env var "+name).
func EnvOrDie(name string) ValueSource[string] {
	return OrDie(Env(name), "Expected env var "+name)
}
