// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package confviper exposes keys of an existing viper registry as confound value sources.
//
// The registry is owned by the caller. Nothing in this package asks viper to read
// config files, bind flags or watch for changes; keys are looked up each time a
// source is read.
package confviper

import (
	"github.com/z5labs/confound"

	"github.com/spf13/viper"
)

// Lookup returns a confound.LookupFunc backed by v. Keys use viper's
// dotted key syntax. Only keys which are set, either explicitly, via
// a bound environment variable or via a default, are reported as present.
// Values which viper cannot represent as a string are read as the empty string.
func Lookup(v *viper.Viper) confound.LookupFunc {
	return func(key string) (string, bool) {
		if !v.IsSet(key) {
			return "", false
		}
		return v.GetString(key), true
	}
}

// Key is shorthand for confound.Lookup(Lookup(v), key).
func Key(v *viper.Viper, key string) confound.ValueSource[confound.Value[string]] {
	return confound.Lookup(Lookup(v), key)
}
