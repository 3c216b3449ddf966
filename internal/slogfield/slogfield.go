// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slogfield provides the slog.Attr keys shared by everything which logs config reads.
package slogfield

import (
	"log/slog"
	"time"
)

// Source returns an slog.Attr naming the value source being read.
func Source(name string) slog.Attr {
	return slog.String("config.source", name)
}

// Value returns an slog.Attr for a resolved config value.
func Value(v any) slog.Attr {
	return slog.Any("config.value", v)
}

// MaskedValue returns an slog.Attr which stands in for a sensitive config value.
func MaskedValue() slog.Attr {
	return slog.String("config.value", "****")
}

// Duration returns an slog.Attr for how long a read took.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("config.duration", d)
}

// Error returns an slog.Attr for a error.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
