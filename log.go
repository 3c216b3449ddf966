// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confound

import (
	"context"
	"log/slog"
	"time"

	"github.com/z5labs/confound/internal/slogfield"
)

type logOptions struct {
	handler   slog.Handler
	sensitive bool
}

// LogOption configures a source returned by [Logged].
type LogOption func(*logOptions)

// LogHandler sets the slog.Handler reads are logged to.
// The handler of [slog.Default] is used by default.
func LogHandler(h slog.Handler) LogOption {
	return func(lo *logOptions) {
		lo.handler = h
	}
}

// Sensitive masks the value produced by the source in every log record.
func Sensitive() LogOption {
	return func(lo *logOptions) {
		lo.sensitive = true
	}
}

// Logged returns a [ValueSource] which logs every read of src. Successful
// reads are logged at debug level and failed reads at error level.
// The error returned by src is never changed.
func Logged[T any](name string, src ValueSource[T], opts ...LogOption) ValueSource[T] {
	lo := &logOptions{}
	for _, opt := range opts {
		opt(lo)
	}

	return ValueSourceFunc[T](func(ctx context.Context) (T, error) {
		h := lo.handler
		if h == nil {
			h = slog.Default().Handler()
		}
		log := slog.New(h).With(slogfield.Source(name))

		start := time.Now()
		v, err := src.Read(ctx)
		took := slogfield.Duration(time.Since(start))
		if err != nil {
			log.ErrorContext(ctx, "failed to read config value", took, slogfield.Error(err))
			return v, err
		}

		value := slogfield.Value(v)
		if lo.sensitive {
			value = slogfield.MaskedValue()
		}
		log.DebugContext(ctx, "read config value", took, value)
		return v, nil
	})
}
