// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confound

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/z5labs/confound"

type traceOptions struct {
	tp trace.TracerProvider
}

// TraceOption configures a source returned by [Traced].
type TraceOption func(*traceOptions)

// TracerProvider sets the trace.TracerProvider used to create spans.
// The global provider is used by default.
func TracerProvider(tp trace.TracerProvider) TraceOption {
	return func(to *traceOptions) {
		to.tp = tp
	}
}

// Traced returns a [ValueSource] which wraps every read of src in a span named name.
// A failed read is recorded on the span.
func Traced[T any](name string, src ValueSource[T], opts ...TraceOption) ValueSource[T] {
	to := &traceOptions{}
	for _, opt := range opts {
		opt(to)
	}

	return ValueSourceFunc[T](func(ctx context.Context) (T, error) {
		tp := to.tp
		if tp == nil {
			tp = otel.GetTracerProvider()
		}

		spanCtx, span := tp.Tracer(instrumentationName).Start(ctx, name)
		defer span.End()

		v, err := src.Read(spanCtx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return v, err
	})
}
