// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confound

import (
	"context"
	"sync"

	"github.com/z5labs/confound/internal/try"

	"golang.org/x/sync/singleflight"
)

type memoSource[T any] struct {
	src   ValueSource[T]
	group singleflight.Group

	mu    sync.Mutex
	done  bool
	value T
}

// Memoize returns a [ValueSource] which reads src until it succeeds once and
// then always produces that value. Concurrent reads share a single read of src.
// Errors are not remembered so a failed read will be retried by the next read.
func Memoize[T any](src ValueSource[T]) ValueSource[T] {
	return &memoSource[T]{src: src}
}

func (m *memoSource[T]) cached() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, m.done
}

// Read implements the [ValueSource] interface. The shared read of src is
// detached from the cancellation of the reader which started it, so one
// reader giving up never fails the others. A reader whose own ctx is done
// returns ctx.Err() without waiting for the shared read.
func (m *memoSource[T]) Read(ctx context.Context) (T, error) {
	if v, ok := m.cached(); ok {
		return v, nil
	}

	rctx := context.WithoutCancel(ctx)
	ch := m.group.DoChan("", func() (any, error) {
		if v, ok := m.cached(); ok {
			return v, nil
		}

		var v T
		err := try.Func(func() (err error) {
			v, err = m.src.Read(rctx)
			return
		})()
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		defer m.mu.Unlock()
		m.value = v
		m.done = true
		return v, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		t, _ := res.Val.(T)
		return t, nil
	}
}
