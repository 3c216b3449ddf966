// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confound

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func countingSource(n *atomic.Int64, v string) ValueSource[string] {
	return Of(func(ctx context.Context) (string, error) {
		n.Add(1)
		return v, nil
	})
}

func TestOf(t *testing.T) {
	t.Run("will not call the producer until read", func(t *testing.T) {
		var calls atomic.Int64
		src := countingSource(&calls, "1")
		require.Zero(t, calls.Load())

		v, err := src.Read(context.Background())
		require.NoError(t, err)
		require.Equal(t, "1", v)
		require.Equal(t, int64(1), calls.Load())
	})

	t.Run("will call the producer on every read", func(t *testing.T) {
		var calls atomic.Int64
		src := countingSource(&calls, "1")

		for range 3 {
			_, err := src.Read(context.Background())
			require.NoError(t, err)
		}
		require.Equal(t, int64(3), calls.Load())
	})
}

func TestLit(t *testing.T) {
	testCases := []struct {
		name  string
		value any
	}{
		{
			name:  "string",
			value: "hello",
		},
		{
			name:  "int",
			value: 42,
		},
		{
			name:  "nil",
			value: nil,
		},
		{
			name:  "slice",
			value: []string{"localhost:9092", "localhost:9093"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Lit(tc.value).Read(context.Background())
			require.NoError(t, err)
			require.Equal(t, tc.value, v)
		})
	}
}

func TestMap(t *testing.T) {
	testCases := []struct {
		name        string
		src         ValueSource[string]
		mapper      func(context.Context, string) (int, error)
		expectedVal int
		expectErr   error
	}{
		{
			name: "maps value",
			src:  Lit("42"),
			mapper: func(_ context.Context, s string) (int, error) {
				return strconv.Atoi(s)
			},
			expectedVal: 42,
		},
		{
			name: "propagates source error",
			src: Of(func(ctx context.Context) (string, error) {
				return "", errors.New("read failed")
			}),
			mapper: func(_ context.Context, s string) (int, error) {
				panic("mapper should not be called")
			},
			expectErr: errors.New("read failed"),
		},
		{
			name: "propagates mapper error",
			src:  Lit("test"),
			mapper: func(_ context.Context, s string) (int, error) {
				return 0, errors.New("map failed")
			},
			expectErr: errors.New("map failed"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Map(tc.src, tc.mapper).Read(context.Background())
			if tc.expectErr != nil {
				require.Equal(t, tc.expectErr, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedVal, v)
		})
	}

	t.Run("with identity behaves like the underlying source", func(t *testing.T) {
		src := Lit("hello")
		id := Map(src, func(_ context.Context, s string) (string, error) {
			return s, nil
		})

		want, err := src.Read(context.Background())
		require.NoError(t, err)

		got, err := id.Read(context.Background())
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("composes like a single map of the composed functions", func(t *testing.T) {
		f := func(_ context.Context, s string) (int, error) { return len(s), nil }
		g := func(_ context.Context, n int) (int, error) { return n * 2, nil }

		chained, err := Map(Map(Lit("hello"), f), g).Read(context.Background())
		require.NoError(t, err)

		composed, err := Map(Lit("hello"), func(ctx context.Context, s string) (int, error) {
			n, _ := f(ctx, s)
			return g(ctx, n)
		}).Read(context.Background())
		require.NoError(t, err)

		require.Equal(t, composed, chained)
		require.Equal(t, 10, chained)
	})

	t.Run("will read the underlying source once per read", func(t *testing.T) {
		var calls atomic.Int64
		src := Map(countingSource(&calls, "1"), func(_ context.Context, s string) (string, error) {
			return s + s, nil
		})

		v, err := src.Read(context.Background())
		require.NoError(t, err)
		require.Equal(t, "11", v)
		require.Equal(t, int64(1), calls.Load())
	})
}

func TestFlatMap(t *testing.T) {
	t.Run("will read the source chosen by the underlying value", func(t *testing.T) {
		sources := map[string]ValueSource[int]{
			"a": Lit(1),
			"b": Lit(2),
		}
		src := FlatMap(Lit("b"), func(_ context.Context, k string) ValueSource[int] {
			return sources[k]
		})

		v, err := src.Read(context.Background())
		require.NoError(t, err)
		require.Equal(t, 2, v)
	})

	t.Run("will propagate the underlying source error", func(t *testing.T) {
		readErr := errors.New("read failed")
		src := FlatMap(
			Of(func(ctx context.Context) (string, error) {
				return "", readErr
			}),
			func(_ context.Context, s string) ValueSource[int] {
				panic("binder should not be called")
			},
		)

		_, err := src.Read(context.Background())
		require.Equal(t, readErr, err)
	})

	t.Run("will propagate the bound source error", func(t *testing.T) {
		bindErr := errors.New("bind failed")
		src := FlatMap(Lit("key"), func(_ context.Context, s string) ValueSource[int] {
			return Of(func(ctx context.Context) (int, error) {
				return 0, bindErr
			})
		})

		_, err := src.Read(context.Background())
		require.Equal(t, bindErr, err)
	})

	t.Run("will read each source once per read", func(t *testing.T) {
		var outer, inner atomic.Int64
		src := FlatMap(countingSource(&outer, "x"), func(_ context.Context, s string) ValueSource[string] {
			return countingSource(&inner, s+"y")
		})

		v, err := src.Read(context.Background())
		require.NoError(t, err)
		require.Equal(t, "xy", v)
		require.Equal(t, int64(1), outer.Load())
		require.Equal(t, int64(1), inner.Load())
	})
}

func TestMust(t *testing.T) {
	t.Run("will return the value", func(t *testing.T) {
		require.Equal(t, 123, Must(context.Background(), Lit(123)))
	})

	t.Run("will panic", func(t *testing.T) {
		require.Panics(t, func() {
			Must(context.Background(), EnvOrDie("CONFOUND_TEST_MUST_UNSET"))
		})
	})
}
