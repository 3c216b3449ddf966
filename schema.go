// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confound

import (
	"context"

	"github.com/z5labs/confound/internal/try"

	"golang.org/x/sync/errgroup"
)

// Node is a single element of a [Schema]. Nodes are created with
// [Literal], [Source], [Nested] and [Sequence]. A [Schema] is itself a Node.
type Node interface {
	resolve(context.Context) (any, error)
}

// Schema describes a configuration object. Each field name maps
// to the Node which produces the value for that field.
type Schema map[string]Node

func (s Schema) resolve(ctx context.Context) (any, error) {
	return s.resolveFields(ctx)
}

// resolveFields resolves all fields concurrently.
func (s Schema) resolveFields(ctx context.Context) (map[string]any, error) {
	names := make([]string, 0, len(s))
	nodes := make([]Node, 0, len(s))
	for name, n := range s {
		names = append(names, name)
		nodes = append(nodes, n)
	}

	values, err := resolveAll(ctx, nodes)
	if err != nil {
		return nil, err
	}

	m := make(map[string]any, len(s))
	for i, name := range names {
		m[name] = values[i]
	}
	return m, nil
}

// Obj returns a [ValueSource] which resolves the given [Schema] into a map.
// Nothing is resolved until the returned source is read and every read
// resolves the whole [Schema] again.
//
// Nested schemas resolve to map[string]any, sequences resolve to []any,
// literals resolve to themselves and sources resolve to the value they
// produce. If any node fails, the error from the first failing node is
// returned unchanged.
func Obj(s Schema) ValueSource[map[string]any] {
	return ValueSourceFunc[map[string]any](s.resolveFields)
}

func resolve(ctx context.Context, n Node) (any, error) {
	if n == nil {
		return nil, nil
	}
	return n.resolve(ctx)
}

type literalNode struct {
	value any
}

// Literal returns a Node which always resolves to v. Maps and slices
// passed to Literal are returned as is; they are not walked.
func Literal(v any) Node {
	return literalNode{value: v}
}

func (n literalNode) resolve(_ context.Context) (any, error) {
	return n.value, nil
}

type sourceNode[T any] struct {
	src ValueSource[T]
}

// Source returns a Node which resolves to the value produced by src.
// If src produces a [Value], the node resolves to the underlying value
// when present and to nil when absent.
func Source[T any](src ValueSource[T]) Node {
	return sourceNode[T]{src: src}
}

func (n sourceNode[T]) resolve(ctx context.Context) (any, error) {
	v, err := n.src.Read(ctx)
	if err != nil {
		return nil, err
	}
	if o, ok := any(v).(optional); ok {
		return o.optional(), nil
	}
	return v, nil
}

// Nested returns a Node which resolves s in the same way [Obj] does.
func Nested(s Schema) Node {
	return s
}

type sequenceNode []Node

// Sequence returns a Node which resolves every given Node concurrently
// and collects the results, in order, into a []any.
func Sequence(nodes ...Node) Node {
	return sequenceNode(nodes)
}

func (ns sequenceNode) resolve(ctx context.Context) (any, error) {
	values, err := resolveAll(ctx, ns)
	if err != nil {
		return nil, err
	}
	return values, nil
}

// resolveAll resolves every node concurrently and returns as soon as
// either all of them have succeeded or the first one fails. On failure
// the context shared by the nodes is cancelled and any node still running
// is left to finish in the background; its result is discarded.
func resolveAll(ctx context.Context, nodes []Node) ([]any, error) {
	values := make([]any, len(nodes))
	errc := make(chan error, 1)

	g, gctx := errgroup.WithContext(ctx)
	for i, n := range nodes {
		g.Go(func() error {
			var v any
			err := try.Func(func() (err error) {
				v, err = resolve(gctx, n)
				return
			})()
			if err != nil {
				select {
				case errc <- err:
				default:
				}
				return err
			}
			values[i] = v
			return nil
		})
	}

	waitc := make(chan error, 1)
	go func() {
		waitc <- g.Wait()
	}()

	select {
	case err := <-errc:
		return nil, err
	case err := <-waitc:
		if err != nil {
			return nil, err
		}
		return values, nil
	}
}
