// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package confound provides a declarative, composable approach to resolving configuration.
//
// The package is built around two concepts:
//
//   - ValueSource[T]: a deferred unit of computation which produces a single value each time it is read
//   - Schema: a tree describing a configuration object whose leaves are literals, value sources or
//     sequences of either
//
// # Value Sources
//
// A ValueSource never does any work until it is read and it never remembers what it
// produced. Reading it twice runs the underlying computation twice which means an
// environment variable is looked up at read time, not at construction time.
//
//	name := confound.EnvOrDie("APP_NAME")
//	port := confound.IntFromString(confound.EnvOr("APP_PORT", "8080"))
//
// # Functional Composition
//
//   - Map: transform the value produced by a source
//   - FlatMap: use the value produced by one source to choose the next source to read
//   - Or: substitute a default value when an optional source is absent
//   - OrDie: fail with a MissingValueError when an optional source is absent
//
// # Schemas
//
// Obj resolves a Schema into a map[string]any. Every field, nested schema and sequence
// element is resolved concurrently and the first failure fails the whole resolution.
//
//	cfg := confound.Obj(confound.Schema{
//	    "name": confound.Source(confound.EnvOrDie("APP_NAME")),
//	    "nested": confound.Schema{
//	        "id":  confound.Source(confound.Env("APP_ID")),
//	        "age": confound.Literal(1),
//	    },
//	})
//
// ObjOf decodes the resolved map into a struct using the "config" struct tag.
package confound
