// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confound

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// BoolFromString parses the value produced by src with [strconv.ParseBool].
func BoolFromString(src ValueSource[string]) ValueSource[bool] {
	return Map(src, func(_ context.Context, s string) (bool, error) {
		return strconv.ParseBool(s)
	})
}

// IntFromString parses the value produced by src with [strconv.Atoi].
func IntFromString(src ValueSource[string]) ValueSource[int] {
	return Map(src, func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
}

// Int64FromString parses the value produced by src as a base 10 int64.
func Int64FromString(src ValueSource[string]) ValueSource[int64] {
	return Map(src, func(_ context.Context, s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

// Float64FromString parses the value produced by src as a float64.
func Float64FromString(src ValueSource[string]) ValueSource[float64] {
	return Map(src, func(_ context.Context, s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// DurationFromString parses the value produced by src with [time.ParseDuration].
func DurationFromString(src ValueSource[string]) ValueSource[time.Duration] {
	return Map(src, func(_ context.Context, s string) (time.Duration, error) {
		return time.ParseDuration(s)
	})
}

// Split slices the value produced by src into all substrings separated by sep.
// Surrounding whitespace is trimmed from each substring and an empty value
// produces an empty slice.
func Split(src ValueSource[string], sep string) ValueSource[[]string] {
	return Map(src, func(_ context.Context, s string) ([]string, error) {
		if s == "" {
			return []string{}, nil
		}
		ss := strings.Split(s, sep)
		for i := range ss {
			ss[i] = strings.TrimSpace(ss[i])
		}
		return ss, nil
	})
}

// JsonFromString unmarshals the JSON value produced by src into a T.
func JsonFromString[T any](src ValueSource[string]) ValueSource[T] {
	return Map(src, func(_ context.Context, s string) (T, error) {
		var v T
		err := json.Unmarshal([]byte(s), &v)
		if err != nil {
			return v, InvalidJsonError{Cause: err}
		}
		return v, nil
	})
}

// YamlFromString unmarshals the YAML value produced by src into a T.
func YamlFromString[T any](src ValueSource[string]) ValueSource[T] {
	return Map(src, func(_ context.Context, s string) (T, error) {
		var v T
		err := yaml.Unmarshal([]byte(s), &v)
		if err != nil {
			return v, InvalidYamlError{Cause: err}
		}
		return v, nil
	})
}
