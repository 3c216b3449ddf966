// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confound

import (
	"context"
	"encoding"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Decode returns a [ValueSource] which decodes the map produced by src into a T.
// Struct fields are matched using the "config" struct tag. Strings are decoded
// into [encoding.TextUnmarshaler] implementations and [time.Duration] values.
func Decode[T any](src ValueSource[map[string]any]) ValueSource[T] {
	return Map(src, func(_ context.Context, m map[string]any) (T, error) {
		var v T
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:    "config",
			Result:     &v,
			DecodeHook: decodeHook(),
		})
		if err != nil {
			return v, err
		}
		err = dec.Decode(m)
		return v, err
	})
}

// ObjOf is shorthand for Decode[T](Obj(s)).
func ObjOf[T any](s Schema) ValueSource[T] {
	return Decode[T](Obj(s))
}

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// decodeHook converts resolved config values which mapstructure cannot
// assign directly. Strings and ints become [time.Duration] and strings are
// handed to any [encoding.TextUnmarshaler]. Every other value is passed
// through unchanged.
func decodeHook() mapstructure.DecodeHookFuncValue {
	return func(from, to reflect.Value) (any, error) {
		v, err := convert(from, to.Type())
		if err != nil {
			return nil, TypeCoercionError{
				from:  from,
				to:    to,
				Cause: err,
			}
		}
		return v, nil
	}
}

func convert(from reflect.Value, to reflect.Type) (any, error) {
	switch {
	case to == durationType && from.Kind() == reflect.String:
		return time.ParseDuration(from.String())
	case to == durationType && from.Kind() == reflect.Int:
		return time.Duration(from.Int()), nil
	case from.Kind() == reflect.String && reflect.PointerTo(to).Implements(textUnmarshalerType):
		ptr := reflect.New(to)
		err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(from.String()))
		if err != nil {
			return nil, err
		}
		return ptr.Elem().Interface(), nil
	}
	return from.Interface(), nil
}
