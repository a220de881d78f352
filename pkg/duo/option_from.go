package duo

import (
	"context"
	"reflect"
)

// OptionFrom classifies v into an Option, fully peeling before deciding:
// zero-argument functions are invoked and their return reclassified (thunks
// returning thunks unwind completely), promise-like values are awaited and
// their resolution reclassified (promises of promises likewise). Nil-like
// values collapse to None. Rejection and context cancellation also yield
// None — Option has no error channel, so the reason is discarded by
// contract. A panicking thunk propagates; only ResultFrom intercepts
// panics.
func OptionFrom(ctx context.Context, v any) Option[any] {
	for {
		if thunk, ok := asThunk(v); ok {
			v = thunk()
			continue
		}
		if IsNil(v) {
			return None[any]()
		}
		if th, ok := v.(Thenable); ok {
			resolved, err := await(ctx, th)
			if err != nil {
				return None[any]()
			}
			v = resolved
			continue
		}
		return Some[any](v)
	}
}

// FromPtr adapts a possibly-nil pointer.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOk adapts Go's comma-ok idiom (map lookups, channel receives, type
// assertions).
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok || IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// asThunk matches any non-nil zero-argument single-return function.
func asThunk(v any) (func() any, bool) {
	if f, ok := v.(func() any); ok {
		if f == nil {
			return nil, false
		}
		return func() any { return f() }, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, false
	}
	t := rv.Type()
	if t.NumIn() != 0 || t.IsVariadic() || t.NumOut() != 1 {
		return nil, false
	}
	return func() any { return rv.Call(nil)[0].Interface() }, true
}

// asFallibleThunk matches the Go-native fallible shape func() (X, error).
func asFallibleThunk(v any) (func() (any, error), bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, false
	}
	t := rv.Type()
	if t.NumIn() != 0 || t.IsVariadic() || t.NumOut() != 2 || !t.Out(1).Implements(errType) {
		return nil, false
	}
	return func() (any, error) {
		out := rv.Call(nil)
		err, _ := out[1].Interface().(error)
		return out[0].Interface(), err
	}, true
}
