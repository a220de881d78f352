package duo

import "context"

// ResultFrom classifies v into a Result, mirroring OptionFrom but with an
// error channel: a panicking thunk is recovered and its panic value becomes
// the failure payload, a fallible func() (X, error) thunk routes its error
// there, and a rejected or cancelled promise-like contributes its reason.
// Plain values — nil included — are success; ResultFrom never collapses nil
// to absence.
func ResultFrom(ctx context.Context, v any) Result[any, any] {
	return classifyResult(ctx, v, func(reason any) any { return reason })
}

// ResultFromMapped is ResultFrom with every captured failure reason passed
// through mapErr to build the failure payload.
func ResultFromMapped[E any](ctx context.Context, v any, mapErr func(reason any) E) Result[any, E] {
	return classifyResult(ctx, v, mapErr)
}

// ResultFromExpected is ResultFrom with a fixed failure payload replacing
// whatever reason was captured.
func ResultFromExpected[E any](ctx context.Context, v any, expected E) Result[any, E] {
	return classifyResult(ctx, v, func(any) E { return expected })
}

func classifyResult[E any](ctx context.Context, v any, mapErr func(reason any) E) Result[any, E] {
	for {
		if thunk, ok := asThunk(v); ok {
			out, reason, panicked := protect(thunk)
			if panicked {
				return Err[any, E](mapErr(reason))
			}
			v = out
			continue
		}
		if thunk, ok := asFallibleThunk(v); ok {
			out, err := thunk()
			if err != nil {
				return Err[any, E](mapErr(err))
			}
			v = out
			continue
		}
		if th, ok := v.(Thenable); ok {
			resolved, err := await(ctx, th)
			if err != nil {
				return Err[any, E](mapErr(err))
			}
			v = resolved
			continue
		}
		return Ok[any, E](v)
	}
}

func protect(f func() any) (out any, reason any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			reason = r
			panicked = true
		}
	}()
	out = f()
	return
}

// Try folds a conventional (value, error) call into a Result.
func Try[T any](ctx context.Context, f func(ctx context.Context) (T, error)) Result[T, error] {
	v, err := f(ctx)
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}
