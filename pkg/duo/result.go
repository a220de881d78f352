package duo

// Result represents the outcome of a computation: Ok holds the success
// payload, Err the failure payload. Unlike Option, neither channel
// restricts nil — a nil payload is a legitimate success or failure.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok wraps a success payload. Always succeeds.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err wraps a failure payload. Always succeeds.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// OkUnit builds a success carrying no meaningful payload.
func OkUnit[E any]() Result[Unit, E] { return Ok[Unit, E](Unit{}) }

// ErrUnit builds a failure carrying no meaningful payload.
func ErrUnit[T any]() Result[T, Unit] { return Err[T, Unit](Unit{}) }

// IsOk reports whether the result is a success.
func (r Result[T, E]) IsOk() bool { return r.ok }

// IsErr reports whether the result is a failure.
func (r Result[T, E]) IsErr() bool { return !r.ok }

// Get returns the success payload and whether the result is Ok.
func (r Result[T, E]) Get() (T, bool) { return r.value, r.ok }

// GetErr returns the failure payload and whether the result is Err.
func (r Result[T, E]) GetErr() (E, bool) { return r.err, !r.ok }

// Map transforms the success payload; failures pass through untouched and
// f is not invoked on them. Type-changing transforms use the package-level
// Map.
func (r Result[T, E]) Map(f func(T) T) Result[T, E] {
	if !r.ok {
		return r
	}
	return Ok[T, E](f(r.value))
}

// MapErr transforms the failure payload; successes pass through untouched.
func (r Result[T, E]) MapErr(f func(E) E) Result[T, E] {
	if r.ok {
		return r
	}
	return Err[T, E](f(r.err))
}

// FlatMap returns f's container directly. f is not invoked on failure.
func (r Result[T, E]) FlatMap(f func(T) Result[T, E]) Result[T, E] {
	if !r.ok {
		return r
	}
	return f(r.value)
}

// Filter reports whether the result is Ok and its payload satisfies pred.
func (r Result[T, E]) Filter(pred func(T) bool) bool {
	if !r.ok {
		return false
	}
	return pred(r.value)
}

// Inspect runs f for its side effect on success, returning the result
// unchanged.
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// InspectErr runs f for its side effect on failure, returning the result
// unchanged.
func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

// Match runs exactly one branch. The package-level Match is the folding
// form.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.ok {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

// Unwrap returns the success payload, panicking with ErrUnwrapOnErr on
// failure.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(ErrUnwrapOnErr)
	}
	return r.value
}

// UnwrapErr returns the failure payload, panicking with ErrUnwrapErrOnOk on
// success.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(ErrUnwrapErrOnOk)
	}
	return r.err
}

// UnwrapOr returns the success payload or fallback. Never panics.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

// Expect is Unwrap with a caller-supplied diagnostic: on failure it panics
// with ExpectError carrying msg, discarding the original payload.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(ExpectError{Message: msg})
	}
	return r.value
}

// ExpectErr mirrors Expect for the failure channel.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(ExpectError{Message: msg})
	}
	return r.err
}

func (r Result[T, E]) String() string {
	if r.ok {
		return "Ok(" + renderPayload(r.value) + ")"
	}
	return "Err(" + renderPayload(r.err) + ")"
}

// MarshalJSON collapses the result to whichever payload it holds.
func (r Result[T, E]) MarshalJSON() ([]byte, error) {
	if r.ok {
		return marshalPayload(r.value)
	}
	return marshalPayload(r.err)
}

func (r Result[T, E]) containerString() string { return r.String() }
