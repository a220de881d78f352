package duo

import "errors"

// Pair holds two zipped payloads.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip combines two options into an option of their pair; absence in either
// operand propagates.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if a.some && b.some {
		return Some(Pair[A, B]{First: a.value, Second: b.value})
	}
	return None[Pair[A, B]]()
}

// All unwraps every option left to right, short-circuiting on the first
// None. An empty input yields Some of an empty slice.
func All[T any](opts []Option[T]) Option[[]T] {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if !o.some {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// Any returns the first present option, or None when there is none.
func Any[T any](opts []Option[T]) Option[T] {
	for _, o := range opts {
		if o.some {
			return o
		}
	}
	return None[T]()
}

// MapOption is the type-changing form of Option.Map.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(f(o.value))
}

// FlatMapOption is the type-changing form of Option.FlatMap.
func FlatMapOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return f(o.value)
}

// MatchOption folds an option into a single value; exactly one branch runs.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// Map is the type-changing form of Result.Map.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return Ok[U, E](f(r.value))
}

// MapErr is the type-changing form of Result.MapErr — the point where an
// error type widens when chaining heterogeneous failures.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](f(r.err))
}

// FlatMap is the type-changing form of Result.FlatMap.
func FlatMap[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return f(r.value)
}

// Match folds a result into a single value; exactly one branch runs.
func Match[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Partition splits results into successes and failures in a single pass,
// preserving encounter order in both buckets. Unlike All and Any it never
// short-circuits.
func Partition[T, E any](results []Result[T, E]) ([]T, []E) {
	values := make([]T, 0, len(results))
	failures := make([]E, 0, len(results))
	for _, r := range results {
		if r.ok {
			values = append(values, r.value)
		} else {
			failures = append(failures, r.err)
		}
	}
	return values, failures
}

// Collect unwraps every result, joining all failure payloads into a single
// error. It inspects the whole input; use Partition to keep the buckets
// apart instead.
func Collect[T any](results []Result[T, error]) Result[[]T, error] {
	values := make([]T, 0, len(results))

	var joined error
	for _, r := range results {
		if !r.ok {
			errs := append(GetErrors(joined), r.err)
			joined = errors.Join(errs...)
			continue
		}
		values = append(values, r.value)
	}

	if joined != nil {
		return Err[[]T, error](joined)
	}
	return Ok[[]T, error](values)
}
