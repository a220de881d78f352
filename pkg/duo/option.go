package duo

// Option represents an optional value: Some holds a non-nil payload, None
// holds nothing. The zero value is None, and equality is structural — every
// None of a given type compares equal.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a value. It panics with ErrInvalidConstruction when value is
// nil-like; a Some must never contain absence.
func Some[T any](value T) Option[T] {
	if IsNil(value) {
		panic(ErrInvalidConstruction)
	}
	return Option[T]{value: value, some: true}
}

// None returns the absent variant.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the option is absent.
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.some }

// Map transforms the value when present. The Some rules apply to f's
// return: a nil-like result panics with ErrInvalidConstruction. f is not
// invoked on None. Type-changing transforms use MapOption.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if !o.some {
		return o
	}
	return Some(f(o.value))
}

// FlatMap returns f's container directly, avoiding double wrapping. f is
// not invoked on None.
func (o Option[T]) FlatMap(f func(T) Option[T]) Option[T] {
	if !o.some {
		return o
	}
	return f(o.value)
}

// Filter reports whether a value is present and satisfies pred. It returns
// a plain boolean, not a container.
func (o Option[T]) Filter(pred func(T) bool) bool {
	if !o.some {
		return false
	}
	return pred(o.value)
}

// Inspect runs f for its side effect when a value is present and returns
// the option unchanged.
func (o Option[T]) Inspect(f func(T)) Option[T] {
	if o.some {
		f(o.value)
	}
	return o
}

// Match runs exactly one branch. MatchOption is the folding form.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.some {
		onSome(o.value)
	} else {
		onNone()
	}
}

// Unwrap returns the value, panicking with ErrUnwrapOnNone on absence.
// Prefer Match or UnwrapOr unless absence was already excluded.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(ErrUnwrapOnNone)
	}
	return o.value
}

// UnwrapOr returns the value when present, otherwise fallback. Never panics.
func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.some {
		return fallback
	}
	return o.value
}

// Zip pairs two options of the same type; absence in either operand
// propagates. Mixed-type pairing uses the package-level Zip.
func (o Option[T]) Zip(other Option[T]) Option[Pair[T, T]] {
	return Zip(o, other)
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return "Some(" + renderPayload(o.value) + ")"
}

// MarshalJSON collapses the option to its semantic value: the payload when
// present (nested containers collapse recursively), null when absent.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.some {
		return []byte("null"), nil
	}
	return marshalPayload(o.value)
}

func (o Option[T]) containerString() string { return o.String() }
