package pipe

import "github.com/ib-77/duo3/pkg/duo"

func MapOption[T, U any](f func(T) U) func(duo.Option[T]) duo.Option[U] {
	return func(o duo.Option[T]) duo.Option[U] {
		return duo.MapOption(o, f)
	}
}

func FlatMapOption[T, U any](f func(T) duo.Option[U]) func(duo.Option[T]) duo.Option[U] {
	return func(o duo.Option[T]) duo.Option[U] {
		return duo.FlatMapOption(o, f)
	}
}

func FilterOption[T any](pred func(T) bool) func(duo.Option[T]) bool {
	return func(o duo.Option[T]) bool {
		return o.Filter(pred)
	}
}

func InspectOption[T any](f func(T)) func(duo.Option[T]) duo.Option[T] {
	return func(o duo.Option[T]) duo.Option[T] {
		return o.Inspect(f)
	}
}

func MatchOption[T, U any](onSome func(T) U, onNone func() U) func(duo.Option[T]) U {
	return func(o duo.Option[T]) U {
		return duo.MatchOption(o, onSome, onNone)
	}
}

func UnwrapOrOption[T any](fallback T) func(duo.Option[T]) T {
	return func(o duo.Option[T]) T {
		return o.UnwrapOr(fallback)
	}
}
