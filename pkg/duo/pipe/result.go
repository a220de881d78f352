package pipe

import "github.com/ib-77/duo3/pkg/duo"

func Map[T, U, E any](f func(T) U) func(duo.Result[T, E]) duo.Result[U, E] {
	return func(r duo.Result[T, E]) duo.Result[U, E] {
		return duo.Map(r, f)
	}
}

func MapErr[T, E, F any](f func(E) F) func(duo.Result[T, E]) duo.Result[T, F] {
	return func(r duo.Result[T, E]) duo.Result[T, F] {
		return duo.MapErr(r, f)
	}
}

func FlatMap[T, U, E any](f func(T) duo.Result[U, E]) func(duo.Result[T, E]) duo.Result[U, E] {
	return func(r duo.Result[T, E]) duo.Result[U, E] {
		return duo.FlatMap(r, f)
	}
}

func Filter[T, E any](pred func(T) bool) func(duo.Result[T, E]) bool {
	return func(r duo.Result[T, E]) bool {
		return r.Filter(pred)
	}
}

func Inspect[T, E any](f func(T)) func(duo.Result[T, E]) duo.Result[T, E] {
	return func(r duo.Result[T, E]) duo.Result[T, E] {
		return r.Inspect(f)
	}
}

func InspectErr[T, E any](f func(E)) func(duo.Result[T, E]) duo.Result[T, E] {
	return func(r duo.Result[T, E]) duo.Result[T, E] {
		return r.InspectErr(f)
	}
}

func Match[T, E, U any](onOk func(T) U, onErr func(E) U) func(duo.Result[T, E]) U {
	return func(r duo.Result[T, E]) U {
		return duo.Match(r, onOk, onErr)
	}
}

func UnwrapOr[T, E any](fallback T) func(duo.Result[T, E]) T {
	return func(r duo.Result[T, E]) T {
		return r.UnwrapOr(fallback)
	}
}
