package future

import (
	"context"

	"github.com/ib-77/duo3/pkg/duo"
)

// ToOption awaits f and collapses the outcome into an Option: rejection,
// context cancellation and nil resolutions all become None. The reason is
// discarded — Option has no error channel; use ToResult to keep it.
func ToOption[T any](ctx context.Context, f *Future[T]) duo.Option[T] {
	v, err := f.Await(ctx)
	if err != nil || duo.IsNil(v) {
		return duo.None[T]()
	}
	return duo.Some(v)
}

// ToResult awaits f, capturing the rejection or cancellation reason in the
// failure channel.
func ToResult[T any](ctx context.Context, f *Future[T]) duo.Result[T, error] {
	v, err := f.Await(ctx)
	if err != nil {
		return duo.Err[T, error](err)
	}
	return duo.Ok[T, error](v)
}
