package chain

import (
	"context"

	"github.com/ib-77/duo3/pkg/duo"
)

// Chain wraps a duo.Result with context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	res duo.Result[T, error]
}

// Start creates a new chain from a duo.Result.
func Start[T any](ctx context.Context, res duo.Result[T, error]) *Chain[T] {
	return &Chain[T]{ctx: ctx, res: res}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, duo.Ok[T, error](value))
}

// Result returns the underlying duo.Result.
func (c *Chain[T]) Result() duo.Result[T, error] {
	return c.res
}

// Then composes a function that already returns a duo.Result.
func (c *Chain[T]) Then(onOk func(ctx context.Context, t T) duo.Result[T, error]) *Chain[T] {
	if c.res.IsErr() {
		return c
	}
	v, _ := c.res.Get()
	return &Chain[T]{ctx: c.ctx, res: onOk(c.ctx, v)}
}

// ThenTry composes a function with the conventional (T, error) return.
func (c *Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) *Chain[T] {
	if c.res.IsErr() {
		return c
	}
	v, _ := c.res.Get()
	u, err := try(c.ctx, v)
	if err != nil {
		return &Chain[T]{ctx: c.ctx, res: duo.Err[T, error](err)}
	}
	return &Chain[T]{ctx: c.ctx, res: duo.Ok[T, error](u)}
}

// Map transforms the successful value.
func (c *Chain[T]) Map(onOk func(ctx context.Context, t T) T) *Chain[T] {
	if c.res.IsErr() {
		return c
	}
	v, _ := c.res.Get()
	return &Chain[T]{ctx: c.ctx, res: duo.Ok[T, error](onOk(c.ctx, v))}
}

// Ensure runs side effects on whichever channel is populated without
// changing the result. Nil handlers are skipped.
func (c *Chain[T]) Ensure(onOk func(context.Context, T), onErr func(context.Context, error)) *Chain[T] {
	c.res.Match(
		func(v T) {
			if onOk != nil {
				onOk(c.ctx, v)
			}
		},
		func(err error) {
			if onErr != nil {
				onErr(c.ctx, err)
			}
		},
	)
	return c
}

// Or returns the first successful chain among c and alternative; with no
// success it keeps c's failure.
func (c *Chain[T]) Or(alternative *Chain[T]) *Chain[T] {
	if c.res.IsOk() {
		return c
	}
	if alternative.res.IsOk() {
		return alternative
	}
	return c
}

// And returns the first failing chain among c and required; with no failure
// it returns required.
func (c *Chain[T]) And(required *Chain[T]) *Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Then chains a function that moves the chain to a new value type.
func Then[T, U any](c *Chain[T], onOk func(context.Context, T) duo.Result[U, error]) *Chain[U] {
	return &Chain[U]{ctx: c.ctx, res: duo.FlatMap(c.res, func(v T) duo.Result[U, error] {
		return onOk(c.ctx, v)
	})}
}

// ThenTry chains a (U, error) function across a type change.
func ThenTry[T, U any](c *Chain[T], try func(context.Context, T) (U, error)) *Chain[U] {
	return Then(c, func(ctx context.Context, v T) duo.Result[U, error] {
		u, err := try(ctx, v)
		if err != nil {
			return duo.Err[U, error](err)
		}
		return duo.Ok[U, error](u)
	})
}

// Map chains a pure transformation across a type change.
func Map[T, U any](c *Chain[T], onOk func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{ctx: c.ctx, res: duo.Map(c.res, func(v T) U {
		return onOk(c.ctx, v)
	})}
}

// Finally collapses the chain into a final value via handlers.
func Finally[T, U any](c *Chain[T], onOk func(context.Context, T) U, onErr func(context.Context, error) U) U {
	return duo.Match(c.res,
		func(v T) U { return onOk(c.ctx, v) },
		func(err error) U { return onErr(c.ctx, err) },
	)
}
