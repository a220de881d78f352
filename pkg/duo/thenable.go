package duo

import "context"

// Thenable is the duck-typed contract for promise-like values: anything
// exposing a then-shaped continuation hook can feed OptionFrom and
// ResultFrom, regardless of which library produced it. Exactly one of the
// two hooks is expected to fire, once, when the computation settles.
type Thenable interface {
	Then(onResolved func(value any), onRejected func(reason error))
}

type settlement struct {
	value    any
	reason   error
	rejected bool
}

// await blocks until th settles or ctx is done. The first settlement wins.
// await performs no scheduling of its own; the deferred computation was
// created by the caller, it is only adapted here.
func await(ctx context.Context, th Thenable) (any, error) {
	ch := make(chan settlement, 2) // a misbehaving thenable may fire both hooks
	th.Then(
		func(v any) { ch <- settlement{value: v} },
		func(reason error) { ch <- settlement{reason: reason, rejected: true} },
	)

	select {
	case s := <-ch:
		if s.rejected {
			if s.reason != nil {
				return nil, s.reason
			}
			return nil, ErrRejected
		}
		return s.value, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
