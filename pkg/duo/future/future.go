package future

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNoReason stands in when a future is rejected with a nil error.
var ErrNoReason = errors.New("future: rejected with no reason")

// Future is a settle-once deferred value of type T.
type Future[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	settle    sync.Once
	done      chan struct{}
	value     T
	err       error
}

// New returns an unsettled future.
func New[T any]() *Future[T] {
	return &Future[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

// Resolved returns a future already settled with v.
func Resolved[T any](v T) *Future[T] {
	f := New[T]()
	f.Resolve(v)
	return f
}

// Rejected returns a future already settled with err.
func Rejected[T any](err error) *Future[T] {
	f := New[T]()
	f.Reject(err)
	return f
}

// Go runs fn in its own goroutine and settles the future from its return.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := New[T]()
	go func() {
		v, err := fn(ctx)
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(v)
	}()
	return f
}

// Resolve settles the future with v and reports whether this call settled
// it; a future settles exactly once.
func (f *Future[T]) Resolve(v T) bool {
	settled := false
	f.settle.Do(func() {
		f.value = v
		settled = true
		close(f.done)
	})
	return settled
}

// Reject settles the future with err and reports whether this call settled
// it. A nil err is replaced by ErrNoReason so a rejection is never mistaken
// for a resolution.
func (f *Future[T]) Reject(err error) bool {
	if err == nil {
		err = ErrNoReason
	}
	settled := false
	f.settle.Do(func() {
		f.err = err
		settled = true
		close(f.done)
	})
	return settled
}

// Await blocks until the future settles or ctx is done, whichever comes
// first.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed once the future settles.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

func (f *Future[T]) Id() uuid.UUID { return f.id }

// CreatedAt is the creation time (UTC).
func (f *Future[T]) CreatedAt() time.Time { return f.createdAt }

// Then registers continuation hooks, satisfying the duo.Thenable contract.
// The matching hook fires on its own goroutine once the future settles,
// preserving the settle order and timing; nil hooks are skipped.
func (f *Future[T]) Then(onResolved func(value any), onRejected func(reason error)) {
	go func() {
		<-f.done
		if f.err != nil {
			if onRejected != nil {
				onRejected(f.err)
			}
			return
		}
		if onResolved != nil {
			onResolved(f.value)
		}
	}()
}
