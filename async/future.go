// Package async provides single-assignment futures whose continuations are
// scheduled onto an execution context.
package async

import (
	"context"

	"github.com/cqlpager/cqlpager/executor"
	"github.com/cqlpager/cqlpager/internal/xerrors"
	"github.com/cqlpager/cqlpager/internal/xsync"
)

// Future is a read side of asynchronous result
type Future[T any] struct {
	m         xsync.Mutex
	done      chan struct{}
	completed bool
	value     T
	err       error
	callbacks []func()
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		done: make(chan struct{}),
	}
}

// Done is closed when result is available
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Result returns value and error. Must be called after Done is closed.
func (f *Future[T]) Result() (T, error) {
	<-f.done

	return f.value, f.err
}

// Await blocks until result is available or ctx is done.
// Cancellation of ctx does not cancel the operation.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T

		return zero, xerrors.WithStackTrace(ctx.Err())
	}
}

// OnComplete schedules fn onto ec when result is available.
// fn never runs inline in the goroutine which completes the future
// unless ec is executor.Immediate.
func (f *Future[T]) OnComplete(ec executor.Context, fn func(T, error)) {
	callback := func() {
		ec.Run(func() {
			fn(f.value, f.err)
		})
	}
	var completed bool
	f.m.WithLock(func() {
		if f.completed {
			completed = true

			return
		}
		f.callbacks = append(f.callbacks, callback)
	})
	if completed {
		callback()
	}
}

func (f *Future[T]) complete(value T, err error) bool {
	var callbacks []func()
	ok := xsync.WithLock(&f.m, func() bool {
		if f.completed {
			return false
		}
		f.completed = true
		f.value, f.err = value, err
		callbacks, f.callbacks = f.callbacks, nil
		close(f.done)

		return true
	})
	for _, cb := range callbacks {
		cb()
	}

	return ok
}

// Promise is a write side of Future
type Promise[T any] struct {
	future *Future[T]
}

func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{future: newFuture[T]()}
}

func (p *Promise[T]) Future() *Future[T] {
	return p.future
}

// Complete sets successful result. Returns false if result already set.
func (p *Promise[T]) Complete(value T) bool {
	return p.future.complete(value, nil)
}

// Fail sets failed result. Returns false if result already set.
func (p *Promise[T]) Fail(err error) bool {
	var zero T

	return p.future.complete(zero, err)
}

// Resolve sets value or err depending on err is nil
func (p *Promise[T]) Resolve(value T, err error) bool {
	if err != nil {
		return p.Fail(err)
	}

	return p.Complete(value)
}

// Completed returns already succeeded future
func Completed[T any](value T) *Future[T] {
	f := newFuture[T]()
	f.complete(value, nil)

	return f
}

// Failed returns already failed future
func Failed[T any](err error) *Future[T] {
	var zero T
	f := newFuture[T]()
	f.complete(zero, err)

	return f
}

// Go runs blocking f in a new goroutine and returns its future
func Go[T any](ctx context.Context, f func(ctx context.Context) (T, error)) *Future[T] {
	p := NewPromise[T]()
	go func() {
		p.Resolve(f(ctx))
	}()

	return p.Future()
}
