// Package executor provides execution contexts: serialized task queues which
// give every cursor and stream a single logical thread of control.
package executor

import (
	"context"
	"runtime/pprof"
	"strconv"
	"sync/atomic"

	"github.com/cqlpager/cqlpager/internal/xsync"
)

// Context runs tasks one at a time in submission order
type Context interface {
	Run(task func())
}

type ctxContextKey struct{}

// With binds execution context c to ctx
func With(ctx context.Context, c Context) context.Context {
	return context.WithValue(ctx, ctxContextKey{}, c)
}

// FromContext returns execution context bound to ctx
func FromContext(ctx context.Context) (Context, bool) {
	c, ok := ctx.Value(ctxContextKey{}).(Context)

	return c, ok && c != nil
}

// Executor creates serialized execution contexts
type Executor struct {
	name    string
	created atomic.Int64
}

func New(name string) *Executor {
	return &Executor{name: name}
}

// GetOrCreateContext returns the execution context bound to ctx with With
// or creates a new serialized one
func (e *Executor) GetOrCreateContext(ctx context.Context) Context {
	if c, has := FromContext(ctx); has {
		return c
	}

	return e.NewContext()
}

// NewContext always creates a new serialized execution context
func (e *Executor) NewContext() Context {
	return &loop{
		name: e.name + "-" + strconv.FormatInt(e.created.Add(1), 10),
	}
}

// Immediate runs tasks inline in caller goroutine.
// Caller must provide serialization itself.
var Immediate Context = immediate{}

type immediate struct{}

func (immediate) Run(task func()) {
	task()
}

// loop is an on-demand goroutine draining FIFO queue of tasks.
// At most one goroutine drains the queue at any time, it exits when queue is empty.
type loop struct {
	name string

	m       xsync.Mutex
	queue   []func()
	running bool
	idle    chan struct{}
}

func (l *loop) Run(task func()) {
	var start bool
	l.m.WithLock(func() {
		l.queue = append(l.queue, task)
		if !l.running {
			l.running = true
			l.idle = make(chan struct{})
			start = true
		}
	})
	if start {
		go pprof.Do(context.Background(), pprof.Labels("executor", l.name), l.drain)
	}
}

func (l *loop) next() (task func()) {
	l.m.WithLock(func() {
		if len(l.queue) == 0 {
			l.running = false
			close(l.idle)

			return
		}
		task = l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
	})

	return task
}

func (l *loop) drain(context.Context) {
	for task := l.next(); task != nil; task = l.next() {
		task()
	}
}

// Idle returns channel which is closed when all submitted tasks are done.
func Idle(c Context) <-chan struct{} {
	l, ok := c.(*loop)
	if !ok {
		ch := make(chan struct{})
		close(ch)

		return ch
	}

	return xsync.WithLock(&l.m, func() chan struct{} {
		if !l.running {
			ch := make(chan struct{})
			close(ch)

			return ch
		}

		return l.idle
	})
}
