package stream

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/cqlpager/cqlpager/executor"
	"github.com/cqlpager/cqlpager/internal/stack"
	"github.com/cqlpager/cqlpager/internal/xsync"
	"github.com/cqlpager/cqlpager/result"
	"github.com/cqlpager/cqlpager/trace"
)

// Pager is a cursor side of stream
type Pager interface {
	// Next consumes buffered row without I/O
	Next() (result.Row, bool)

	FullyFetched() bool

	// Fetch requests the next page into the buffer. done is called on ec.
	Fetch(ctx context.Context, ec executor.Context, done func(err error))
}

var _ result.Stream = (*Stream)(nil)

// Stream emits rows of pager with pause/resume demand
type Stream struct {
	id      string
	ctx     context.Context //nolint:containedctx
	ec      executor.Context
	pager   Pager
	trace   *trace.Stream
	release func()
	initErr error

	m                xsync.Mutex
	handler          func(result.Row)
	endHandler       func()
	exceptionHandler func(error)

	paused  atomic.Bool
	started atomic.Bool
	emitted atomic.Int64

	// owned by ec
	fetching   bool
	terminated bool

	done chan struct{}
	err  error
}

type Option func(s *Stream)

func WithTrace(t *trace.Stream) Option {
	return func(s *Stream) {
		if t != nil {
			s.trace = t
		}
	}
}

// WithRelease defines callback which is called once before terminal event
func WithRelease(release func()) Option {
	return func(s *Stream) {
		if release != nil {
			s.release = release
		}
	}
}

// New makes stream over pager. Emission starts on registration of handler.
func New(ctx context.Context, ec executor.Context, pager Pager, opts ...Option) *Stream {
	s := &Stream{
		id:      uuid.NewString(),
		ctx:     ctx,
		ec:      ec,
		pager:   pager,
		trace:   &trace.Stream{},
		release: func() {},
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// Failed makes stream which fails with err on handler registration.
// Nothing is released on its failure.
func Failed(ctx context.Context, ec executor.Context, err error, opts ...Option) *Stream {
	s := New(ctx, ec, nil, opts...)
	s.release = func() {}
	s.initErr = err

	return s
}

func (s *Stream) ID() string {
	return s.id
}

func (s *Stream) Handler(handler func(result.Row)) result.Stream {
	s.m.WithLock(func() {
		s.handler = handler
	})
	if handler == nil {
		return s
	}
	if s.started.CompareAndSwap(false, true) {
		ctx := s.ctx
		trace.StreamOnStart(s.trace, &ctx,
			stack.FunctionID("github.com/cqlpager/cqlpager/internal/stream.(*Stream).Handler"),
			s.id,
		)
	}
	s.ec.Run(s.drain)

	return s
}

func (s *Stream) EndHandler(handler func()) result.Stream {
	s.m.WithLock(func() {
		s.endHandler = handler
	})

	return s
}

func (s *Stream) ExceptionHandler(handler func(err error)) result.Stream {
	s.m.WithLock(func() {
		s.exceptionHandler = handler
	})

	return s
}

func (s *Stream) Pause() result.Stream {
	if s.paused.CompareAndSwap(false, true) {
		ctx := s.ctx
		trace.StreamOnPause(s.trace, &ctx,
			stack.FunctionID("github.com/cqlpager/cqlpager/internal/stream.(*Stream).Pause"),
			s.id, int(s.emitted.Load()),
		)
	}

	return s
}

func (s *Stream) Resume() result.Stream {
	if s.paused.CompareAndSwap(true, false) {
		ctx := s.ctx
		trace.StreamOnResume(s.trace, &ctx,
			stack.FunctionID("github.com/cqlpager/cqlpager/internal/stream.(*Stream).Resume"),
			s.id, int(s.emitted.Load()),
		)
		s.ec.Run(s.drain)
	}

	return s
}

func (s *Stream) Done() <-chan struct{} {
	return s.done
}

func (s *Stream) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

// Emitted returns count of rows passed to handler
func (s *Stream) Emitted() int {
	return int(s.emitted.Load())
}

func (s *Stream) currentHandler() func(result.Row) {
	return xsync.WithLock(&s.m, func() func(result.Row) {
		return s.handler
	})
}

// drain emits buffered rows until demand or buffer is over.
// Must be called on ec only.
func (s *Stream) drain() {
	if s.initErr != nil {
		if !s.terminated {
			s.fail(s.initErr)
		}

		return
	}
	for !s.terminated && !s.fetching && !s.paused.Load() {
		handler := s.currentHandler()
		if handler == nil {
			return
		}
		if row, has := s.pager.Next(); has {
			s.emitted.Add(1)
			handler(row)

			continue
		}
		if s.pager.FullyFetched() {
			s.end()

			return
		}
		s.fetching = true
		s.pager.Fetch(s.ctx, s.ec, func(err error) {
			s.fetching = false
			if err != nil {
				s.fail(err)

				return
			}
			s.drain()
		})

		return
	}
}

func (s *Stream) end() {
	s.terminated = true
	s.release()

	ctx := s.ctx
	trace.StreamOnEnd(s.trace, &ctx,
		stack.FunctionID("github.com/cqlpager/cqlpager/internal/stream.(*Stream).end"),
		s.id, int(s.emitted.Load()),
	)

	handler := xsync.WithLock(&s.m, func() func() {
		return s.endHandler
	})
	defer close(s.done)
	if handler != nil {
		handler()
	}
}

func (s *Stream) fail(err error) {
	s.terminated = true
	s.err = err
	s.release()

	ctx := s.ctx
	trace.StreamOnFail(s.trace, &ctx,
		stack.FunctionID("github.com/cqlpager/cqlpager/internal/stream.(*Stream).fail"),
		s.id, int(s.emitted.Load()), err,
	)

	handler := xsync.WithLock(&s.m, func() func(error) {
		return s.exceptionHandler
	})
	defer close(s.done)
	if handler != nil {
		handler(err)
	}
}
