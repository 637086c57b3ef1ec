package cursor

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/cqlpager/cqlpager/async"
	"github.com/cqlpager/cqlpager/config"
	"github.com/cqlpager/cqlpager/executor"
	"github.com/cqlpager/cqlpager/internal/stack"
	"github.com/cqlpager/cqlpager/internal/stream"
	"github.com/cqlpager/cqlpager/internal/xerrors"
	"github.com/cqlpager/cqlpager/result"
	"github.com/cqlpager/cqlpager/source"
	"github.com/cqlpager/cqlpager/trace"
)

var _ result.Set = (*Cursor)(nil)

// Cursor is a forward-only cursor over chain of pages.
// Page and fullyFetched are owned by the consumption call which holds inFlight.
type Cursor struct {
	id           string
	cfg          *config.Config
	page         source.Page
	fullyFetched bool
	inFlight     atomic.Bool
}

func New(ctx context.Context, page source.Page, cfg *config.Config) *Cursor {
	if cfg == nil {
		cfg = config.New()
	}
	onDone := trace.CursorOnNew(cfg.Trace(), &ctx,
		stack.FunctionID("github.com/cqlpager/cqlpager/internal/cursor.New"),
	)
	c := &Cursor{
		id:           uuid.NewString(),
		cfg:          cfg,
		page:         page,
		fullyFetched: !page.HasMorePages(),
	}
	onDone(c.id, page.Remaining(), c.fullyFetched)

	return c
}

func (c *Cursor) ID() string {
	return c.id
}

func (c *Cursor) IsFullyFetched() bool {
	return c.fullyFetched
}

func (c *Cursor) AvailableWithoutFetching() int {
	return c.page.Remaining()
}

// IsExhausted consumes a row of buffer only when buffer is reported empty
// and page still returns row. Such row is lost as in underlying page.
func (c *Cursor) IsExhausted() bool {
	if !c.fullyFetched || c.page.Remaining() != 0 {
		return false
	}
	_, has := c.page.One()

	return !has
}

func (c *Cursor) Columns() result.Columns {
	return c.page.Columns()
}

func (c *Cursor) WasApplied() bool {
	return c.page.WasApplied()
}

func (c *Cursor) acquire(ctx context.Context, call stack.Caller) bool {
	if c.inFlight.CompareAndSwap(false, true) {
		return true
	}
	trace.CursorOnMisusage(c.cfg.Trace(), &ctx, call, c.id)

	return false
}

func (c *Cursor) release() {
	c.inFlight.Store(false)
}

// next consumes buffered row. Rows which page reports as remaining but
// does not return are treated as absent.
func (c *Cursor) next() (result.Row, bool) {
	if c.page.Remaining() == 0 {
		return nil, false
	}

	return c.page.One()
}

// fetch requests the next page. On success buffer is replaced by fetched page,
// on failure cursor state stays unchanged. done is called on ec.
func (c *Cursor) fetch(ctx context.Context, ec executor.Context, done func(err error)) {
	onDone := trace.CursorOnFetch(c.cfg.Trace(), &ctx,
		stack.FunctionID("github.com/cqlpager/cqlpager/internal/cursor.(*Cursor).fetch"),
		c.id,
	)
	async.Go(ctx, c.page.FetchNextPage).OnComplete(ec, func(page source.Page, err error) {
		if err == nil && page == nil {
			err = result.ErrNilPage
		}
		if err != nil {
			err = xerrors.WithStackTrace(result.NewFetchError(err))
			onDone(c.page.Remaining(), c.fullyFetched, err)
			done(err)

			return
		}
		c.page = page
		c.fullyFetched = !page.HasMorePages()
		onDone(page.Remaining(), c.fullyFetched, nil)
		done(nil)
	})
}

func (c *Cursor) FetchMoreResults(ctx context.Context) *async.Future[struct{}] {
	call := stack.FunctionID("github.com/cqlpager/cqlpager/internal/cursor.(*Cursor).FetchMoreResults")
	if !c.acquire(ctx, call) {
		return async.Failed[struct{}](xerrors.WithStackTrace(result.ErrConcurrentConsumption))
	}
	if c.fullyFetched {
		c.release()

		return async.Completed(struct{}{})
	}
	if c.page.Remaining() > 0 {
		c.release()

		return async.Failed[struct{}](xerrors.WithStackTrace(result.ErrPageNotDrained))
	}

	p := async.NewPromise[struct{}]()
	c.fetch(ctx, c.cfg.Executor().GetOrCreateContext(ctx), func(err error) {
		c.release()
		p.Resolve(struct{}{}, err)
	})

	return p.Future()
}

func (c *Cursor) One(ctx context.Context) *async.Future[result.Row] {
	call := stack.FunctionID("github.com/cqlpager/cqlpager/internal/cursor.(*Cursor).One")
	if !c.acquire(ctx, call) {
		return async.Failed[result.Row](xerrors.WithStackTrace(result.ErrConcurrentConsumption))
	}

	onDone := trace.CursorOnOne(c.cfg.Trace(), &ctx, call, c.id)
	p := async.NewPromise[result.Row]()
	c.loadOne(ctx, nil, func(row result.Row, err error) {
		c.release()
		onDone(row != nil, err)
		p.Resolve(row, err)
	})

	return p.Future()
}

// loadOne skips empty pages which have continuation
func (c *Cursor) loadOne(ctx context.Context, ec executor.Context, done func(result.Row, error)) {
	if row, has := c.next(); has {
		done(row, nil)

		return
	}
	if c.fullyFetched {
		done(nil, nil)

		return
	}
	if ec == nil {
		ec = c.cfg.Executor().GetOrCreateContext(ctx)
	}
	c.fetch(ctx, ec, func(err error) {
		if err != nil {
			done(nil, err)

			return
		}
		c.loadOne(ctx, ec, done)
	})
}

func (c *Cursor) Several(ctx context.Context, amount int) *async.Future[[]result.Row] {
	call := stack.FunctionID("github.com/cqlpager/cqlpager/internal/cursor.(*Cursor).Several")
	if !c.acquire(ctx, call) {
		return async.Failed[[]result.Row](xerrors.WithStackTrace(result.ErrConcurrentConsumption))
	}

	onDone := trace.CursorOnSeveral(c.cfg.Trace(), &ctx, call, c.id, amount)
	p := async.NewPromise[[]result.Row]()
	if amount <= 0 {
		c.release()
		onDone(0, nil)
		p.Complete([]result.Row{})

		return p.Future()
	}
	c.loadRows(ctx, nil, amount, make([]result.Row, 0, min(amount, c.page.Remaining())),
		func(rows []result.Row, err error) {
			c.release()
			onDone(len(rows), err)
			p.Resolve(rows, err)
		},
	)

	return p.Future()
}

func (c *Cursor) All(ctx context.Context) *async.Future[[]result.Row] {
	call := stack.FunctionID("github.com/cqlpager/cqlpager/internal/cursor.(*Cursor).All")
	if !c.acquire(ctx, call) {
		return async.Failed[[]result.Row](xerrors.WithStackTrace(result.ErrConcurrentConsumption))
	}

	onDone := trace.CursorOnAll(c.cfg.Trace(), &ctx, call, c.id)
	p := async.NewPromise[[]result.Row]()
	c.loadRows(ctx, nil, -1, make([]result.Row, 0, c.page.Remaining()),
		func(rows []result.Row, err error) {
			c.release()
			onDone(len(rows), err)
			p.Resolve(rows, err)
		},
	)

	return p.Future()
}

// loadRows drains buffer into acc and fetches next pages until acc has amount rows
// or cursor is fully fetched. Negative amount means all rows.
// Loop is resumed by fetch continuation on ec.
func (c *Cursor) loadRows(
	ctx context.Context, ec executor.Context, amount int, acc []result.Row,
	done func([]result.Row, error),
) {
	for amount < 0 || len(acc) < amount {
		if row, has := c.next(); has {
			acc = append(acc, row)

			continue
		}
		if c.fullyFetched {
			break
		}
		if ec == nil {
			ec = c.cfg.Executor().GetOrCreateContext(ctx)
		}
		c.fetch(ctx, ec, func(err error) {
			if err != nil {
				done(nil, err)

				return
			}
			c.loadRows(ctx, ec, amount, acc, done)
		})

		return
	}
	done(acc, nil)
}

func (c *Cursor) Collect(ctx context.Context, fn func(result.Row) error) *async.Future[int] {
	call := stack.FunctionID("github.com/cqlpager/cqlpager/internal/cursor.(*Cursor).Collect")
	if !c.acquire(ctx, call) {
		return async.Failed[int](xerrors.WithStackTrace(result.ErrConcurrentConsumption))
	}

	onDone := trace.CursorOnCollect(c.cfg.Trace(), &ctx, call, c.id)
	p := async.NewPromise[int]()
	c.collect(ctx, nil, fn, 0, func(count int, err error) {
		c.release()
		onDone(count, err)
		p.Resolve(count, err)
	})

	return p.Future()
}

func (c *Cursor) collect(
	ctx context.Context, ec executor.Context, fn func(result.Row) error, count int,
	done func(int, error),
) {
	for {
		if row, has := c.next(); has {
			if err := fn(row); err != nil {
				done(count, xerrors.WithStackTrace(err))

				return
			}
			count++

			continue
		}
		if c.fullyFetched {
			done(count, nil)

			return
		}
		if ec == nil {
			ec = c.cfg.Executor().GetOrCreateContext(ctx)
		}
		c.fetch(ctx, ec, func(err error) {
			if err != nil {
				done(count, err)

				return
			}
			c.collect(ctx, ec, fn, count, done)
		})

		return
	}
}

// Stream holds the cursor until stream ends or fails
func (c *Cursor) Stream(ctx context.Context) result.Stream {
	call := stack.FunctionID("github.com/cqlpager/cqlpager/internal/cursor.(*Cursor).Stream")
	ec := c.cfg.Executor().GetOrCreateContext(ctx)
	if !c.acquire(ctx, call) {
		return stream.Failed(ctx, ec, xerrors.WithStackTrace(result.ErrConcurrentConsumption),
			stream.WithTrace(c.cfg.StreamTrace()),
		)
	}

	return stream.New(ctx, ec, pager{c: c},
		stream.WithTrace(c.cfg.StreamTrace()),
		stream.WithRelease(c.release),
	)
}

var _ stream.Pager = pager{}

type pager struct {
	c *Cursor
}

func (p pager) Next() (result.Row, bool) {
	return p.c.next()
}

func (p pager) FullyFetched() bool {
	return p.c.fullyFetched
}

func (p pager) Fetch(ctx context.Context, ec executor.Context, done func(err error)) {
	p.c.fetch(ctx, ec, done)
}
