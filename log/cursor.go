package log

import (
	"github.com/cqlpager/cqlpager/internal/xerrors"
	"github.com/cqlpager/cqlpager/trace"
)

// Cursor makes trace.Cursor with logging events from details
func Cursor(l Logger, d trace.Detailer, opts ...Option) (t trace.Cursor) {
	return internalCursor(wrapLogger(l, opts...), d)
}

//nolint:funlen
func internalCursor(l *wrapper, d trace.Detailer) (t trace.Cursor) {
	t.OnNew = func(info trace.CursorNewStartInfo) func(trace.CursorNewDoneInfo) {
		if d.Details()&trace.CursorLifeCycleEvents == 0 {
			return nil
		}
		ctx := with(*info.Context, DEBUG, "cqlpager", "cursor", "new")

		return func(info trace.CursorNewDoneInfo) {
			l.Log(ctx, "done",
				String("id", info.ID),
				Int("available", info.Available),
				Bool("fully_fetched", info.FullyFetched),
			)
		}
	}
	t.OnFetch = func(info trace.CursorFetchStartInfo) func(trace.CursorFetchDoneInfo) {
		if d.Details()&trace.CursorFetchEvents == 0 {
			return nil
		}
		ctx := with(*info.Context, TRACE, "cqlpager", "cursor", "fetch")
		id := info.ID
		l.Log(ctx, "start",
			String("id", id),
		)
		start := l.clock.Now()

		return func(info trace.CursorFetchDoneInfo) {
			if info.Error == nil {
				l.Log(WithLevel(ctx, DEBUG), "done",
					String("id", id),
					latencyField(l.clock, start),
					Int("available", info.Available),
					Bool("fully_fetched", info.FullyFetched),
				)
			} else {
				l.Log(WithLevel(ctx, WARN), "failed",
					String("id", id),
					latencyField(l.clock, start),
					Error(info.Error),
				)
			}
		}
	}
	consumed := func(ctx *callContext, rows int, found *bool, err error) {
		if err == nil {
			fields := []Field{
				String("id", ctx.id),
				latencyField(l.clock, ctx.start),
				Int("rows", rows),
			}
			fields = appendFieldByCondition(found != nil, Bool("found", found != nil && *found), fields...)
			l.Log(ctx.ctx, "done", fields...)

			return
		}
		lvl := ERROR
		if xerrors.IsCqlpager(err) {
			lvl = WARN
		}
		l.Log(WithLevel(ctx.ctx, lvl), "failed",
			String("id", ctx.id),
			latencyField(l.clock, ctx.start),
			Error(err),
		)
	}
	t.OnOne = func(info trace.CursorOneStartInfo) func(trace.CursorOneDoneInfo) {
		if d.Details()&trace.CursorConsumeEvents == 0 {
			return nil
		}
		ctx := l.start(with(*info.Context, TRACE, "cqlpager", "cursor", "one"), info.ID)

		return func(info trace.CursorOneDoneInfo) {
			rows := 0
			if info.Found {
				rows = 1
			}
			consumed(ctx, rows, &info.Found, info.Error)
		}
	}
	t.OnSeveral = func(info trace.CursorSeveralStartInfo) func(trace.CursorSeveralDoneInfo) {
		if d.Details()&trace.CursorConsumeEvents == 0 {
			return nil
		}
		ctx := l.start(with(*info.Context, TRACE, "cqlpager", "cursor", "several"), info.ID,
			Int("amount", info.Amount),
		)

		return func(info trace.CursorSeveralDoneInfo) {
			consumed(ctx, info.Rows, nil, info.Error)
		}
	}
	t.OnAll = func(info trace.CursorAllStartInfo) func(trace.CursorAllDoneInfo) {
		if d.Details()&trace.CursorConsumeEvents == 0 {
			return nil
		}
		ctx := l.start(with(*info.Context, TRACE, "cqlpager", "cursor", "all"), info.ID)

		return func(info trace.CursorAllDoneInfo) {
			consumed(ctx, info.Rows, nil, info.Error)
		}
	}
	t.OnCollect = func(info trace.CursorCollectStartInfo) func(trace.CursorCollectDoneInfo) {
		if d.Details()&trace.CursorConsumeEvents == 0 {
			return nil
		}
		ctx := l.start(with(*info.Context, TRACE, "cqlpager", "cursor", "collect"), info.ID)

		return func(info trace.CursorCollectDoneInfo) {
			consumed(ctx, info.Rows, nil, info.Error)
		}
	}
	t.OnMisusage = func(info trace.CursorMisusageInfo) {
		if d.Details()&trace.CursorConsumeEvents == 0 {
			return
		}
		ctx := with(*info.Context, WARN, "cqlpager", "cursor", "misusage")
		l.Log(ctx, "consumption call rejected, another one is in flight",
			String("id", info.ID),
			String("call", info.Call.FunctionID()),
		)
	}

	return t
}
