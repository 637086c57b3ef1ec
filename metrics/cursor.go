package metrics

import (
	"github.com/cqlpager/cqlpager/trace"
)

// Cursor makes trace.Cursor which counts fetches and consumed rows
func Cursor(config Config) (t trace.Cursor) {
	cursorConfig := config.WithSystem("cursor")
	clock := config.Clock()
	{
		created := cursorConfig.CounterVec("created")
		t.OnNew = func(info trace.CursorNewStartInfo) func(trace.CursorNewDoneInfo) {
			if cursorConfig.Details()&trace.CursorLifeCycleEvents == 0 {
				return nil
			}

			return func(info trace.CursorNewDoneInfo) {
				created.With(nil).Inc()
			}
		}
	}
	{
		fetchConfig := cursorConfig.WithSystem("fetch")
		errs := fetchConfig.CounterVec("errs", "status")
		latency := fetchConfig.TimerVec("latency")
		inflight := fetchConfig.GaugeVec("inflight")
		t.OnFetch = func(info trace.CursorFetchStartInfo) func(trace.CursorFetchDoneInfo) {
			if fetchConfig.Details()&trace.CursorFetchEvents == 0 {
				return nil
			}
			start := clock.Now()
			inflight.With(nil).Add(1)

			return func(info trace.CursorFetchDoneInfo) {
				inflight.With(nil).Add(-1)
				errs.With(map[string]string{
					"status": errorBrief(info.Error),
				}).Inc()
				latency.With(nil).Record(clock.Since(start))
			}
		}
	}
	{
		consumeConfig := cursorConfig.WithSystem("consume")
		errs := consumeConfig.CounterVec("errs", "call", "status")
		rows := consumeConfig.HistogramVec("rows", []float64{0, 1, 10, 100, 1000, 10000, 100000}, "call")
		latency := consumeConfig.TimerVec("latency", "call")
		rejected := consumeConfig.CounterVec("rejected")
		consumed := func(call string) func() func(n int, err error) {
			return func() func(n int, err error) {
				if consumeConfig.Details()&trace.CursorConsumeEvents == 0 {
					return nil
				}
				begin := clock.Now()

				return func(n int, err error) {
					labels := map[string]string{"call": call}
					errs.With(map[string]string{
						"call":   call,
						"status": errorBrief(err),
					}).Inc()
					latency.With(labels).Record(clock.Since(begin))
					if err == nil {
						rows.With(labels).Record(float64(n))
					}
				}
			}
		}
		one := consumed("one")
		several := consumed("several")
		all := consumed("all")
		collect := consumed("collect")
		t.OnOne = func(trace.CursorOneStartInfo) func(trace.CursorOneDoneInfo) {
			onDone := one()
			if onDone == nil {
				return nil
			}

			return func(info trace.CursorOneDoneInfo) {
				n := 0
				if info.Found {
					n = 1
				}
				onDone(n, info.Error)
			}
		}
		t.OnSeveral = func(trace.CursorSeveralStartInfo) func(trace.CursorSeveralDoneInfo) {
			onDone := several()
			if onDone == nil {
				return nil
			}

			return func(info trace.CursorSeveralDoneInfo) {
				onDone(info.Rows, info.Error)
			}
		}
		t.OnAll = func(trace.CursorAllStartInfo) func(trace.CursorAllDoneInfo) {
			onDone := all()
			if onDone == nil {
				return nil
			}

			return func(info trace.CursorAllDoneInfo) {
				onDone(info.Rows, info.Error)
			}
		}
		t.OnCollect = func(trace.CursorCollectStartInfo) func(trace.CursorCollectDoneInfo) {
			onDone := collect()
			if onDone == nil {
				return nil
			}

			return func(info trace.CursorCollectDoneInfo) {
				onDone(info.Rows, info.Error)
			}
		}
		t.OnMisusage = func(trace.CursorMisusageInfo) {
			if consumeConfig.Details()&trace.CursorConsumeEvents != 0 {
				rejected.With(nil).Inc()
			}
		}
	}

	return t
}
