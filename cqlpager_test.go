package cqlpager_test

import (
	"bytes"
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/cqlpager/cqlpager"
	"github.com/cqlpager/cqlpager/executor"
	"github.com/cqlpager/cqlpager/internal/xtest"
	"github.com/cqlpager/cqlpager/log"
	"github.com/cqlpager/cqlpager/metrics"
	"github.com/cqlpager/cqlpager/result"
	"github.com/cqlpager/cqlpager/source"
	"github.com/cqlpager/cqlpager/trace"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	ctx := xtest.Context(t)
	var (
		buf     bytes.Buffer
		fetches atomic.Int32
		ended   atomic.Int32
	)
	reg := prometheus.NewRegistry()
	clock := clockwork.NewFakeClock()
	rs := cqlpager.New(source.StaticRows(columns, 2, staticValues()...),
		cqlpager.WithExecutor(executor.New("test")),
		cqlpager.WithClock(clock),
		cqlpager.WithLogger(log.Default(&buf, log.WithMinLevel(log.DEBUG), log.WithClock(clock)), trace.DetailsAll),
		cqlpager.WithMetrics(metrics.NewPrometheus(reg, "test"), trace.DetailsAll),
		cqlpager.WithTrace(trace.Cursor{
			OnFetch: func(trace.CursorFetchStartInfo) func(trace.CursorFetchDoneInfo) {
				fetches.Add(1)

				return nil
			},
		}),
		cqlpager.WithStreamTrace(trace.Stream{
			OnEnd: func(trace.StreamEndInfo) {
				ended.Add(1)
			},
		}),
	)

	row, err := rs.One(ctx).Await(ctx)
	require.NoError(t, err)
	require.Equal(t, []any{1, "a"}, row.Values())

	var names []any
	s := rs.Stream(ctx)
	s.Handler(func(row result.Row) {
		name, _ := row.Value("name")
		names = append(names, name)
	})
	xtest.WaitChannelClosed(t, s.Done())
	require.NoError(t, s.Err())
	require.Equal(t, []any{"b", "c", "d", "e"}, names)
	require.True(t, rs.IsExhausted())

	require.EqualValues(t, 2, fetches.Load())
	require.EqualValues(t, 1, ended.Load())
	require.Contains(t, buf.String(), "'cqlpager.cursor.fetch' => done")
	require.Contains(t, buf.String(), "'cqlpager.stream.end' => ended")
	require.Equal(t, 2, strings.Count(buf.String(), "'cqlpager.cursor.fetch' => done"))

	count, err := testutil.GatherAndCount(reg, "test_cqlpager_cursor_fetch_errs")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

type slowPage struct {
	source.Page
	advance func(d time.Duration)
}

func (p slowPage) FetchNextPage(ctx context.Context) (source.Page, error) {
	p.advance(1500 * time.Millisecond)

	return p.Page.FetchNextPage(ctx)
}

func TestClockDrivesLatency(t *testing.T) {
	ctx := xtest.Context(t)
	var buf bytes.Buffer
	reg := prometheus.NewRegistry()
	clock := clockwork.NewFakeClock()
	rs := cqlpager.New(slowPage{Page: source.StaticRows(columns, 3, staticValues()...), advance: clock.Advance},
		cqlpager.WithExecutor(executor.New("test")),
		cqlpager.WithLogger(log.Default(&buf, log.WithMinLevel(log.DEBUG)), trace.CursorFetchEvents),
		cqlpager.WithMetrics(metrics.NewPrometheus(reg, "test"), trace.CursorFetchEvents),
		cqlpager.WithClock(clock),
	)

	rows, err := rs.All(ctx).Await(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	require.Contains(t, buf.String(), `"latency":"1.5s"`)

	families, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, family := range families {
		if family.GetName() != "test_cqlpager_cursor_fetch_latency_seconds" {
			continue
		}
		found = true
		require.Len(t, family.GetMetric(), 1)
		h := family.GetMetric()[0].GetHistogram()
		require.EqualValues(t, 1, h.GetSampleCount())
		require.InDelta(t, 1.5, h.GetSampleSum(), 1e-9)
	}
	require.True(t, found)
}

func TestPanicCallback(t *testing.T) {
	ctx := context.Background()
	var panics atomic.Int32
	rs := cqlpager.New(source.Static(columns),
		cqlpager.WithPanicCallback(func(e interface{}) {
			panics.Add(1)
		}),
		cqlpager.WithTrace(trace.Cursor{
			OnOne: func(trace.CursorOneStartInfo) func(trace.CursorOneDoneInfo) {
				panic("test")
			},
		}),
	)

	row, err := rs.One(ctx).Await(ctx)
	require.NoError(t, err)
	require.Nil(t, row)
	require.EqualValues(t, 1, panics.Load())
}
