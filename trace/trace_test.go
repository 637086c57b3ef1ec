package trace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cqlpager/cqlpager/internal/stack"
)

func TestCursorCompose(t *testing.T) {
	var calls []string
	t1 := &Cursor{
		OnFetch: func(info CursorFetchStartInfo) func(CursorFetchDoneInfo) {
			calls = append(calls, "t1:start:"+info.ID)

			return func(info CursorFetchDoneInfo) {
				calls = append(calls, "t1:done")
			}
		},
	}
	t2 := &Cursor{
		OnFetch: func(info CursorFetchStartInfo) func(CursorFetchDoneInfo) {
			calls = append(calls, "t2:start:"+info.ID)

			return nil
		},
		OnMisusage: func(info CursorMisusageInfo) {
			calls = append(calls, "t2:misusage:"+info.ID)
		},
	}
	ctx := context.Background()
	composed := t1.Compose(t2)
	done := CursorOnFetch(composed, &ctx, stack.FunctionID("test"), "c1")
	done(10, true, nil)
	CursorOnMisusage(composed, &ctx, stack.FunctionID("test"), "c1")
	require.Equal(t, []string{
		"t1:start:c1",
		"t2:start:c1",
		"t1:done",
		"t2:misusage:c1",
	}, calls)
}

func TestCursorComposePanicCallback(t *testing.T) {
	var recovered interface{}
	t1 := &Cursor{
		OnAll: func(CursorAllStartInfo) func(CursorAllDoneInfo) {
			return func(CursorAllDoneInfo) {
				panic("done")
			}
		},
	}
	composed := t1.Compose(&Cursor{}, WithCursorPanicCallback(func(e interface{}) {
		recovered = e
	}))
	ctx := context.Background()
	require.NotPanics(t, func() {
		CursorOnAll(composed, &ctx, stack.FunctionID("test"), "c1")(3, errors.New("failed"))
	})
	require.Equal(t, "done", recovered)
}

func TestEmptyTraceNoop(t *testing.T) {
	ctx := context.Background()
	require.NotPanics(t, func() {
		CursorOnSeveral(&Cursor{}, &ctx, stack.FunctionID("test"), "c1", 5)(5, nil)
		StreamOnEnd(&Stream{}, &ctx, stack.FunctionID("test"), "s1", 3)
	})
}

func TestStreamCompose(t *testing.T) {
	var emitted []int
	t1 := &Stream{
		OnPause: func(info StreamPauseInfo) {
			emitted = append(emitted, info.Emitted)
		},
	}
	composed := t1.Compose(t1)
	ctx := context.Background()
	StreamOnPause(composed, &ctx, stack.FunctionID("test"), "s1", 2)
	require.Equal(t, []int{2, 2}, emitted)
}

func TestMatchDetails(t *testing.T) {
	for _, tt := range []struct {
		pattern string
		exp     Details
	}{
		{pattern: `^cqlpager\.cursor`, exp: CursorEvents},
		{pattern: `^cqlpager\.stream\.demand$`, exp: StreamDemandEvents},
		{pattern: `fetch`, exp: CursorFetchEvents},
		{pattern: `(`, exp: DetailsAll},
		{pattern: `nothing`, exp: DetailsAll},
	} {
		t.Run(tt.pattern, func(t *testing.T) {
			require.Equal(t, tt.exp, MatchDetails(tt.pattern))
		})
	}
	require.Equal(t, StreamEvents, MatchDetails(`(`, WithDefaultDetails(StreamEvents)))
}

func TestDetailsString(t *testing.T) {
	require.Equal(t, "cqlpager.stream|cqlpager.stream.demand", StreamDemandEvents.String())
	require.Equal(t,
		"cqlpager.stream|cqlpager.stream.demand|cqlpager.stream.lifecycle",
		StreamEvents.String(),
	)
}
