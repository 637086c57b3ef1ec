package log

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(1984, time.April, 4, 0, 0, 0, 0, time.UTC)

func TestFormat(t *testing.T) {
	for _, tt := range []struct {
		name string
		l    *defaultLogger
		exp  string
	}{
		{
			name: "Coloring",
			l:    Default(nil, WithColoring(), WithClock(clockwork.NewFakeClockAt(testTime))),
			exp:  "\u001B[31m1984-04-04 00:00:00.000 \u001B[0m\u001B[101mERROR\u001B[0m\u001B[31m 'test.scope' => message\u001B[0m", //nolint:lll
		},
		{
			name: "Plain",
			l:    Default(nil, WithClock(clockwork.NewFakeClockAt(testTime))),
			exp:  "1984-04-04 00:00:00.000 ERROR 'test.scope' => message",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.exp, tt.l.format([]string{"test", "scope"}, "message", ERROR))
		})
	}
}

func TestDefaultLog(t *testing.T) {
	var buf bytes.Buffer
	l := Default(&buf, WithMinLevel(DEBUG), WithClock(clockwork.NewFakeClockAt(testTime)))

	l.Log(with(context.Background(), TRACE, "cqlpager", "cursor"), "skipped")
	l.Log(with(context.Background(), DEBUG, "cqlpager", "cursor"), "done",
		String("id", "1"),
		Int("rows", 2),
		Error(errors.New("test")),
	)
	require.Equal(t,
		"1984-04-04 00:00:00.000 DEBUG 'cqlpager.cursor' => done {\"id\":\"1\",\"rows\":\"2\",\"error\":\"test\"}\n",
		buf.String(),
	)
}

func TestLevelFromString(t *testing.T) {
	for _, lvl := range []Level{TRACE, DEBUG, INFO, WARN, ERROR, FATAL, QUIET} {
		require.Equal(t, lvl, FromString(lvl.String()))
	}
	require.Equal(t, QUIET, FromString("unknown"))
	require.Equal(t, WARN, FromString("warn"))
}

func TestNames(t *testing.T) {
	ctx := WithNames(context.Background(), "a")
	first := WithNames(ctx, "b")
	second := WithNames(ctx, "c")
	require.Equal(t, []string{"a", "b"}, NamesFromContext(first))
	require.Equal(t, []string{"a", "c"}, NamesFromContext(second))
	require.Empty(t, NamesFromContext(context.Background()))
}
