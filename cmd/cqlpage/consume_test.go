package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cqlpager/cqlpager"
	"github.com/cqlpager/cqlpager/internal/xtest"
	"github.com/cqlpager/cqlpager/result"
	"github.com/cqlpager/cqlpager/source"
)

var columns = result.Columns{{Name: "id"}, {Name: "name"}}

func newSet() result.Set {
	return cqlpager.New(source.StaticRows(columns, 2,
		[]any{1, "a"}, []any{2, nil}, []any{3, "c"}, []any{4, "d"}, []any{5, "e"},
	))
}

func TestConsumers(t *testing.T) {
	for _, tt := range []struct {
		name    string
		consume consumer
		exp     string
	}{
		{
			name:    "One",
			consume: consumeOne,
			exp:     "1\ta\n",
		},
		{
			name:    "Several",
			consume: consumeSeveral(3),
			exp:     "1\ta\n2\tnull\n3\tc\n",
		},
		{
			name:    "All",
			consume: consumeAll,
			exp:     "1\ta\n2\tnull\n3\tc\n4\td\n5\te\n",
		},
		{
			name:    "Stream",
			consume: consumeStream(0, 0),
			exp:     "1\ta\n2\tnull\n3\tc\n4\td\n5\te\n",
		},
		{
			name:    "StreamWithPauses",
			consume: consumeStream(2, time.Millisecond),
			exp:     "1\ta\n2\tnull\n3\tc\n4\td\n5\te\n",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ctx := xtest.ContextWithCommonTimeout(xtest.Context(t), t)
			var buf bytes.Buffer
			require.NoError(t, tt.consume(ctx, newSet(), &buf))
			require.Equal(t, tt.exp, buf.String())
		})
	}
}

func TestWriteColumns(t *testing.T) {
	var buf bytes.Buffer
	writeColumns(&buf, columns)
	require.Equal(t, "id\tname\n", buf.String())
}

func TestStreamCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := consumeStream(1, time.Hour)(ctx, newSet(), &buf)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCommands(t *testing.T) {
	root := newRootCommand(&bytes.Buffer{})
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	require.ElementsMatch(t, []string{"one", "several", "all", "stream"}, names)
	require.NotNil(t, root.PersistentFlags().Lookup("cassandra.addresses"))
	require.NotNil(t, root.PersistentFlags().Lookup("metrics-addr"))

	root.SetArgs([]string{"several", "x", "SELECT 1"})
	require.Error(t, root.Execute())
}
