package result

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cqlpager/cqlpager/internal/xerrors"
)

func TestRow(t *testing.T) {
	columns := Columns{
		{Keyspace: "ks", Table: "users", Name: "id", Type: "int"},
		{Keyspace: "ks", Table: "users", Name: "name", Type: "text"},
	}
	r := NewRow(columns, []any{1, "alice"})
	require.Equal(t, []string{"id", "name"}, r.Columns().Names())
	require.Equal(t, []any{1, "alice"}, r.Values())
	v, ok := r.Value("name")
	require.True(t, ok)
	require.Equal(t, "alice", v)
	_, ok = r.Value("email")
	require.False(t, ok)
	require.Equal(t, -1, columns.IndexOf("email"))
}

func TestFetchError(t *testing.T) {
	cause := errors.New("connection reset")
	err := xerrors.WithStackTrace(NewFetchError(cause))
	require.True(t, IsFetchFailure(err))
	require.ErrorIs(t, err, cause)
	require.False(t, IsFetchFailure(cause))
	require.False(t, IsFetchFailure(io.EOF))
	require.True(t, xerrors.IsCqlpager(ErrConcurrentConsumption))
	require.False(t, xerrors.IsCqlpager(err))
}
