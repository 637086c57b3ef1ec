package cassandra

import (
	"context"
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/require"

	"github.com/cqlpager/cqlpager/result"
)

func TestConvertColumns(t *testing.T) {
	columns := convertColumns([]gocql.ColumnInfo{
		{Keyspace: "ks", Table: "t", Name: "id", TypeInfo: gocql.NewNativeType(4, gocql.TypeInt, "")},
		{Keyspace: "ks", Table: "t", Name: "name", TypeInfo: gocql.NewNativeType(4, gocql.TypeVarchar, "")},
		{Keyspace: "ks", Table: "t", Name: "raw"},
	})
	require.Equal(t, result.Columns{
		{Keyspace: "ks", Table: "t", Name: "id", Type: "int"},
		{Keyspace: "ks", Table: "t", Name: "name", Type: "varchar"},
		{Keyspace: "ks", Table: "t", Name: "raw"},
	}, columns)
}

func TestOrderedValues(t *testing.T) {
	columns := result.Columns{{Name: "b"}, {Name: "a"}, {Name: "c"}}
	require.Equal(t, []any{2, 1, nil}, orderedValues(columns, map[string]interface{}{
		"a": 1,
		"b": 2,
	}))
}

func TestWasApplied(t *testing.T) {
	columns := result.Columns{{Name: appliedColumn}, {Name: "id"}}
	for _, tt := range []struct {
		name string
		rows []result.Row
		exp  bool
	}{
		{name: "Empty", exp: true},
		{name: "NoColumn", rows: []result.Row{result.NewRow(result.Columns{{Name: "id"}}, []any{1})}, exp: true},
		{name: "Applied", rows: []result.Row{result.NewRow(columns, []any{true, 1})}, exp: true},
		{name: "NotApplied", rows: []result.Row{result.NewRow(columns, []any{false, 1})}, exp: false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.exp, wasApplied(tt.rows))
		})
	}
}

func TestPage(t *testing.T) {
	columns := result.Columns{{Name: "id"}}
	rows := []result.Row{
		result.NewRow(columns, []any{1}),
		result.NewRow(columns, []any{2}),
	}

	t.Run("WithState", func(t *testing.T) {
		p := newPage(nil, columns, append([]result.Row(nil), rows...), []byte{1})
		require.True(t, p.HasMorePages())
		require.Equal(t, []byte{1}, p.PagingState())
		require.Equal(t, 2, p.Remaining())
		require.True(t, p.WasApplied())
		require.Equal(t, columns, p.Columns())

		row, has := p.One()
		require.True(t, has)
		require.Equal(t, rows[0], row)
		require.Equal(t, 1, p.Remaining())
	})
	t.Run("Last", func(t *testing.T) {
		p := newPage(nil, columns, append([]result.Row(nil), rows...), nil)
		require.False(t, p.HasMorePages())
		for range rows {
			_, has := p.One()
			require.True(t, has)
		}
		_, has := p.One()
		require.False(t, has)

		next, err := p.FetchNextPage(context.Background())
		require.ErrorIs(t, err, errNoMorePages)
		require.Nil(t, next)
	})
}
