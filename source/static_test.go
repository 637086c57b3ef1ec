package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cqlpager/cqlpager/internal/xtest"
	"github.com/cqlpager/cqlpager/result"
)

func TestStaticRows(t *testing.T) {
	ctx := xtest.Context(t)
	columns := result.Columns{{Name: "id", Type: "int"}}
	page := StaticRows(columns, 2, []any{1}, []any{2}, []any{3})
	require.True(t, page.HasMorePages())
	require.Equal(t, 2, page.Remaining())
	require.True(t, page.WasApplied())
	require.Equal(t, columns, page.Columns())

	var ids []any
	for {
		for {
			row, ok := page.One()
			if !ok {
				break
			}
			ids = append(ids, row.Values()[0])
		}
		if !page.HasMorePages() {
			break
		}
		next, err := page.FetchNextPage(ctx)
		require.NoError(t, err)
		page = next
	}
	require.Equal(t, []any{1, 2, 3}, ids)

	_, err := page.FetchNextPage(ctx)
	require.ErrorIs(t, err, errNoMorePages)
}

func TestStaticEmpty(t *testing.T) {
	page := Static(nil)
	require.False(t, page.HasMorePages())
	require.Zero(t, page.Remaining())
	_, ok := page.One()
	require.False(t, ok)
}

func TestStaticFetchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(xtest.Context(t))
	cancel()
	_, err := Static(nil, nil, nil).FetchNextPage(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
