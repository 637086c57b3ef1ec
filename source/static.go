package source

import (
	"context"
	"errors"

	"github.com/cqlpager/cqlpager/internal/xerrors"
	"github.com/cqlpager/cqlpager/result"
)

var errNoMorePages = xerrors.Wrap(errors.New("cqlpager: no more pages"))

var _ Page = (*staticPage)(nil)

type staticPage struct {
	columns result.Columns
	rows    []result.Row
	next    [][]result.Row
	applied bool
}

// Static makes in-memory chain of pages. Every element of pages becomes one page.
// Static without pages makes a single empty page.
func Static(columns result.Columns, pages ...[]result.Row) Page {
	if len(pages) == 0 {
		pages = [][]result.Row{nil}
	}

	return &staticPage{
		columns: columns,
		rows:    pages[0],
		next:    pages[1:],
		applied: true,
	}
}

// StaticRows splits values into pages of pageSize rows
func StaticRows(columns result.Columns, pageSize int, values ...[]any) Page {
	if pageSize <= 0 {
		pageSize = len(values)
	}
	var pages [][]result.Row
	for len(values) > 0 {
		n := min(pageSize, len(values))
		page := make([]result.Row, 0, n)
		for _, v := range values[:n] {
			page = append(page, result.NewRow(columns, v))
		}
		pages = append(pages, page)
		values = values[n:]
	}

	return Static(columns, pages...)
}

func (p *staticPage) HasMorePages() bool {
	return len(p.next) > 0
}

func (p *staticPage) Remaining() int {
	return len(p.rows)
}

func (p *staticPage) One() (result.Row, bool) {
	if len(p.rows) == 0 {
		return nil, false
	}
	row := p.rows[0]
	p.rows = p.rows[1:]

	return row, true
}

func (p *staticPage) FetchNextPage(ctx context.Context) (Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	if len(p.next) == 0 {
		return nil, xerrors.WithStackTrace(errNoMorePages)
	}

	return &staticPage{
		columns: p.columns,
		rows:    p.next[0],
		next:    p.next[1:],
		applied: p.applied,
	}, nil
}

func (p *staticPage) WasApplied() bool {
	return p.applied
}

func (p *staticPage) Columns() result.Columns {
	return p.columns
}
