package cassandra

import (
	"context"
	"errors"
	"fmt"

	"github.com/gocql/gocql"

	"github.com/cqlpager/cqlpager/internal/xerrors"
	"github.com/cqlpager/cqlpager/result"
	"github.com/cqlpager/cqlpager/source"
)

const (
	DefaultPageSize = 5000

	appliedColumn = "[applied]"
)

var errNoMorePages = xerrors.Wrap(errors.New("cassandra: query has no more pages"))

type options struct {
	pageSize  int
	pageState []byte
}

type Option func(o *options)

// WithPageSize defines count of rows per fetched page
func WithPageSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.pageSize = size
		}
	}
}

// WithPageState defines paging state to resume query from.
// Paging state is available from Page.PagingState of earlier page.
func WithPageState(state []byte) Option {
	return func(o *options) {
		o.pageState = state
	}
}

var _ source.Page = (*Page)(nil)

// Page is a materialized page of query result with paging state of the next one
type Page struct {
	query   *gocql.Query
	columns result.Columns
	rows    []result.Row
	state   []byte
	applied bool
}

// Execute runs first page of query q. Query is re-executed with paging state
// of the last page on each FetchNextPage, so q must not be reused by caller.
func Execute(ctx context.Context, q *gocql.Query, opts ...Option) (*Page, error) {
	o := options{
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return fetch(ctx, q.PageSize(o.pageSize), o.pageState)
}

func fetch(ctx context.Context, q *gocql.Query, state []byte) (*Page, error) {
	iter := q.WithContext(ctx).PageState(state).Iter()
	nextState := iter.PageState()
	columns := convertColumns(iter.Columns())
	rows := make([]result.Row, 0, iter.NumRows())
	for {
		m := make(map[string]interface{}, len(columns))
		if !iter.MapScan(m) {
			break
		}
		rows = append(rows, result.NewRow(columns, orderedValues(columns, m)))
	}
	if err := iter.Close(); err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return newPage(q, columns, rows, nextState), nil
}

func newPage(q *gocql.Query, columns result.Columns, rows []result.Row, state []byte) *Page {
	return &Page{
		query:   q,
		columns: columns,
		rows:    rows,
		state:   append([]byte(nil), state...),
		applied: wasApplied(rows),
	}
}

func convertColumns(infos []gocql.ColumnInfo) result.Columns {
	columns := make(result.Columns, 0, len(infos))
	for _, info := range infos {
		columns = append(columns, result.Column{
			Keyspace: info.Keyspace,
			Table:    info.Table,
			Name:     info.Name,
			Type:     typeName(info.TypeInfo),
		})
	}

	return columns
}

func typeName(info gocql.TypeInfo) string {
	if info == nil {
		return ""
	}
	if s, ok := info.(fmt.Stringer); ok {
		return s.String()
	}

	return info.Type().String()
}

func orderedValues(columns result.Columns, m map[string]interface{}) []any {
	values := make([]any, len(columns))
	for i, c := range columns {
		values[i] = m[c.Name]
	}

	return values
}

// wasApplied is true for non-conditional statements which have no [applied] column
func wasApplied(rows []result.Row) bool {
	if len(rows) == 0 {
		return true
	}
	v, has := rows[0].Value(appliedColumn)
	if !has {
		return true
	}
	applied, ok := v.(bool)

	return !ok || applied
}

func (p *Page) HasMorePages() bool {
	return len(p.state) > 0
}

func (p *Page) Remaining() int {
	return len(p.rows)
}

func (p *Page) One() (result.Row, bool) {
	if len(p.rows) == 0 {
		return nil, false
	}
	row := p.rows[0]
	p.rows[0] = nil
	p.rows = p.rows[1:]

	return row, true
}

func (p *Page) FetchNextPage(ctx context.Context) (source.Page, error) {
	if !p.HasMorePages() {
		return nil, xerrors.WithStackTrace(errNoMorePages)
	}
	next, err := fetch(ctx, p.query, p.state)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return next, nil
}

func (p *Page) WasApplied() bool {
	return p.applied
}

func (p *Page) Columns() result.Columns {
	return p.columns
}

// PagingState returns opaque state of the next page or nil for the last page
func (p *Page) PagingState() []byte {
	return p.state
}
