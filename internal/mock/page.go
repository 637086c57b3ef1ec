package mock

import (
	"context"
	"errors"
	"sync"

	"github.com/cqlpager/cqlpager/result"
	"github.com/cqlpager/cqlpager/source"
)

var (
	ErrNoMorePages = errors.New("mock: no more pages")

	Columns = result.Columns{{Keyspace: "ks", Table: "t", Name: "id", Type: "int"}}
)

// Rows makes rows with id column values from 'from' to 'to' inclusive
func Rows(from, to int) []result.Row {
	rows := make([]result.Row, 0, to-from+1)
	for i := from; i <= to; i++ {
		rows = append(rows, result.NewRow(Columns, []any{i}))
	}

	return rows
}

// IDs extracts id column values
func IDs(rows []result.Row) []int {
	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		v, _ := row.Value("id")
		id, _ := v.(int)
		ids = append(ids, id)
	}

	return ids
}

// Source is a scripted chain of pages which counts fetches
type Source struct {
	Pages [][]result.Row

	// FetchErr maps fetch number (starting from 1) to error returned by this fetch
	FetchErr map[int]error

	// Gate blocks every fetch until value received or channel closed
	Gate chan struct{}

	m       sync.Mutex
	fetches int
}

// First returns handle of the first page
func (s *Source) First() source.Page {
	if len(s.Pages) == 0 {
		s.Pages = [][]result.Row{nil}
	}

	return &Page{
		src:  s,
		rows: append([]result.Row(nil), s.Pages[0]...),
	}
}

// Fetches returns count of FetchNextPage calls
func (s *Source) Fetches() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.fetches
}

var _ source.Page = (*Page)(nil)

type Page struct {
	src   *Source
	index int
	rows  []result.Row
}

func (p *Page) HasMorePages() bool {
	return p.index+1 < len(p.src.Pages)
}

func (p *Page) Remaining() int {
	return len(p.rows)
}

func (p *Page) One() (result.Row, bool) {
	if len(p.rows) == 0 {
		return nil, false
	}
	row := p.rows[0]
	p.rows = p.rows[1:]

	return row, true
}

func (p *Page) FetchNextPage(ctx context.Context) (source.Page, error) {
	if p.src.Gate != nil {
		select {
		case <-p.src.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	p.src.m.Lock()
	defer p.src.m.Unlock()

	p.src.fetches++
	if err, has := p.src.FetchErr[p.src.fetches]; has {
		return nil, err
	}
	if !p.HasMorePages() {
		return nil, ErrNoMorePages
	}

	return &Page{
		src:   p.src,
		index: p.index + 1,
		rows:  append([]result.Row(nil), p.src.Pages[p.index+1]...),
	}, nil
}

func (p *Page) WasApplied() bool {
	return true
}

func (p *Page) Columns() result.Columns {
	return Columns
}
