package cqlpager

import (
	"context"

	"github.com/gocql/gocql"

	"github.com/cqlpager/cqlpager/cassandra"
	"github.com/cqlpager/cqlpager/config"
	"github.com/cqlpager/cqlpager/internal/cursor"
	"github.com/cqlpager/cqlpager/internal/xerrors"
	"github.com/cqlpager/cqlpager/result"
	"github.com/cqlpager/cqlpager/source"
)

// New makes cursor over already fetched first page
func New(page source.Page, opts ...Option) result.Set {
	o := newOptions(opts...)

	return cursor.New(context.Background(), page, config.New(o.configOptions()...))
}

// Execute fetches the first page of q and makes cursor over it.
// Execute blocks until the first page arrives.
func Execute(ctx context.Context, q *gocql.Query, opts ...Option) (result.Set, error) {
	o := newOptions(opts...)
	page, err := cassandra.Execute(ctx, q, o.cassandra...)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return cursor.New(ctx, page, config.New(o.configOptions()...)), nil
}
