package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cqlpager/cqlpager/internal/xerrors"
	"github.com/cqlpager/cqlpager/result"
)

func writeColumns(w io.Writer, columns result.Columns) {
	fmt.Fprintln(w, strings.Join(columns.Names(), "\t"))
}

func writeRow(w io.Writer, row result.Row) {
	values := row.Values()
	ss := make([]string, len(values))
	for i, v := range values {
		if v == nil {
			ss[i] = "null"

			continue
		}
		ss[i] = fmt.Sprint(v)
	}
	fmt.Fprintln(w, strings.Join(ss, "\t"))
}

func consumeOne(ctx context.Context, rs result.Set, w io.Writer) error {
	row, err := rs.One(ctx).Await(ctx)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}
	if row != nil {
		writeRow(w, row)
	}

	return nil
}

func consumeSeveral(n int) consumer {
	return func(ctx context.Context, rs result.Set, w io.Writer) error {
		rows, err := rs.Several(ctx, n).Await(ctx)
		if err != nil {
			return xerrors.WithStackTrace(err)
		}
		for _, row := range rows {
			writeRow(w, row)
		}

		return nil
	}
}

func consumeAll(ctx context.Context, rs result.Set, w io.Writer) error {
	_, err := rs.Collect(ctx, func(row result.Row) error {
		writeRow(w, row)

		return nil
	}).Await(ctx)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}

	return nil
}

// consumeStream pauses stream for pause after every burst rows
func consumeStream(burst int, pause time.Duration) consumer {
	return func(ctx context.Context, rs result.Set, w io.Writer) error {
		var (
			s     = rs.Stream(ctx)
			count int
		)
		s.Handler(func(row result.Row) {
			writeRow(w, row)
			count++
			if burst > 0 && count%burst == 0 {
				s.Pause()
				time.AfterFunc(pause, func() {
					s.Resume()
				})
			}
		})
		select {
		case <-s.Done():
			return xerrors.WithStackTrace(s.Err())
		case <-ctx.Done():
			return xerrors.WithStackTrace(ctx.Err())
		}
	}
}
