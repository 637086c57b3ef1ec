// Package source defines the remote page source consumed by cursors.
package source

import (
	"context"

	"github.com/cqlpager/cqlpager/result"
)

//go:generate mockgen -destination ../internal/mock/page_gomock.go -package mock . Page

// Page is a handle of one fetched page of remote result
type Page interface {
	// HasMorePages reports that remote source has page after this one
	HasMorePages() bool

	// Remaining returns count of rows of this page not yet consumed by One
	Remaining() int

	// One consumes the next row of this page without I/O.
	// Returns false if page has no unconsumed rows.
	One() (result.Row, bool)

	// FetchNextPage requests the next page from remote source.
	// It blocks until the page arrives or ctx is done.
	FetchNextPage(ctx context.Context) (Page, error)

	// WasApplied reports result of conditional statement
	WasApplied() bool

	Columns() result.Columns
}
