package result

import (
	"context"

	"github.com/cqlpager/cqlpager/async"
)

// Set is a paged cursor over query result.
//
// At most one consumption call (FetchMoreResults, One, Several, All, Collect
// or active Stream) may be in flight on the Set at any time. Violating calls
// fail fast with ErrConcurrentConsumption.
// State getters must not be called while consumption call is in flight.
type Set interface {
	// IsFullyFetched reports that the last fetched page had no continuation
	IsFullyFetched() bool

	// AvailableWithoutFetching returns count of buffered and unconsumed rows
	AvailableWithoutFetching() int

	// IsExhausted reports that no more rows can be retrieved
	IsExhausted() bool

	// FetchMoreResults fetches the next page into the buffer.
	// It fails with ErrPageNotDrained when buffer is not empty and
	// does nothing when cursor is fully fetched.
	FetchMoreResults(ctx context.Context) *async.Future[struct{}]

	// One returns the next row or nil if result is exhausted.
	One(ctx context.Context) *async.Future[Row]

	// Several returns up to amount rows. Fewer rows means the result is exhausted.
	Several(ctx context.Context, amount int) *async.Future[[]Row]

	// All returns all remaining rows. Memory grows with the result size.
	All(ctx context.Context) *async.Future[[]Row]

	// Collect passes every remaining row to fn without accumulating them.
	// Future value is a count of rows passed to fn.
	Collect(ctx context.Context, fn func(Row) error) *async.Future[int]

	// Stream makes push-style stream over remaining rows.
	// Stream holds the cursor until it ends or fails.
	Stream(ctx context.Context) Stream

	Columns() Columns
	WasApplied() bool
}
