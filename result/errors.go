package result

import (
	"errors"

	"github.com/cqlpager/cqlpager/internal/xerrors"
)

var (
	// ErrConcurrentConsumption is returned when consumption call started while
	// another one is in flight on the same cursor
	ErrConcurrentConsumption = xerrors.Wrap(errors.New("cqlpager: another consumption call is in flight on this cursor"))

	// ErrPageNotDrained is returned by FetchMoreResults if current page still has buffered rows
	ErrPageNotDrained = xerrors.Wrap(errors.New("cqlpager: current page has unconsumed rows"))

	// ErrNilPage is returned when page source completes fetch without page and error
	ErrNilPage = xerrors.Wrap(errors.New("cqlpager: page source returned nil page"))
)

// FetchError reports about failed fetch of the next page.
// Unwrap returns the page source error unchanged.
type FetchError struct {
	err error
}

func NewFetchError(err error) *FetchError {
	return &FetchError{err: err}
}

func (e *FetchError) Error() string {
	return "cqlpager: fetch next page failed: " + e.err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.err
}

// IsFetchFailure checks err reports about failed page fetch
func IsFetchFailure(err error) bool {
	var fetchErr *FetchError

	return xerrors.As(err, &fetchErr)
}
