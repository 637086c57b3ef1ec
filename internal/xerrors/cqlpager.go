package xerrors

import (
	"errors"
)

type isCqlpagerError interface {
	isCqlpagerError()
}

// IsCqlpager checks err is made by library (not by page source or user callback)
func IsCqlpager(err error) bool {
	var e isCqlpagerError

	return errors.As(err, &e)
}

type cqlpagerError struct {
	err error
}

func (e *cqlpagerError) isCqlpagerError() {}

func (e *cqlpagerError) Error() string {
	return e.err.Error()
}

func (e *cqlpagerError) Unwrap() error {
	return e.err
}

// Wrap makes internal library error
func Wrap(err error) error {
	return &cqlpagerError{err: err}
}
