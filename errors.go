package startupmetrics

import (
	"errors"
	"fmt"

	"github.com/blackroad/startupmetrics/store"
)

// The storage failure taxonomy is owned by the store package; it is
// re-exported here so callers can handle every engine failure from a single
// import.
type (
	NotFoundError = store.NotFoundError
	StoreError    = store.StoreError
)

// ErrNotFound matches every NotFoundError through errors.Is.
var ErrNotFound = store.ErrNotFound

// ErrInvalidArgument matches every InvalidArgumentError through errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports an input rejected before any record was read
// or written.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidArgument) match any InvalidArgumentError.
func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }
