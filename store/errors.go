// store/errors.go - Error taxonomy shared by both backends
package store

import (
	"errors"
	"fmt"
)

// ErrNotFound marks an operation that addressed a nonexistent id. Delete is
// deliberately not idempotent: a second delete of the same id reports
// ErrNotFound again, so absence stays distinguishable from "nothing to do".
var ErrNotFound = errors.New("record not found")

// NotFound wraps ErrNotFound with the entity and id that missed.
func NotFound(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
}

// BackendError wraps a failure of the remote backend itself (network,
// transport, constraint violation). Backend-specific codes are not
// interpreted; the underlying error rides along unmodified.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Backend wraps err as a BackendError unless it already belongs to the
// taxonomy (not-found passes through so both stores report it identically).
func Backend(op string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return &BackendError{Op: op, Err: err}
}
