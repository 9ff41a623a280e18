package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup matches no record. Callers rely
// on it to tell "no match" apart from a failing store.
var ErrNotFound = errors.New("not found")

// DuplicateError reports a uniqueness violation on a single field,
// enforced by the store's unique indexes.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// AsDuplicate unwraps err as a DuplicateError if it is one.
func AsDuplicate(err error) (*DuplicateError, bool) {
	var de *DuplicateError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
