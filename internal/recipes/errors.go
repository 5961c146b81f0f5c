package recipes

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// DataError reports a malformed record in the raw catalog. Loading stops at
// the first one; no partial catalog is ever returned.
type DataError struct {
	// Index is the record's position in the input, starting at 0.
	Index int
	// ID is the record id when it could be read, 0 otherwise.
	ID     int
	Field  string
	Reason string
}

func (e *DataError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("recipe %d (record %d): %s: %s", e.ID, e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("record %d: %s: %s", e.Index, e.Field, e.Reason)
}

func dataError(index, id int, field, reason string) error {
	err := errors.WithStack(&DataError{Index: index, ID: id, Field: field, Reason: reason})
	return errors.WithHint(err, "every recipe needs id, name, servings, time, description, ingredients and ustensils")
}

// AsDataError returns the DataError carried by err, if any.
func AsDataError(err error) (*DataError, bool) {
	var de *DataError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
