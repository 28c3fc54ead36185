package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnreadable is returned when the catalog file cannot be opened or read.
	// The catalog is left untouched.
	ErrSourceUnreadable = errors.New("could not open the file")

	// ErrInvalidFormat marks a line without a course number or a course name
	ErrInvalidFormat = errors.New("invalid course data format")
)

// LineError describes one rejected line of a catalog file
type LineError struct {
	Line int    // 1-based line number
	Text string // raw line as read
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
