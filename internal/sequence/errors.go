package sequence

import (
	"errors"
	"fmt"
)

// ErrFrameNotPresent is returned when a query names a frame outside the
// recorded frame set of a sequence.
var ErrFrameNotPresent = errors.New("frame not present in sequence")

// FrameError reports a query for a frame the sequence does not hold.
type FrameError struct {
	Pattern string // standard pattern of the queried sequence
	Frame   int
}

// Error implements the error interface for FrameError.
func (e *FrameError) Error() string {
	return fmt.Sprintf("sequence %s: frame %d: %v", e.Pattern, e.Frame, ErrFrameNotPresent)
}

// Unwrap returns ErrFrameNotPresent so callers can match with errors.Is.
func (e *FrameError) Unwrap() error {
	return ErrFrameNotPresent
}

// IsFrameNotPresent checks if the error is or wraps ErrFrameNotPresent.
func IsFrameNotPresent(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrFrameNotPresent)
}
