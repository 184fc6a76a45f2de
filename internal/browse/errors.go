package browse

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Enumeration failure kinds. They are matched with errors.Is through a
// *PathError.
var (
	ErrNotFound         = errors.New("no such file or directory")
	ErrNotADirectory    = errors.New("not a directory")
	ErrPermissionDenied = errors.New("permission denied")
)

// PathError reports a failed directory enumeration.
type PathError struct {
	Op   string // operation that failed, e.g. "browse"
	Path string
	Kind error // one of the Err* kinds, nil when unclassified
	Err  error // underlying cause (optional)
}

// NewPathError wraps err and classifies it into one of the enumeration kinds.
func NewPathError(op, path string, err error) *PathError {
	return &PathError{
		Op:   op,
		Path: path,
		Kind: classify(err),
		Err:  err,
	}
}

// Error implements the error interface for PathError.
func (e *PathError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	case e.Kind != nil:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	default:
		return fmt.Sprintf("%s %s: failed", e.Op, e.Path)
	}
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *PathError) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, ErrNotADirectory), errors.Is(err, syscall.ENOTDIR):
		return ErrNotADirectory
	case errors.Is(err, ErrPermissionDenied), errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	default:
		return nil
	}
}

// IsNotFound checks if the error is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, ErrNotFound)
}

// IsNotADirectory checks if the error is or wraps ErrNotADirectory.
func IsNotADirectory(err error) bool {
	return err != nil && errors.Is(err, ErrNotADirectory)
}

// IsPermissionDenied checks if the error is or wraps ErrPermissionDenied.
func IsPermissionDenied(err error) bool {
	return err != nil && errors.Is(err, ErrPermissionDenied)
}
