package dotmap

import (
	"errors"
	"fmt"
)

// Common errors returned by Container operations
var (
	ErrInvalidMode  = errors.New("dotmap: invalid mode")
	ErrInvalidKey   = errors.New("dotmap: invalid key expression")
	ErrNotMapping   = errors.New("dotmap: value is not a mapping")
	ErrEmptyPath    = errors.New("dotmap: empty path")
	ErrEmptySegment = errors.New("dotmap: empty key segment")
	ErrInvalidJSON  = errors.New("dotmap: invalid json document")
	ErrNotObject    = errors.New("dotmap: document root is not an object")
	ErrInvalidQuery = errors.New("dotmap: invalid query")
)

// PathError records a walk that hit a value it could not descend into.
type PathError struct {
	Op      string // "put", "expand" or "overlay"
	Key     string // key as supplied by the caller
	Segment string // dot-joined prefix of Key that holds Value
	Value   any
	Err     error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("dotmap: %s %q: %q holds %T: %v", e.Op, e.Key, e.Segment, e.Value, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
