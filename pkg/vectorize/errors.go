package vectorize

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned by Vectorize when the input image has
// zero width/height or dimensions that would overflow the coordinate
// space used internally (spec §7).
var ErrInvalidDimensions = errors.New("vectorize: invalid image dimensions")

// InvariantError reports a violated internal invariant: a bug in this
// package rather than bad input, distinguished so callers can tell the
// two apart with errors.As instead of string-matching.
type InvariantError struct {
	Stage string
	Msg   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("vectorize: internal invariant violated at %s: %s", e.Stage, e.Msg)
}
