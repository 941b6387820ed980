package either

import (
	"fmt"

	"github.com/pkg/errors"

	"either-codec/value"
)

// ErrNotSet is returned when encoding an either value whose case was never
// set. The wire formats have no representation for "no case".
var ErrNotSet = errors.New("either: no case is set")

// UnexpectedTypeError reports a decoded value whose top-level shape is not
// among the legal shapes of the target either type. Payload decode failures
// after a correct shape selection are never converted into this error.
type UnexpectedTypeError struct {
	// Value is the buffered offending value.
	Value value.Value
	// Expected is the fixed, per-type description of acceptable shapes.
	Expected string
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("invalid type: %s, expected %s", e.Value.Describe(), e.Expected)
}
