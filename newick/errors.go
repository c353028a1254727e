package newick

import (
	"errors"
	"fmt"
)

// ErrMalformed is wrapped by every grammar-violation error, so callers can
// match the whole class with errors.Is while the message pinpoints the
// offending byte.
var ErrMalformed = errors.New("newick: malformed input")

// malformedf builds a grammar-violation error carrying the absolute byte
// offset at which the violation was detected.
func malformedf(offset int64, format string, args ...any) error {
	return fmt.Errorf("%w: %s (byte %d)", ErrMalformed, fmt.Sprintf(format, args...), offset)
}
