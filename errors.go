package needlework

import (
	"fmt"

	"github.com/pkg/errors"
)

// MaxStitches is the number of stitch records a reader accepts before it gives up on the input.
const MaxStitches = 1_000_000

// ParseError reports a malformed, truncated or oversized pattern file.
type ParseError struct {
	Format string
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Format == "" {
		return "parse error: " + e.Msg
	}
	return fmt.Sprintf("%s: parse error: %s", e.Format, e.Msg)
}

// NewParseError returns a ParseError with a formatted message.
func NewParseError(format, msg string, args ...any) error {
	return &ParseError{Format: format, Msg: fmt.Sprintf(msg, args...)}
}

// LimitError returns a ParseError naming the exceeded limit and the observed value.
func LimitError(format, what string, limit, observed int) error {
	return NewParseError(format, "%s limit exceeded: limit %d, observed %d", what, limit, observed)
}

// IsParseError reports whether any error in the chain is a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
