package irc

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput          = errors.New("empty input")
	ErrMissingCommand      = errors.New("missing command")
	ErrMalformedTagSection = errors.New("malformed tag section")
)

// ParseError is returned for every rejected line. Err is one of the
// sentinel errors above.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse irc line %q: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Kind returns a short stable name for the error, used as a metric label
// and in API responses.
func (e *ParseError) Kind() string {
	switch {
	case errors.Is(e.Err, ErrEmptyInput):
		return "empty_input"
	case errors.Is(e.Err, ErrMissingCommand):
		return "missing_command"
	case errors.Is(e.Err, ErrMalformedTagSection):
		return "malformed_tag_section"
	}
	return "unknown"
}

func newParseError(line string, err error) *ParseError {
	return &ParseError{Line: line, Err: err}
}
