package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/rpy-format/token"
)

var (
	ErrParse                 = errors.New("parse error")
	ErrMalformedHeader       = fmt.Errorf("%w: malformed header", ErrParse)
	ErrInvalidBlockStart     = fmt.Errorf("%w: invalid block start", ErrParse)
	ErrInvalidSizeAttribute  = fmt.Errorf("%w: invalid size attribute", ErrParse)
	ErrInvalidValueAttribute = fmt.Errorf("%w: invalid value attribute", ErrParse)
	ErrUnexpectedEndOfBlock  = fmt.Errorf("%w: expected }", ErrParse)
	ErrNestingTooDeep        = fmt.Errorf("%w: blocks nested too deeply", ErrParse)

	ErrMissingTerminator = token.ErrMissingTerminator
	ErrUnterminatedQuote = token.ErrUnterminatedQuote
)

// Error locates a parse failure.  Line is 1-based.
type Error struct {
	Err      error
	Filename string
	Line     int
	Off      int
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes every *Error match ErrParse, including scan failures.
func (e *Error) Is(target error) bool {
	return target == ErrParse
}

func (e *Error) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
	}
	return fmt.Sprintf("%s:%d: %s", e.Filename, e.Line, e.Err.Error())
}
