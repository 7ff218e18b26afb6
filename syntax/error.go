package syntax

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrInvalidEscape indicates a '\' with no following character, or
	// one followed by a character the alphabet does not recognize.
	ErrInvalidEscape = errors.New("syntax: invalid escape")

	// ErrUnknownToken indicates a character the scanner cannot classify
	// as a symbol, operator, or alphabet escape.
	ErrUnknownToken = errors.New("syntax: unknown token")
)

// InvalidEscapeError reports a malformed '\' escape at Pos in the
// preprocessed regex: either nothing follows the backslash, or what
// follows is not a recognized alphabet symbol.
type InvalidEscapeError struct {
	Pos int
	Got string
}

func (e *InvalidEscapeError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("invalid escape at position %d: trailing backslash", e.Pos)
	}
	return fmt.Sprintf("invalid escape at position %d: %q is not in the alphabet", e.Pos, e.Got)
}

// Unwrap allows errors.Is(err, ErrInvalidEscape).
func (e *InvalidEscapeError) Unwrap() error { return ErrInvalidEscape }

// UnknownTokenError reports a character the scanner could not classify.
type UnknownTokenError struct {
	Pos  int
	Char rune
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token %q at position %d", e.Char, e.Pos)
}

// Unwrap allows errors.Is(err, ErrUnknownToken).
func (e *UnknownTokenError) Unwrap() error { return ErrUnknownToken }
