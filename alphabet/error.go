package alphabet

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is. Concrete failures are the
// *Error structs below, which wrap one of these and add positional
// context; callers that only care about the error kind can match
// against these directly.
var (
	// ErrAmbiguousAlphabet indicates a buffer admits more than one
	// decomposition into alphabet symbols.
	ErrAmbiguousAlphabet = errors.New("alphabet: ambiguous decomposition")

	// ErrUnsegmentableString indicates a buffer cannot be decomposed
	// into alphabet symbols at all.
	ErrUnsegmentableString = errors.New("alphabet: unsegmentable string")

	// ErrReservedCharacter indicates a caller-supplied alphabet symbol
	// contains a character reserved for the regex surface grammar.
	ErrReservedCharacter = errors.New("alphabet: reserved character in symbol")

	// ErrEmptySymbol indicates a caller-supplied alphabet symbol is the
	// empty string, which cannot participate in segmentation.
	ErrEmptySymbol = errors.New("alphabet: empty symbol")
)

// AmbiguousAlphabetError reports that Text admits more than one
// decomposition into alphabet symbols. Position is the offset (within
// Text) at which the ambiguity was confirmed: the end of the buffer.
type AmbiguousAlphabetError struct {
	Text     string
	Position int
}

func (e *AmbiguousAlphabetError) Error() string {
	return fmt.Sprintf("ambiguous alphabet: %q can be segmented in more than one way", e.Text)
}

// Unwrap allows errors.Is(err, ErrAmbiguousAlphabet).
func (e *AmbiguousAlphabetError) Unwrap() error { return ErrAmbiguousAlphabet }

// Pos returns the position at which the error was detected, satisfying
// the Error surface described in spec.md section 6.
func (e *AmbiguousAlphabetError) Pos() int { return e.Position }

// UnsegmentableStringError reports that Text cannot be decomposed into
// alphabet symbols at all.
type UnsegmentableStringError struct {
	Text     string
	Position int
}

func (e *UnsegmentableStringError) Error() string {
	return fmt.Sprintf("unsegmentable string: %q cannot be formed from the alphabet", e.Text)
}

// Unwrap allows errors.Is(err, ErrUnsegmentableString).
func (e *UnsegmentableStringError) Unwrap() error { return ErrUnsegmentableString }

// Pos returns the position at which the error was detected.
func (e *UnsegmentableStringError) Pos() int { return e.Position }

// ReservedCharacterError reports that a caller-supplied alphabet symbol
// contains one of the characters reserved for the regex surface grammar.
type ReservedCharacterError struct {
	Symbol string
	Char   rune
}

func (e *ReservedCharacterError) Error() string {
	return fmt.Sprintf("alphabet symbol %q contains reserved character %q", e.Symbol, e.Char)
}

// Unwrap allows errors.Is(err, ErrReservedCharacter).
func (e *ReservedCharacterError) Unwrap() error { return ErrReservedCharacter }
