package followpos

import (
	"errors"

	"github.com/regexdfa/followpos/alphabet"
	"github.com/regexdfa/followpos/ast"
	"github.com/regexdfa/followpos/dfa"
	"github.com/regexdfa/followpos/syntax"
)

// Sentinel errors re-exported from the pipeline's internal packages, so
// callers can use errors.Is(err, followpos.ErrAmbiguousAlphabet) without
// importing alphabet/ast/syntax/dfa directly (spec.md section 7's error
// taxonomy, one sentinel per kind).
var (
	ErrUnsegmentableString = alphabet.ErrUnsegmentableString
	ErrAmbiguousAlphabet   = alphabet.ErrAmbiguousAlphabet
	ErrReservedCharacter   = alphabet.ErrReservedCharacter
	ErrEmptySymbol         = alphabet.ErrEmptySymbol

	ErrInvalidEscape = syntax.ErrInvalidEscape
	ErrUnknownToken  = syntax.ErrUnknownToken

	ErrUnexpectedToken = ast.ErrUnexpectedToken
	ErrUnclosedGroup   = ast.ErrUnclosedGroup
	ErrBadRepetition   = ast.ErrBadRepetition

	ErrStateLimitExceeded = dfa.ErrStateLimitExceeded
)

// positioned is implemented by the alphabet package's segmentation
// errors, whose Pos() is the byte length of the literal run that failed
// to segment (its end offset within that run), not an offset within the
// whole regex.
type positioned interface {
	Pos() int
}

// Position extracts the position an error occurred at, if err (or
// something it wraps) carries one. For syntax and ast errors this is the
// rune offset in the preprocessed regex; for alphabet segmentation errors
// it is the end offset within the literal run being segmented. Errors
// expose it in two ways (alphabet's errors via a Pos() method; ast/syntax
// errors via an exported Pos field), so Position normalizes both.
func Position(err error) (int, bool) {
	var withMethod positioned
	if errors.As(err, &withMethod) {
		return withMethod.Pos(), true
	}

	var invalidEscape *syntax.InvalidEscapeError
	if errors.As(err, &invalidEscape) {
		return invalidEscape.Pos, true
	}
	var unknownToken *syntax.UnknownTokenError
	if errors.As(err, &unknownToken) {
		return unknownToken.Pos, true
	}
	var unexpectedToken *ast.UnexpectedTokenError
	if errors.As(err, &unexpectedToken) {
		return unexpectedToken.Pos, true
	}
	var unclosedGroup *ast.UnclosedGroupError
	if errors.As(err, &unclosedGroup) {
		return unclosedGroup.Pos, true
	}
	var badRepetition *ast.BadRepetitionError
	if errors.As(err, &badRepetition) {
		return badRepetition.Pos, true
	}

	return 0, false
}
