package syntax

import (
	"strings"
	"unicode"

	"github.com/regexdfa/followpos/alphabet"
)

// delimiters are the runes that end a literal symbol span outside of a
// {...} block: the structural operators, grouping characters, the
// explicit concatenation dot, and the escape marker.
const delimiters = ".+*(){}\\"

// Scanner produces the Token stream the parser consumes from an already
// preprocessed regex (see Preprocessor.Process). It is not safe for
// concurrent use; each Scanner walks its own string once.
//
// Grounded on original_source/lexer.py's next/peek: a one-token
// lookahead buffer over a single forward pass, with a brace-depth flag
// that switches digit runs between "literal symbol" and "repetition
// count" interpretation.
type Scanner struct {
	alphabet *alphabet.Alphabet
	runes    []rune
	pos      int

	braceDepth int

	peeked    *Token
	peekedErr error
}

// NewScanner builds a Scanner over an already-preprocessed regex string.
func NewScanner(a *alphabet.Alphabet, processed string) *Scanner {
	return &Scanner{alphabet: a, runes: []rune(processed)}
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() (Token, error) {
	if s.peeked == nil && s.peekedErr == nil {
		tok, err := s.scan()
		s.peeked = &tok
		s.peekedErr = err
	}
	if s.peekedErr != nil {
		return Token{}, s.peekedErr
	}
	return *s.peeked, nil
}

// Next consumes and returns the next token.
func (s *Scanner) Next() (Token, error) {
	if s.peeked != nil || s.peekedErr != nil {
		tok, err := *s.peeked, s.peekedErr
		s.peeked, s.peekedErr = nil, nil
		return tok, err
	}
	return s.scan()
}

func (s *Scanner) scan() (Token, error) {
	// Skip whitespace exactly as original_source/lexer.py's Lexer.next()
	// does, regardless of brace depth: spec.md section 6 renders
	// repetition with spaces ("X { n , m }"), and those spaces must not
	// reach the digit/comma/brace switch below.
	for s.pos < len(s.runes) && unicode.IsSpace(s.runes[s.pos]) {
		s.pos++
	}

	if s.pos >= len(s.runes) {
		return Token{Kind: EOF, Pos: s.pos}, nil
	}

	start := s.pos
	ch := s.runes[s.pos]

	if s.braceDepth > 0 {
		switch {
		case ch >= '0' && ch <= '9':
			return s.scanNumber(), nil
		case ch == ',':
			s.pos++
			return Token{Kind: Comma, Value: ",", Pos: start}, nil
		case ch == '}':
			s.pos++
			s.braceDepth--
			return Token{Kind: RBrace, Value: "}", Pos: start}, nil
		default:
			s.pos++
			return Token{}, &UnknownTokenError{Pos: start, Char: ch}
		}
	}

	switch ch {
	case '.':
		s.pos++
		return Token{Kind: Concat, Value: ".", Pos: start}, nil
	case '+':
		s.pos++
		return Token{Kind: Union, Value: "+", Pos: start}, nil
	case '*':
		s.pos++
		return Token{Kind: Star, Value: "*", Pos: start}, nil
	case '(':
		s.pos++
		return Token{Kind: LParen, Value: "(", Pos: start}, nil
	case ')':
		s.pos++
		return Token{Kind: RParen, Value: ")", Pos: start}, nil
	case '{':
		s.pos++
		s.braceDepth++
		return Token{Kind: LBrace, Value: "{", Pos: start}, nil
	case '}':
		// A bare '}' with no matching '{' cannot be produced by the
		// preprocessor; treat it as unknown rather than silently
		// accepting mismatched structure.
		s.pos++
		return Token{}, &UnknownTokenError{Pos: start, Char: ch}
	case '\\':
		return s.scanEscape()
	}

	return s.scanSymbol(), nil
}

// scanNumber consumes a maximal run of ASCII digits inside a {...} block.
func (s *Scanner) scanNumber() Token {
	start := s.pos
	for s.pos < len(s.runes) && s.runes[s.pos] >= '0' && s.runes[s.pos] <= '9' {
		s.pos++
	}
	return Token{Kind: Number, Value: string(s.runes[start:s.pos]), Pos: start}
}

// scanEscape consumes '\' followed by exactly one raw character and
// validates it directly against the alphabet (including the epsilon
// marker), bypassing segmentation. This is the only way to force a
// single-rune symbol interpretation independent of the ambiguity check
// the preprocessor otherwise enforces over literal runs.
func (s *Scanner) scanEscape() (Token, error) {
	start := s.pos
	s.pos++ // consume '\'
	if s.pos >= len(s.runes) {
		return Token{}, &InvalidEscapeError{Pos: start, Got: ""}
	}
	escaped := s.runes[s.pos]
	s.pos++
	got := string(escaped)
	if !s.alphabet.ContainsExtended(got) {
		return Token{}, &InvalidEscapeError{Pos: start, Got: got}
	}
	return Token{Kind: Symbol, Value: got, Pos: start}, nil
}

// scanSymbol consumes a maximal run of non-delimiter, non-whitespace
// runes. The preprocessor already proved any such run decomposes uniquely
// into a single alphabet symbol (otherwise it would have inserted a
// concatenation dot inside it), so the scan need not re-segment.
func (s *Scanner) scanSymbol() Token {
	start := s.pos
	for s.pos < len(s.runes) && !strings.ContainsRune(delimiters, s.runes[s.pos]) && !unicode.IsSpace(s.runes[s.pos]) {
		s.pos++
	}
	return Token{Kind: Symbol, Value: string(s.runes[start:s.pos]), Pos: start}
}
