// Package alphabet implements the user-supplied finite alphabet and the
// segmentation operations over it (spec.md section 4.1).
//
// An Alphabet is a finite set of non-empty literal strings the regex is
// defined over. Because symbols may be multi-character, deciding which
// substrings of a raw regex buffer correspond to which symbols is a
// small combinatorial problem in its own right: Segment proves a
// decomposition is unique, Tokenize produces one.
package alphabet

import (
	"strings"
	"sync"

	"github.com/coregx/ahocorasick"
)

// Reserved is the set of characters that can never appear inside a
// multi-character user-supplied alphabet symbol, because the regex
// surface grammar assigns them metacharacter meaning (spec.md section 6).
// A single-character symbol may be one of them, except '$' and '#' (see
// New).
const Reserved = "+*().{},\\$#"

// Epsilon is the reserved marker for the empty string. It is never a
// member of the caller-supplied alphabet, but Alphabet always treats it
// as a recognizable one-character symbol internally (spec.md section 3:
// "extended internally with a distinguished epsilon marker $"), since a
// literal '$' reaching the tokenizer must segment as itself.
const Epsilon = "$"

// Alphabet is a finite, validated set of literal symbols.
//
// An Alphabet is immutable once constructed and safe for concurrent use
// by independent compilations (spec.md section 5).
type Alphabet struct {
	symbols map[string]struct{}

	autoOnce sync.Once
	auto     *ahocorasick.Automaton
	autoErr  error
}

// New validates and builds an Alphabet from the given symbols.
//
// Each symbol must be non-empty. A single-character symbol may be one of
// the Reserved characters other than '$' and '#', since the only way such a symbol can ever
// reach the scanner is through a '\' escape (spec.md section 6: "\c:
// escape: literal c, must be in the alphabet") — original_source/lexer.py
// performs no reserved-character validation at all, precisely so an
// escaped reserved character can stand for itself (e.g. alphabet
// {a,b,+}, regex `a\+b`). A multi-character symbol containing a Reserved
// character is still rejected: the preprocessor's buffer-then-flush never
// lets a structural character reach a literal run, so such a symbol could
// never be produced by Segment or by a single-rune escape. '$' and '#'
// are rejected even alone: '$' already denotes epsilon, and '#' is the
// end-marker leaf the parser appends to every regex.
func New(symbols ...string) (*Alphabet, error) {
	set := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		if s == "" {
			return nil, ErrEmptySymbol
		}
		if s == Epsilon || s == "#" {
			return nil, &ReservedCharacterError{Symbol: s, Char: rune(s[0])}
		}
		if len([]rune(s)) > 1 {
			if i := strings.IndexAny(s, Reserved); i >= 0 {
				return nil, &ReservedCharacterError{Symbol: s, Char: rune(s[i])}
			}
		}
		set[s] = struct{}{}
	}
	return &Alphabet{symbols: set}, nil
}

// Contains reports whether s is a member of the user-supplied alphabet.
// It does not consider the internal epsilon marker a member; use
// ContainsExtended for that.
func (a *Alphabet) Contains(s string) bool {
	_, ok := a.symbols[s]
	return ok
}

// ContainsExtended reports whether s is a member of the alphabet
// extended with the epsilon marker, matching the membership test the
// scanner and tokenizer actually use.
func (a *Alphabet) ContainsExtended(s string) bool {
	if s == Epsilon {
		return true
	}
	return a.Contains(s)
}

// Len returns the number of symbols in the user-supplied alphabet
// (excluding the epsilon marker).
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols returns the user-supplied symbols in unspecified order.
func (a *Alphabet) Symbols() []string {
	out := make([]string, 0, len(a.symbols))
	for s := range a.symbols {
		out = append(out, s)
	}
	return out
}

// extended returns the symbol set used for segmentation: the
// user-supplied alphabet plus the epsilon marker.
func (a *Alphabet) extended() map[string]struct{} {
	ext := make(map[string]struct{}, len(a.symbols)+1)
	for s := range a.symbols {
		ext[s] = struct{}{}
	}
	ext[Epsilon] = struct{}{}
	return ext
}

// automaton lazily builds (once) and returns the Aho-Corasick automaton
// over the extended symbol set, used by Tokenize for greedy-leftmost
// decomposition once uniqueness has already been established.
func (a *Alphabet) automaton() (*ahocorasick.Automaton, error) {
	a.autoOnce.Do(func() {
		builder := ahocorasick.NewBuilder()
		for s := range a.extended() {
			builder.AddPattern([]byte(s))
		}
		a.auto, a.autoErr = builder.Build()
	})
	return a.auto, a.autoErr
}
