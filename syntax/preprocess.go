package syntax

import (
	"strings"
	"unicode"

	"github.com/regexdfa/followpos/alphabet"
)

// closers is the set of characters before which an explicit concatenation
// dot is never inserted, because the character itself either closes a
// group, opens a repetition, or is an operator that already binds to its
// left.
//
// Grounded on original_source/lexer.py's process_regex: the literal
// character class ").+*}{" used in its "insert a dot unless the next
// character is one of these" checks (the two occurrences guarding the
// char after '\' and the char after '*', ')', '}').
const closers = ").+*}{"

// preGroupOrEscape is the distinct set process_regex checks the *previous*
// emitted chunk against before inserting a dot ahead of '(' or '\\': the
// literal "().+*{\\" — note it includes '(' and '\\' and excludes '}',
// unlike closers. Using closers here instead (as a single shared set)
// wrongly suppresses the dot after ')' or '}' and wrongly inserts one
// after '(' or '\\', breaking nested groups and grouped escapes.
const preGroupOrEscape = "().+*{\\"

// metachars is the set of characters that flush the pending literal
// buffer and are themselves handled structurally rather than folded into
// an alphabet symbol run.
const metachars = "+*()}{\\"

// Preprocessor rewrites a raw regex into a form where every implicit
// concatenation and leading/trailing/doubled '+' has been made explicit,
// and every run of literal text has been verified to segment uniquely
// over the alphabet (spec.md section 4.2).
type Preprocessor struct {
	alphabet *alphabet.Alphabet
}

// NewPreprocessor builds a Preprocessor over the given alphabet.
func NewPreprocessor(a *alphabet.Alphabet) *Preprocessor {
	return &Preprocessor{alphabet: a}
}

// chunkInSet reports whether a single emitted chunk is exactly one
// character and that character is a member of set. Multi-character chunks
// (flushed literal runs) never match, since a run of alphabet symbols
// joined by concatenation dots can never equal one of these single
// characters.
func chunkInSet(chunk, set string) bool {
	return len(chunk) == 1 && strings.ContainsAny(chunk, set)
}

// Process rewrites raw into its preprocessed form. raw is the regex text
// exactly as supplied by the caller, with alphabet symbols interspersed
// with the structural characters '+', '*', '(', ')', '{', '}', '\\'.
//
// Ported from original_source/lexer.py's process_regex, which buffers
// runs of non-structural characters and flushes them through the
// alphabet's segmentation whenever a structural character, the end of
// input, or a '{...}' block boundary is reached. Two deviations from the
// original are deliberate bounds-safety fixes: where the Python checks
// "regex[i+1] == X and i < n-1" (evaluating the indexing before the
// bounds check, which panics for a '(' or unterminated '{' as the very
// last character), Process checks the bound first. Malformed input of
// that shape still fails, just later and without a crash: the scanner or
// parser reports it as an unexpected end of input.
//
// Whitespace in raw is dropped before any of this, except a whitespace
// rune directly after an unescaped '\\', which the escape takes literally.
func (p *Preprocessor) Process(raw string) (string, error) {
	runes := make([]rune, 0, len(raw))
	escaped := false
	for _, r := range raw {
		if unicode.IsSpace(r) && !escaped {
			continue
		}
		escaped = r == '\\' && !escaped
		runes = append(runes, r)
	}
	n := len(runes)

	var result []string
	var buf []rune

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		text := string(buf)
		buf = buf[:0]
		tokens, err := p.alphabet.Segment(text)
		if err != nil {
			return err
		}
		result = append(result, insertConcatenation(tokens))
		return nil
	}

	needDotBeforeGroupOrEscape := func() bool {
		return len(result) > 0 && !chunkInSet(result[len(result)-1], preGroupOrEscape)
	}

	for i := 0; i < n; i++ {
		ch := runes[i]
		if !strings.ContainsRune(metachars, ch) {
			buf = append(buf, ch)
			continue
		}

		if err := flush(); err != nil {
			return "", err
		}

		if ch == '(' && needDotBeforeGroupOrEscape() {
			result = append(result, ".")
		}
		if ch == '\\' && needDotBeforeGroupOrEscape() {
			result = append(result, ".")
		}
		if ch == '+' && i == 0 {
			result = append(result, "$")
		}

		result = append(result, string(ch))

		if ch == '(' && i+1 < n && runes[i+1] == ')' {
			result = append(result, "$")
		}

		if ch == '\\' && i+1 < n {
			// A backslash as the very last character is left bare in the
			// output; the scanner reports that as a trailing-escape error
			// when it reaches end of input still expecting the escaped
			// character.
			result = append(result, string(runes[i+1]))
			i++
			if i+1 < n && !strings.ContainsRune(closers, runes[i+1]) {
				result = append(result, ".")
			}
		}

		if ch == '+' && i+1 < n && runes[i+1] == '+' {
			result = append(result, "$")
		}
		if ch == '+' && i == n-1 {
			result = append(result, "$")
		}

		if strings.ContainsRune("*)}", ch) && i+1 < n && !strings.ContainsRune(closers, runes[i+1]) {
			result = append(result, ".")
		}

		if ch == '{' {
			for i+1 < n && runes[i+1] != '}' {
				i++
				result = append(result, string(runes[i]))
			}
		}
	}

	if err := flush(); err != nil {
		return "", err
	}

	return strings.Join(result, ""), nil
}

// insertConcatenation joins a run of alphabet tokens (produced by
// Segment over a literal buffer) with explicit concatenation dots, so
// "abc" over alphabet {a,b,c} becomes "a.b.c".
//
// Grounded on original_source/lexer.py's insert_concatenation_operators.
func insertConcatenation(tokens []string) string {
	return strings.Join(tokens, ".")
}
