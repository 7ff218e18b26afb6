// Package followpos compiles a regular expression over a caller-supplied
// alphabet directly into a deterministic finite automaton, using the
// Aho-Sethi-Ullman followpos construction: no intermediate NFA, no
// subset-construction-then-minimize pass, just nullable/firstpos/lastpos/
// followpos computed once over the annotated syntax tree and a worklist
// that discovers DFA states by their frozen position sets.
//
// Basic usage:
//
//	dfa, err := followpos.Compile("(a+b)*abb", []string{"a", "b"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dfa.StartState())
//	fmt.Println(dfa.AcceptStates())
//
// The alphabet may contain multi-character symbols (e.g. "ab", "12"); the
// tokenizer resolves any ambiguity in how input text decomposes into
// symbols before the regex is ever parsed, and rejects alphabets where that
// decomposition is not unique.
//
// Supported regex surface: implicit concatenation, '+' for union, '*' for
// Kleene closure, '{n}'/'{n,}'/'{n,m}' repetition, '(...)' grouping, '$'
// for the epsilon literal, '\c' to escape an alphabet symbol that collides
// with a reserved character, and whitespace (ignored). Character classes,
// anchors, backreferences, lookaround, and capturing groups are not part of
// this grammar.
package followpos
