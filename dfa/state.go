// Package dfa builds a deterministic finite automaton directly from a
// followpos analysis via subset construction (spec.md section 4.7),
// with no intermediate NFA and no minimization pass.
package dfa

import "sort"

// State is one state of a constructed DFA: a canonical name, whether it
// accepts, and its transition function over the alphabet.
//
// Grounded on dfa/lazy/state.go's State, retargeted from a byte-keyed
// transition map addressed by StateID to a string-symbol-keyed map
// addressed by the canonical "q<n>" name spec.md section 4.7 assigns in
// discovery order.
type State struct {
	Name        string
	Accept      bool
	transitions map[string]string
}

// Transition returns the state reached from s on symbol, and whether
// one exists. Every state built by Builder has a total transition
// function (the dead state absorbs everything), so this is always true
// for any symbol in the alphabet the DFA was built over.
func (s *State) Transition(symbol string) (string, bool) {
	next, ok := s.transitions[symbol]
	return next, ok
}

// Symbols returns the alphabet symbols s has an outgoing transition for,
// in ascending lexical order.
func (s *State) Symbols() []string {
	out := make([]string, 0, len(s.transitions))
	for sym := range s.transitions {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}
