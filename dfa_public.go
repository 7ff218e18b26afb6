package followpos

import "github.com/regexdfa/followpos/dfa"

// DFA is the externally visible, read-only view of a compiled automaton
// (spec.md section 6's external interface): a start state, the accepting
// states, and a total transition function over the alphabet minus the
// epsilon marker. Internal representation (position sets, the followpos
// table) is not exposed; callers only ever see canonical state names.
type DFA struct {
	inner *dfa.DFA
}

// StartState returns the canonical name of the start state.
func (d *DFA) StartState() string {
	return d.inner.StartState()
}

// AcceptStates returns the accepting state names, in ascending discovery
// order.
func (d *DFA) AcceptStates() []string {
	return d.inner.AcceptStates()
}

// States returns every reachable state name, in discovery order.
func (d *DFA) States() []string {
	return d.inner.States()
}

// Transitions returns the full transition function: state name -> symbol ->
// next state name. The function is total over the alphabet for every
// reachable state (spec.md section 8 invariant 1).
func (d *DFA) Transitions() map[string]map[string]string {
	return d.inner.Transitions()
}

// Step returns the state reached from state on symbol, and whether state
// and symbol were both recognized.
func (d *DFA) Step(state, symbol string) (string, bool) {
	s, ok := d.inner.State(state)
	if !ok {
		return "", false
	}
	return s.Transition(symbol)
}

// Accepts reports whether state is an accepting state.
func (d *DFA) Accepts(state string) bool {
	s, ok := d.inner.State(state)
	return ok && s.Accept
}

// IsDead reports whether state is the distinguished dead state: every
// transition self-loops and it is not accepting.
func (d *DFA) IsDead(state string) bool {
	return d.inner.IsDead(state)
}

// String renders the DFA's start state, accept states, and transition
// table for debugging.
func (d *DFA) String() string {
	return d.inner.String()
}
