package dfa

import (
	"fmt"

	"github.com/regexdfa/followpos/ast"
	"github.com/regexdfa/followpos/followpos"
	"github.com/regexdfa/followpos/internal/posset"
)

// Builder runs subset construction directly over a followpos.Analysis,
// with no intermediate NFA and no minimization pass (spec.md section
// 4.7: states are discovered, never merged or removed after the fact).
//
// Grounded on original_source/dfa.py's DFAConstructor.construct_dfa: a
// worklist over position sets, a transition computed per symbol by
// unioning followpos over every leaf in the current set whose symbol
// matches, and dead-state handling for the empty set.
type Builder struct {
	analysis *followpos.Analysis
	symbols  []string
	cfg      Config
}

// NewBuilder builds a Builder. symbols is the alphabet to build
// transitions over; it must not include the epsilon marker (matching
// original_source/dfa.py's "symbols.remove('$')").
func NewBuilder(analysis *followpos.Analysis, symbols []string, cfg Config) *Builder {
	return &Builder{analysis: analysis, symbols: sortedStrings(symbols), cfg: cfg}
}

// Build runs subset construction to completion and returns the DFA.
func (b *Builder) Build() (*DFA, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	endPos := -1
	for pos, leaf := range b.analysis.Leaves {
		if leaf.Value == ast.EndMarker {
			endPos = pos
		}
	}

	registry := make(map[posset.Key]string)
	sets := make(map[string]*posset.PositionSet)
	var order []string
	var pending []string

	register := func(set *posset.PositionSet) string {
		key := set.Key()
		if name, ok := registry[key]; ok {
			return name
		}
		name := fmt.Sprintf("q%d", len(order))
		registry[key] = name
		sets[name] = set
		order = append(order, name)
		pending = append(pending, name)
		return name
	}

	start := register(b.analysis.Start)
	states := make(map[string]*State)

	for len(pending) > 0 {
		if len(order) > b.cfg.MaxStates {
			return nil, &StateLimitExceededError{Limit: b.cfg.MaxStates}
		}

		name := pending[0]
		pending = pending[1:]
		set := sets[name]

		trans := make(map[string]string, len(b.symbols))
		for _, sym := range b.symbols {
			target := posset.New(b.analysis.Universe)
			for _, pos := range set.Values() {
				if leaf := b.analysis.Leaves[pos]; leaf.Value == sym {
					target.Union(b.analysis.Table.Follow(pos))
				}
			}
			trans[sym] = register(target)
		}

		states[name] = &State{
			Name:        name,
			Accept:      endPos >= 0 && set.Contains(endPos),
			transitions: trans,
		}
	}

	return &DFA{start: start, order: order, states: states}, nil
}
