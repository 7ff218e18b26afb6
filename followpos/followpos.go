// Package followpos computes the nullable/firstpos/lastpos/followpos
// relation over a positioned regex AST (spec.md section 4.6), the
// direct input to the DFA builder's subset construction.
package followpos

import (
	"fmt"
	"sort"
	"strings"

	"github.com/regexdfa/followpos/ast"
	"github.com/regexdfa/followpos/internal/posset"
)

// Table is the followpos relation: for each leaf position, the set of
// positions that can immediately follow it in some string the regex
// matches.
type Table struct {
	follow   map[int]*posset.PositionSet
	universe int
}

// Follow returns the follow set for pos, or nil if pos was never
// assigned (not a SymbolNode leaf).
func (t *Table) Follow(pos int) *posset.PositionSet {
	return t.follow[pos]
}

// Positions returns every leaf position the table has an entry for, in
// ascending order.
func (t *Table) Positions() []int {
	out := make([]int, 0, len(t.follow))
	for pos := range t.follow {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}

// String renders the table as "Position p: Follow positions -> {...}"
// lines, one per position in ascending order.
//
// Grounded on original_source/dfa.py's DFAConstructor debug printing of
// followpos_table.
func (t *Table) String() string {
	var b strings.Builder
	for _, pos := range t.Positions() {
		fmt.Fprintf(&b, "Position %d: Follow positions -> %v\n", pos, t.follow[pos].Sorted())
	}
	return b.String()
}

// Analysis bundles the per-leaf facts the DFA builder needs: the
// followpos table itself, the position assigned to each leaf, and the
// leaf node (so the builder can read its symbol value) for each
// position.
type Analysis struct {
	Root     *ast.Node
	Universe int // one past the highest assigned leaf position
	Leaves   map[int]*ast.Node
	Table    *Table
	Start    *posset.PositionSet // firstpos(Root): the DFA's start state
}

// Analyze computes the full followpos analysis of root, which must
// already have had ast.AssignPositions applied.
//
// Grounded on original_source/dfa.py's DFAConstructor: nullable,
// firstpos, and lastpos are memoized per node here (the Python
// implementation recomputes them from scratch at every call site,
// which is still correct but quadratic over the tree depth; caching by
// node identity keeps the same recursive structure without that cost).
func Analyze(root *ast.Node) *Analysis {
	universe := nextPosition(root)
	a := &analyzer{
		universe: universe,
		nullableCache: make(map[*ast.Node]bool),
		firstCache:    make(map[*ast.Node]*posset.PositionSet),
		lastCache:     make(map[*ast.Node]*posset.PositionSet),
	}

	leaves := make(map[int]*ast.Node)
	collectLeaves(root, leaves)

	table := &Table{follow: make(map[int]*posset.PositionSet), universe: universe}
	for pos := range leaves {
		table.follow[pos] = posset.New(universe)
	}
	a.calculateFollowpos(root, table)

	return &Analysis{
		Root:     root,
		Universe: universe,
		Leaves:   leaves,
		Table:    table,
		Start:    a.firstpos(root),
	}
}

// Nullable reports whether n can match the empty string.
func Nullable(n *ast.Node) bool {
	return (&analyzer{
		nullableCache: make(map[*ast.Node]bool),
		firstCache:    make(map[*ast.Node]*posset.PositionSet),
		lastCache:     make(map[*ast.Node]*posset.PositionSet),
	}).nullable(n)
}

// Firstpos returns the set of positions that can match the first symbol
// of some string n matches. universe must be large enough to hold every
// position in n (use Analysis.Universe).
func Firstpos(n *ast.Node, universe int) *posset.PositionSet {
	a := &analyzer{
		universe:      universe,
		nullableCache: make(map[*ast.Node]bool),
		firstCache:    make(map[*ast.Node]*posset.PositionSet),
		lastCache:     make(map[*ast.Node]*posset.PositionSet),
	}
	return a.firstpos(n)
}

// Lastpos returns the set of positions that can match the last symbol of
// some string n matches.
func Lastpos(n *ast.Node, universe int) *posset.PositionSet {
	a := &analyzer{
		universe:      universe,
		nullableCache: make(map[*ast.Node]bool),
		firstCache:    make(map[*ast.Node]*posset.PositionSet),
		lastCache:     make(map[*ast.Node]*posset.PositionSet),
	}
	return a.lastpos(n)
}

type analyzer struct {
	universe      int
	nullableCache map[*ast.Node]bool
	firstCache    map[*ast.Node]*posset.PositionSet
	lastCache     map[*ast.Node]*posset.PositionSet
}

func (a *analyzer) nullable(n *ast.Node) bool {
	if n == nil {
		return true
	}
	if v, ok := a.nullableCache[n]; ok {
		return v
	}
	var v bool
	switch n.Kind {
	case ast.SymbolNode:
		v = false
	case ast.EpsilonNode:
		v = true
	case ast.StarNode:
		v = true
	case ast.ConcatNode:
		v = a.nullable(n.Left) && a.nullable(n.Right)
	case ast.UnionNode:
		v = a.nullable(n.Left) || a.nullable(n.Right)
	}
	a.nullableCache[n] = v
	return v
}

func (a *analyzer) firstpos(n *ast.Node) *posset.PositionSet {
	if n == nil {
		return posset.New(a.universe)
	}
	if v, ok := a.firstCache[n]; ok {
		return v
	}
	var v *posset.PositionSet
	switch n.Kind {
	case ast.SymbolNode:
		v = posset.New(a.universe)
		v.Insert(n.Position)
	case ast.EpsilonNode:
		v = posset.New(a.universe)
	case ast.StarNode:
		v = a.firstpos(n.Child)
	case ast.ConcatNode:
		v = posset.New(a.universe)
		v.Union(a.firstpos(n.Left))
		if a.nullable(n.Left) {
			v.Union(a.firstpos(n.Right))
		}
	case ast.UnionNode:
		v = posset.New(a.universe)
		v.Union(a.firstpos(n.Left))
		v.Union(a.firstpos(n.Right))
	default:
		v = posset.New(a.universe)
	}
	a.firstCache[n] = v
	return v
}

func (a *analyzer) lastpos(n *ast.Node) *posset.PositionSet {
	if n == nil {
		return posset.New(a.universe)
	}
	if v, ok := a.lastCache[n]; ok {
		return v
	}
	var v *posset.PositionSet
	switch n.Kind {
	case ast.SymbolNode:
		v = posset.New(a.universe)
		v.Insert(n.Position)
	case ast.EpsilonNode:
		v = posset.New(a.universe)
	case ast.StarNode:
		v = a.lastpos(n.Child)
	case ast.ConcatNode:
		v = posset.New(a.universe)
		v.Union(a.lastpos(n.Right))
		if a.nullable(n.Right) {
			v.Union(a.lastpos(n.Left))
		}
	case ast.UnionNode:
		v = posset.New(a.universe)
		v.Union(a.lastpos(n.Left))
		v.Union(a.lastpos(n.Right))
	default:
		v = posset.New(a.universe)
	}
	a.lastCache[n] = v
	return v
}

func (a *analyzer) calculateFollowpos(n *ast.Node, table *Table) {
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.ConcatNode:
		first := a.firstpos(n.Right)
		for _, pos := range a.lastpos(n.Left).Values() {
			table.follow[pos].Union(first)
		}
	case ast.StarNode:
		first := a.firstpos(n.Child)
		for _, pos := range a.lastpos(n.Child).Values() {
			table.follow[pos].Union(first)
		}
	}
	a.calculateFollowpos(n.Left, table)
	a.calculateFollowpos(n.Right, table)
	if n.Kind == ast.StarNode {
		a.calculateFollowpos(n.Child, table)
	}
}

func collectLeaves(n *ast.Node, out map[int]*ast.Node) {
	if n == nil {
		return
	}
	if n.Kind == ast.SymbolNode {
		out[n.Position] = n
	}
	collectLeaves(n.Left, out)
	collectLeaves(n.Right, out)
	if n.Kind == ast.StarNode {
		collectLeaves(n.Child, out)
	}
}

// nextPosition walks n the same way ast.AssignPositions does and
// returns one past the highest position seen, i.e. the value
// AssignPositions itself returned.
func nextPosition(n *ast.Node) int {
	max := 0
	var walk func(n *ast.Node)
	walk = func(n *ast.Node) {
		if n == nil {
			return
		}
		if n.Kind == ast.SymbolNode && n.Position > max {
			max = n.Position
		}
		walk(n.Left)
		walk(n.Right)
		walk(n.Child)
	}
	walk(n)
	return max + 1
}
