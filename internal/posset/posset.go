// Package posset implements a sparse set of AST leaf positions plus a
// canonical, order-independent key for it.
//
// A DFA state in the followpos construction *is* an immutable set of
// leaf positions (spec.md section 3, "DFA state"): two states are the
// same state iff they carry the same set of positions, regardless of
// how that set was discovered. PositionSet gives O(1) membership and
// insertion during state exploration; Key gives the canonical,
// content-addressed identity used to detect "have we seen this state
// before" and to name states deterministically in discovery order.
package posset

import (
	"hash/fnv"
	"sort"
)

// PositionSet is a set of non-negative leaf positions with O(1)
// membership testing and insertion, and O(n) canonicalization.
//
// The zero value is not usable; construct with New.
type PositionSet struct {
	sparse []int32 // maps position -> index in dense, or stale
	dense  []int32 // the actual positions, insertion order
	size   int32
}

// New creates an empty PositionSet over the universe [0, universe).
// universe is the number of leaf positions assigned by the parser
// (spec.md section 4.5), i.e. k in the followpos table.
func New(universe int) *PositionSet {
	return &PositionSet{
		sparse: make([]int32, universe),
		dense:  make([]int32, 0, universe),
	}
}

// Insert adds p to the set. Reports whether p was newly added.
func (s *PositionSet) Insert(p int) bool {
	if s.Contains(p) {
		return false
	}
	s.dense = append(s.dense, int32(p))
	s.sparse[p] = s.size
	s.size++
	return true
}

// Contains reports whether p is a member of the set.
func (s *PositionSet) Contains(p int) bool {
	if p < 0 || p >= len(s.sparse) {
		return false
	}
	idx := s.sparse[p]
	return idx < s.size && int(s.dense[idx]) == p
}

// Union adds every position of other into s.
func (s *PositionSet) Union(other *PositionSet) {
	for _, p := range other.dense[:other.size] {
		s.Insert(int(p))
	}
}

// Len returns the number of positions in the set.
func (s *PositionSet) Len() int {
	return int(s.size)
}

// IsEmpty reports whether the set has no positions. An empty set is the
// dead state (spec.md section 4.7).
func (s *PositionSet) IsEmpty() bool {
	return s.size == 0
}

// Values returns the set's positions in unspecified order. The returned
// slice is a fresh copy; the caller may modify it freely.
func (s *PositionSet) Values() []int {
	out := make([]int, s.size)
	for i, p := range s.dense[:s.size] {
		out[i] = int(p)
	}
	return out
}

// Sorted returns the set's positions in ascending order.
func (s *PositionSet) Sorted() []int {
	out := s.Values()
	sort.Ints(out)
	return out
}

// Key is the canonical, order-independent identity of a PositionSet.
// Two sets with equal membership always produce equal keys.
type Key uint64

// ComputeKey returns the canonical key for a set of positions, built by
// sorting the positions and hashing the sorted sequence with FNV-1a.
// Adapted from the discovery-order DFA state cache key computation used
// for NFA-state sets; here it canonicalizes sets of leaf positions
// instead (spec.md design note "Sets of positions as hash keys").
func ComputeKey(positions []int) Key {
	if len(positions) == 0 {
		return Key(0)
	}
	sorted := make([]int, len(positions))
	copy(sorted, positions)
	sort.Ints(sorted)

	h := fnv.New64a()
	for _, p := range sorted {
		v := uint32(p)
		_, _ = h.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
	}
	return Key(h.Sum64())
}

// Key returns the canonical key for the set's current contents.
func (s *PositionSet) Key() Key {
	return ComputeKey(s.Values())
}
