// SPDX-License-Identifier: MIT
// Package: bigs/graph
//
// edgeset.go — insertion-ordered edge set with O(1) swap-remove.
//
// Design contract (strict):
//   - contains/insert/remove are O(1) (hash map + backing slice).
//   - Enumeration order is insertion order, except that remove moves the
//     last element into the vacated slot (swap-remove). The order is
//     therefore fully determined by the call history — the property the
//     sampling engine's first-fit swap search depends on.
//   - Not safe for concurrent use; owned by exactly one Graph.

package graph

// edgeSet is the canonical edge collection backing a Graph.
// items holds the enumeration order; index maps each edge to its slot.
type edgeSet struct {
	items []Edge       // enumeration order (random access by slot)
	index map[Edge]int // edge → slot in items
}

// newEdgeSet allocates an empty set with the given capacity hint.
// Complexity: O(1) beyond the allocations.
func newEdgeSet(capacity int) edgeSet {
	return edgeSet{
		items: make([]Edge, 0, capacity),
		index: make(map[Edge]int, capacity),
	}
}

// contains reports whether e is in the set. Complexity: O(1).
func (s *edgeSet) contains(e Edge) bool {
	_, ok := s.index[e]

	return ok
}

// insert appends e and returns true, or returns false if already present.
// Complexity: O(1) amortized.
func (s *edgeSet) insert(e Edge) bool {
	if _, ok := s.index[e]; ok {
		return false
	}
	s.index[e] = len(s.items)
	s.items = append(s.items, e)

	return true
}

// remove deletes e via swap-remove and returns whether it was present.
// The last element takes over the vacated slot, keeping random access dense.
// Complexity: O(1).
func (s *edgeSet) remove(e Edge) bool {
	slot, ok := s.index[e]
	if !ok {
		return false
	}
	last := len(s.items) - 1
	if slot != last {
		moved := s.items[last] // element that fills the hole
		s.items[slot] = moved
		s.index[moved] = slot
	}
	s.items = s.items[:last]
	delete(s.index, e)

	return true
}

// at returns the edge at the given slot (0 ≤ slot < len). Complexity: O(1).
func (s *edgeSet) at(slot int) Edge {
	return s.items[slot]
}

// len returns the number of edges in the set. Complexity: O(1).
func (s *edgeSet) len() int {
	return len(s.items)
}

// all returns a fresh copy of the enumeration-ordered backing slice,
// so callers may mutate the set while holding the snapshot.
// Complexity: O(len).
func (s *edgeSet) all() []Edge {
	out := make([]Edge, len(s.items))
	copy(out, s.items)

	return out
}
