// Package graph contains internal tests for the insertion-ordered edge set,
// focused on the swap-remove enumeration contract the sampler relies on.
package graph

import "testing"

// TestEdgeSet_InsertContains verifies basic set semantics.
func TestEdgeSet_InsertContains(t *testing.T) {
	t.Parallel()

	s := newEdgeSet(4)
	if s.len() != 0 {
		t.Fatalf("new set: expected len 0, got %d", s.len())
	}

	if !s.insert(NewEdge(1, 2)) {
		t.Error("insert of a fresh edge should return true")
	}
	if s.insert(NewEdge(1, 2)) {
		t.Error("duplicate insert should return false")
	}
	if !s.contains(NewEdge(1, 2)) {
		t.Error("contains should see the inserted edge")
	}
	if s.contains(NewEdge(2, 1)) {
		t.Error("contains must not match the flipped pair")
	}
	if s.len() != 1 {
		t.Errorf("expected len 1, got %d", s.len())
	}
}

// TestEdgeSet_SwapRemove verifies that removal moves the last element into
// the vacated slot and keeps the index consistent.
func TestEdgeSet_SwapRemove(t *testing.T) {
	t.Parallel()

	s := newEdgeSet(4)
	for i := 0; i < 4; i++ {
		s.insert(NewEdge(i, i))
	}

	if !s.remove(NewEdge(1, 1)) {
		t.Fatal("remove of a present edge should return true")
	}
	if s.remove(NewEdge(1, 1)) {
		t.Error("second remove of the same edge should return false")
	}
	if s.len() != 3 {
		t.Fatalf("expected len 3 after removal, got %d", s.len())
	}

	// Slot 1 is now occupied by the former last element (3,3).
	if got := s.at(1); got != NewEdge(3, 3) {
		t.Errorf("slot 1: expected (3, 3), got %v", got)
	}

	// The moved element must stay removable through the index.
	if !s.remove(NewEdge(3, 3)) {
		t.Error("moved edge should still be removable")
	}
	if s.contains(NewEdge(3, 3)) {
		t.Error("removed moved edge must not be contained")
	}
}

// TestEdgeSet_AllIsSnapshot verifies that all() copies the backing slice.
func TestEdgeSet_AllIsSnapshot(t *testing.T) {
	t.Parallel()

	s := newEdgeSet(2)
	s.insert(NewEdge(0, 0))
	s.insert(NewEdge(1, 1))

	snapshot := s.all()
	s.remove(NewEdge(0, 0))

	if len(snapshot) != 2 || snapshot[0] != NewEdge(0, 0) {
		t.Errorf("snapshot must be unaffected by later mutation, got %v", snapshot)
	}
}
