// SPDX-License-Identifier: MIT
// Package: bigs/graph
//
// graph.go — the mutable bipartite Graph structure.
//
// Design contract (strict):
//   - Three structures kept mutually consistent by every mutation:
//     variableNeighbors, constraintNeighbors, and the canonical edge set.
//   - Insert/Remove/Contains are O(1); node counts are O(1) slice lengths.
//   - Node ranges grow on demand when an inserted edge references a label
//     beyond the current bounds; they never shrink (monotonic for the
//     lifetime of the Graph).
//   - No locking: a Graph is exclusively owned by whoever built it.
//
// Performance tips:
//   - Labels 0..n-1 are assumed for n nodes per side. Inserting an edge with
//     an unnecessarily large label allocates neighbor slots for every label
//     up to it.

package graph

// neighborSet is the per-node adjacency set (labels of the opposite side).
type neighborSet map[int]struct{}

// Graph is a bipartite graph over integer-labeled variables and constraints.
//
// The zero value is not usable; construct with New or NewSized.
// A Graph can be assembled manually edge by edge, or produced by a Sampler.
type Graph struct {
	// variableNeighbors[v] holds the constraint labels adjacent to variable v.
	variableNeighbors []neighborSet

	// constraintNeighbors[c] holds the variable labels adjacent to constraint c.
	constraintNeighbors []neighborSet

	// edges is the canonical membership oracle and enumeration order.
	edges edgeSet
}

// New creates a new empty Graph.
// Complexity: O(1)
func New() *Graph {
	return &Graph{edges: newEdgeSet(0)}
}

// NewSized creates a Graph pre-sized for the given node counts and edge
// capacity: both sides start with numVariables/numConstraints empty nodes
// (so NumberOfVariables/NumberOfConstraints report them immediately), and
// internal storage is pre-allocated for numEdges edges.
//
// Pre-sizing is an optimization only — the Graph still grows past these
// bounds on demand, exactly like one built with New.
// Complexity: O(numVariables + numConstraints)
func NewSized(numVariables, numConstraints, numEdges int) *Graph {
	// Average degrees make honest capacity hints for the neighbor sets.
	var variableHint, constraintHint int
	if numVariables > 0 {
		variableHint = numEdges / numVariables
	}
	if numConstraints > 0 {
		constraintHint = numEdges / numConstraints
	}

	return &Graph{
		variableNeighbors:   makeNeighborSets(numVariables, variableHint),
		constraintNeighbors: makeNeighborSets(numConstraints, constraintHint),
		edges:               newEdgeSet(numEdges),
	}
}

// makeNeighborSets allocates n empty neighbor sets with a shared capacity hint.
func makeNeighborSets(n, hint int) []neighborSet {
	sets := make([]neighborSet, n)
	for i := range sets {
		sets[i] = make(neighborSet, hint)
	}

	return sets
}

// Contains reports whether the given edge is in the graph.
// Complexity: O(1)
func (g *Graph) Contains(e Edge) bool {
	return g.edges.contains(e)
}

// Insert adds the given edge and returns true, or returns false without any
// mutation if the edge is already present.
//
// If e.Variable is greater than or equal to NumberOfVariables, the variable
// range grows by the difference (intermediate labels become isolated nodes).
// Same holds for constraints.
// Complexity: O(1) amortized (plus range growth when labels exceed bounds).
func (g *Graph) Insert(e Edge) bool {
	if !g.edges.insert(e) {
		return false
	}
	g.insertVariable(e)
	g.insertConstraint(e)

	return true
}

// insertVariable records e on the variable side, growing the range if needed.
func (g *Graph) insertVariable(e Edge) {
	if e.Variable >= len(g.variableNeighbors) {
		g.variableNeighbors = growNeighborSets(g.variableNeighbors, e.Variable+1)
	}
	g.variableNeighbors[e.Variable][e.Constraint] = struct{}{}
}

// insertConstraint records e on the constraint side, growing the range if needed.
func (g *Graph) insertConstraint(e Edge) {
	if e.Constraint >= len(g.constraintNeighbors) {
		g.constraintNeighbors = growNeighborSets(g.constraintNeighbors, e.Constraint+1)
	}
	g.constraintNeighbors[e.Constraint][e.Variable] = struct{}{}
}

// growNeighborSets extends sets with empty neighbor sets up to length n.
func growNeighborSets(sets []neighborSet, n int) []neighborSet {
	for len(sets) < n {
		sets = append(sets, make(neighborSet))
	}

	return sets
}

// Remove deletes the given edge if present and returns whether it was.
//
// Node counts are NOT updated: the number of variables and constraints is
// monotonic non-decreasing for the lifetime of a Graph.
// Complexity: O(1)
func (g *Graph) Remove(e Edge) bool {
	if !g.edges.remove(e) {
		return false
	}
	delete(g.variableNeighbors[e.Variable], e.Constraint)
	delete(g.constraintNeighbors[e.Constraint], e.Variable)

	return true
}

// Edges returns all edges as a fresh slice in the graph's enumeration order.
//
// The order is not insertion order in general (removals swap the last edge
// into the vacated slot), but it is fully determined by the mutation history,
// so identically built graphs enumerate identically.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	return g.edges.all()
}

// EdgeAt returns the edge at the given enumeration slot,
// 0 ≤ slot < NumberOfEdges. Random access in O(1); same order as Edges.
func (g *Graph) EdgeAt(slot int) Edge {
	return g.edges.at(slot)
}

// NumberOfVariables returns the number of variables in the graph: one more
// than the highest variable label ever inserted (or the pre-sized count).
// Complexity: O(1)
func (g *Graph) NumberOfVariables() int {
	return len(g.variableNeighbors)
}

// NumberOfConstraints returns the number of constraints in the graph: one
// more than the highest constraint label ever inserted (or the pre-sized count).
// Complexity: O(1)
func (g *Graph) NumberOfConstraints() int {
	return len(g.constraintNeighbors)
}

// NumberOfEdges returns the number of edges in the graph.
// Complexity: O(1)
func (g *Graph) NumberOfEdges() int {
	return g.edges.len()
}

// Equal reports whether both graphs have the same node counts and the same
// edge set. Enumeration order does not matter.
// Complexity: O(E)
func (g *Graph) Equal(other *Graph) bool {
	if g.NumberOfVariables() != other.NumberOfVariables() ||
		g.NumberOfConstraints() != other.NumberOfConstraints() ||
		g.NumberOfEdges() != other.NumberOfEdges() {
		return false
	}
	for slot := 0; slot < g.NumberOfEdges(); slot++ {
		if !other.Contains(g.EdgeAt(slot)) {
			return false
		}
	}

	return true
}
