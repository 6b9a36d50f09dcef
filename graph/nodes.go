// SPDX-License-Identifier: MIT
// Package: bigs/graph
//
// nodes.go — read-only per-node views: Variables() and Constraints().
//
// Determinism:
//   - Variables/Constraints enumerate labels in increasing order.
//   - Node.Neighbors() returns labels sorted ascending (stable logs/goldens).
// Role:
//   - Consumer-facing: used to validate regularity and inspect adjacency.
//     The sampling engine itself never reads these views.

package graph

import "sort"

// nodeKind distinguishes the two sides of the bipartition.
type nodeKind int

const (
	kindVariable nodeKind = iota
	kindConstraint
)

// Node is a read-only view of one node and its adjacency.
//
// Obtained via Graph.Variables or Graph.Constraints; it stays valid only as
// long as the underlying Graph is not mutated.
type Node struct {
	label     int
	kind      nodeKind
	neighbors neighborSet
}

// Label returns the label of the node.
func (n Node) Label() int {
	return n.label
}

// Degree returns the number of neighbors of the node.
// Complexity: O(1)
func (n Node) Degree() int {
	return len(n.neighbors)
}

// Neighbors returns the labels of the node's neighbors, sorted ascending.
// Complexity: O(d·log d) for degree d.
func (n Node) Neighbors() []int {
	out := make([]int, 0, len(n.neighbors))
	for label := range n.neighbors {
		out = append(out, label)
	}
	sort.Ints(out)

	return out
}

// HasNeighbor reports whether the node is adjacent to the given label.
// Complexity: O(1)
func (n Node) HasNeighbor(label int) bool {
	_, ok := n.neighbors[label]

	return ok
}

// IsVariable reports whether the node belongs to the variable side.
func (n Node) IsVariable() bool {
	return n.kind == kindVariable
}

// IsConstraint reports whether the node belongs to the constraint side.
func (n Node) IsConstraint() bool {
	return n.kind == kindConstraint
}

// Variables returns a view of every variable in increasing label order,
// including isolated ones inside the current range.
// Complexity: O(V) for the views; neighbor data is shared, not copied.
func (g *Graph) Variables() []Node {
	return makeNodes(g.variableNeighbors, kindVariable)
}

// Constraints returns a view of every constraint in increasing label order,
// including isolated ones inside the current range.
// Complexity: O(C) for the views; neighbor data is shared, not copied.
func (g *Graph) Constraints() []Node {
	return makeNodes(g.constraintNeighbors, kindConstraint)
}

// makeNodes wraps one side's neighbor sets into label-ordered views.
func makeNodes(sets []neighborSet, kind nodeKind) []Node {
	nodes := make([]Node, len(sets))
	for label, neighbors := range sets {
		nodes[label] = Node{label: label, kind: kind, neighbors: neighbors}
	}

	return nodes
}
