// SPDX-License-Identifier: MIT
// Package: bigs/graph
//
// edge.go — the Edge value type.
//
// Design contract (strict):
//   - Edge is an immutable value: two non-negative integer labels, compared
//     and hashed by value (it is a valid map key as-is).
//   - NewEdge performs no validation: label legality is decided by the
//     context an Edge is used in, never by the Edge itself.
//   - Variables and constraints are disjoint node sets, so Edge{2, 2} is a
//     perfectly ordinary edge, not a self-loop.

package graph

import "fmt"

// Edge is a (variable, constraint) pair identifying one bipartite edge.
//
// Since variables and constraints are different sets of nodes, an Edge may
// carry the same value for both fields.
type Edge struct {
	// Variable is the label of the variable-side endpoint.
	Variable int `json:"variable"`

	// Constraint is the label of the constraint-side endpoint.
	Constraint int `json:"constraint"`
}

// NewEdge creates a new Edge for the given variable and constraint labels.
// Complexity: O(1)
func NewEdge(variable, constraint int) Edge {
	return Edge{Variable: variable, Constraint: constraint}
}

// String renders the edge as "(variable, constraint)".
// Deterministic; suitable for logs and golden output.
func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d)", e.Variable, e.Constraint)
}
