// Package graph defines the bipartite Edge and Graph types used across bigs.
//
// A Graph is a set of variable nodes and constraint nodes together with a
// set of (variable, constraint) edges. Nodes are addressed purely by
// non-negative integer label — there is no vertex object to allocate, no
// pointer structure to chase. The package offers:
//
//   - Configuration primitives:
//     – Edge:      an immutable (Variable, Constraint) pair, value equality.
//     – Graph:     mutable adjacency structure over Edge values.
//   - Mutations:
//     – Insert:    O(1) duplicate-safe edge insertion, growing node ranges
//     on demand (labels never need pre-registration).
//     – Remove:    O(1) removal; node counts never shrink.
//   - Queries:
//     – Contains:                O(1) membership against the canonical edge set.
//     – Edges / EdgeAt:          deterministic enumeration with random access.
//     – Variables / Constraints: per-node degree and neighbor views in
//     increasing label order.
//   - Serialization:
//     – Graph implements json.Marshaler/json.Unmarshaler; a graph round-trips
//     through its node counts plus edge list.
//
// Invariant (kept by every mutation):
//
//	e ∈ edges ⇔ e.Constraint ∈ variableNeighbors[e.Variable]
//	          ⇔ e.Variable   ∈ constraintNeighbors[e.Constraint]
//
// Determinism:
//
//   - Edge enumeration order is fully determined by the sequence of Insert and
//     Remove calls: insertion order, except that removing an edge moves the
//     last edge into the removed slot (swap-remove). Two graphs built by the
//     same mutation history enumerate identically.
//
// Guarantees:
//
//   - No locking: a Graph is exclusively owned by its creator and is not safe
//     for concurrent mutation. Independent graphs never share state.
//   - No panics for regular use; out-of-range (negative) labels are a
//     programming-contract violation and fault like any slice misuse.
//
// See individual method documentation for detailed contracts and complexity.
package graph
