// SPDX-License-Identifier: MIT
// Package: bigs/graph
//
// marshal.go — JSON codec for Graph.
//
// Wire shape (stable, part of the public contract):
//
//	{
//	  "number_of_variables":   3,
//	  "number_of_constraints": 2,
//	  "edges": [{"variable": 0, "constraint": 1}, ...]
//	}
//
// Node counts are carried explicitly so isolated trailing nodes survive a
// round-trip (the edge list alone cannot express them). Edges serialize in
// the graph's deterministic enumeration order.

package graph

import (
	"encoding/json"
	"fmt"
)

// graphJSON is the wire representation of a Graph.
type graphJSON struct {
	NumberOfVariables   int    `json:"number_of_variables"`
	NumberOfConstraints int    `json:"number_of_constraints"`
	Edges               []Edge `json:"edges"`
}

// MarshalJSON implements json.Marshaler.
// Complexity: O(E)
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(graphJSON{
		NumberOfVariables:   g.NumberOfVariables(),
		NumberOfConstraints: g.NumberOfConstraints(),
		Edges:               g.Edges(),
	})
}

// UnmarshalJSON implements json.Unmarshaler. The receiver is fully replaced;
// edges are re-inserted in wire order, so enumeration order round-trips.
//
// Wire data is external input, so it is validated rather than trusted:
// negative node counts or edge labels yield a descriptive error and leave
// the receiver untouched.
// Complexity: O(V + C + E)
func (g *Graph) UnmarshalJSON(data []byte) error {
	var wire graphJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.NumberOfVariables < 0 || wire.NumberOfConstraints < 0 {
		return fmt.Errorf("graph: negative node count in wire data (%d variables, %d constraints)",
			wire.NumberOfVariables, wire.NumberOfConstraints)
	}
	for _, e := range wire.Edges {
		if e.Variable < 0 || e.Constraint < 0 {
			return fmt.Errorf("graph: negative label in wire edge %v", e)
		}
	}

	rebuilt := NewSized(wire.NumberOfVariables, wire.NumberOfConstraints, len(wire.Edges))
	for _, e := range wire.Edges {
		rebuilt.Insert(e) // duplicate wire entries collapse silently
	}
	*g = *rebuilt

	return nil
}
