// SPDX-License-Identifier: MIT
// Package: bigs/sampler
//
// sampler.go — the immutable Sampler value and the Rand capability.
//
// Design contract (strict):
//   - Sampler is a pure value: SampleWith never mutates it, so one Sampler
//     serves arbitrarily many samples, including from concurrent goroutines
//     as long as each call owns its Rand.
//   - All randomness flows through the injected Rand; the package never
//     touches a global random source. Identically seeded Rands reproduce
//     identical graphs.

package sampler

import "github.com/katalvlaran/bigs/graph"

// Rand is the randomness capability a sampling call consumes: a uniform
// in-place shuffle (every permutation of n elements equally likely).
//
// *math/rand.Rand satisfies Rand directly:
//
//	s.SampleWith(rand.New(rand.NewSource(seed)))
type Rand interface {
	// Shuffle pseudo-randomizes the order of n elements via the swap callback.
	Shuffle(n int, swap func(i, j int))
}

// Sampler is a validated, immutable description of a regular bipartite
// structure. Construct it through NewBuilder and Build.
type Sampler struct {
	variableDegree      int
	constraintDegree    int
	numberOfVariables   int
	numberOfConstraints int
}

// SampleWith draws one graph using the given random source.
//
// The result satisfies, for every call:
//   - every variable has degree exactly VariableDegree();
//   - every constraint has degree exactly ConstraintDegree();
//   - no duplicate edges;
//   - NumberOfEdges() of the graph equals NumberOfEdges() of the Sampler.
//
// Determinism: a fixed rng state sequence yields a fixed graph. rng must not
// be shared with a concurrent sampling call.
// Complexity: expected ~O(E) plus swap-search cost on collisions; dense
// parameter regimes raise the search cost but never the guarantees.
func (s Sampler) SampleWith(rng Rand) *graph.Graph {
	return newSample(s, rng).run()
}

// VariableDegree returns the degree of every variable.
func (s Sampler) VariableDegree() int {
	return s.variableDegree
}

// ConstraintDegree returns the degree of every constraint.
func (s Sampler) ConstraintDegree() int {
	return s.constraintDegree
}

// NumberOfVariables returns the number of variables of every sample.
func (s Sampler) NumberOfVariables() int {
	return s.numberOfVariables
}

// NumberOfConstraints returns the number of constraints of every sample.
func (s Sampler) NumberOfConstraints() int {
	return s.numberOfConstraints
}

// NumberOfEdges returns the edge count of every sample:
// variableDegree·numberOfVariables, which the Build-time balance equation
// guarantees equals constraintDegree·numberOfConstraints.
func (s Sampler) NumberOfEdges() int {
	return s.variableDegree * s.numberOfVariables
}
