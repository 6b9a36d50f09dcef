// Package sampler draws uniformly-random simple regular bipartite graphs.
//
// A Sampler is an immutable description of the target structure — variable
// degree, constraint degree and the node counts — built through a validating
// Builder. Sampling itself is a one-shot engine run: a configuration-model
// pairing of randomly shuffled degree stubs, repaired into a simple graph
// with targeted double edge swaps.
//
// The package offers the following key components:
//
//   - Builder:
//     – chainable setters for the four parameters (all default 0), plus a
//     scaling-factor mode that derives balanced node counts;
//     – Build() validates the stub balance (numVariables·variableDegree ==
//     numConstraints·constraintDegree) and returns either an immutable
//     Sampler or an InvalidParametersError carrying all four values.
//   - Sampler:
//     – pure value; accessors for every parameter plus NumberOfEdges();
//     – SampleWith(rng) produces one *graph.Graph per call; any number of
//     independent samples may be drawn from the same Sampler.
//   - Rand:
//     – the injected randomness capability: anything with a uniform
//     Shuffle(n, swap) — *math/rand.Rand satisfies it directly.
//
// Guarantees:
//
//   - Every sampled variable has degree exactly VariableDegree(); every
//     constraint exactly ConstraintDegree(); no edge appears twice. Exact
//     uniformity over all such graphs is approximated, not claimed.
//   - Determinism: identical Sampler + identically seeded Rand ⇒ identical
//     graph, edge for edge.
//   - Validation failures are recoverable errors (errors.Is against
//     ErrInvalidParameters); the package never panics.
//   - A sampling call runs to completion with no shared mutable state, so
//     concurrent calls with distinct Rand instances are safe.
//
// See individual function documentation for detailed contracts and
// performance notes.
package sampler
