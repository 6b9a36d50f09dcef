// SPDX-License-Identifier: MIT
// Package: bigs/sampler
//
// builder.go — chainable parameter accumulator with a validating Build step.
//
// Design contract (strict):
//   - The Builder is caller-owned mutable state; Build() is the single
//     finalization step producing an immutable Sampler (no hidden globals).
//   - All parameters default to 0; setters may be chained in any order and
//     called repeatedly (last-wins).
//   - Two sizing modes:
//     – explicit:  NumberOfVariables/NumberOfConstraints, checked against
//       the integer-product balance equation;
//     – scaled:    ScalingFactor(s) with s > 0 derives both counts from the
//       degrees, balanced by construction, and overrides explicit counts.
//   - Build never panics; every rejection is an *InvalidParametersError.
//
// Validation is a plain integer-product equality on purpose: it is exact,
// overflow aside, and has no degree-zero edge cases. On top of the balance,
// degrees must not exceed the opposite side's node count — the simplicity
// bound that keeps every accepted parameter set realizable.

package sampler

// Builder accumulates the four sampling parameters before validation.
//
// The zero value is ready to use:
//
//	s, err := sampler.NewBuilder().
//		NumberOfVariables(10).
//		NumberOfConstraints(6).
//		VariableDegree(3).
//		ConstraintDegree(5).
//		Build()
type Builder struct {
	variableDegree      int
	constraintDegree    int
	numberOfVariables   int
	numberOfConstraints int
	scalingFactor       int
}

// NewBuilder returns a fresh Builder with every parameter set to 0.
// Complexity: O(1)
func NewBuilder() *Builder {
	return &Builder{}
}

// VariableDegree fixes the degree of every variable. Default is 0.
func (b *Builder) VariableDegree(degree int) *Builder {
	b.variableDegree = degree

	return b
}

// ConstraintDegree fixes the degree of every constraint. Default is 0.
func (b *Builder) ConstraintDegree(degree int) *Builder {
	b.constraintDegree = degree

	return b
}

// NumberOfVariables fixes the number of variables. Default is 0.
// Ignored when a positive ScalingFactor is set.
func (b *Builder) NumberOfVariables(n int) *Builder {
	b.numberOfVariables = n

	return b
}

// NumberOfConstraints fixes the number of constraints. Default is 0.
// Ignored when a positive ScalingFactor is set.
func (b *Builder) NumberOfConstraints(n int) *Builder {
	b.numberOfConstraints = n

	return b
}

// ScalingFactor switches the Builder to scaled sizing: with factor s > 0,
// Build derives
//
//	numberOfVariables   = constraintDegree · s
//	numberOfConstraints = variableDegree   · s
//
// which satisfies the stub balance by construction. Default is 0 (explicit
// counts are used).
func (b *Builder) ScalingFactor(s int) *Builder {
	b.scalingFactor = s

	return b
}

// Build validates the accumulated parameters and returns an immutable
// Sampler, or an *InvalidParametersError when a parameter is negative, the
// total stub count differs between the two sides
// (numberOfVariables·variableDegree != numberOfConstraints·constraintDegree),
// or a degree exceeds the opposite side's node count.
//
// The degree bound is a simplicity requirement, not bookkeeping: a variable
// of degree d needs d distinct constraint neighbors, so degrees beyond the
// opposite count describe a graph that cannot exist without duplicate edges
// and would stall the repair loop forever.
//
// The Builder stays usable after Build; later setter calls never affect
// previously built Samplers.
// Complexity: O(1)
func (b *Builder) Build() (Sampler, error) {
	numVariables, numConstraints := b.numberOfVariables, b.numberOfConstraints
	if b.scalingFactor > 0 {
		// Scaled sizing: both counts derive from the shared factor.
		numVariables = b.constraintDegree * b.scalingFactor
		numConstraints = b.variableDegree * b.scalingFactor
	}

	// Simplicity bound, checked only for sides that have nodes: an empty
	// side with a nominal degree contributes zero stubs and stays feasible.
	infeasible := (numVariables > 0 && b.variableDegree > numConstraints) ||
		(numConstraints > 0 && b.constraintDegree > numVariables)

	invalid := b.variableDegree < 0 || b.constraintDegree < 0 ||
		numVariables < 0 || numConstraints < 0 || b.scalingFactor < 0 ||
		numVariables*b.variableDegree != numConstraints*b.constraintDegree ||
		infeasible
	if invalid {
		return Sampler{}, &InvalidParametersError{
			NumberOfVariables:   numVariables,
			NumberOfConstraints: numConstraints,
			VariableDegree:      b.variableDegree,
			ConstraintDegree:    b.constraintDegree,
		}
	}

	return Sampler{
		variableDegree:      b.variableDegree,
		constraintDegree:    b.constraintDegree,
		numberOfVariables:   numVariables,
		numberOfConstraints: numConstraints,
	}, nil
}
