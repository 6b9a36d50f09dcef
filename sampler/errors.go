// SPDX-License-Identifier: MIT
// Package: bigs/sampler
//
// errors.go — sentinel error and structured validation failure.
//
// Error policy (explicit and strict):
//   - Callers branch with errors.Is(err, ErrInvalidParameters).
//   - The concrete *InvalidParametersError carries all four offending values
//     for rendering; retrieve it with errors.As when the numbers matter.
//   - Validation failure is an expected, recoverable outcome of Build —
//     never a panic, never a silent default.
//   - Sampling itself cannot fail given a built Sampler, so this is the only
//     error surface of the package.

package sampler

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters indicates that the degree/count balance equation
// numberOfVariables·variableDegree == numberOfConstraints·constraintDegree
// is violated, or that a parameter is negative.
// Usage: if errors.Is(err, ErrInvalidParameters) { /* fix the parameters */ }.
var ErrInvalidParameters = errors.New("sampler: invalid parameters")

// InvalidParametersError reports a failed Build with every offending value,
// so the boundary can render or act on all four at once.
type InvalidParametersError struct {
	NumberOfVariables   int
	NumberOfConstraints int
	VariableDegree      int
	ConstraintDegree    int
}

// Error implements the error interface.
func (e *InvalidParametersError) Error() string {
	return fmt.Sprintf(
		"sampler: can't sample a graph with %d variables of degree %d and %d constraints of degree %d",
		e.NumberOfVariables, e.VariableDegree, e.NumberOfConstraints, e.ConstraintDegree,
	)
}

// Is makes errors.Is(err, ErrInvalidParameters) match this error.
func (e *InvalidParametersError) Is(target error) bool {
	return target == ErrInvalidParameters
}
