// Package sampler contains unit tests for the Builder validation step,
// covering both sizing modes and the structured failure value.
package sampler

import (
	"errors"
	"testing"
)

// TestBuild_BalancedExplicitCounts verifies the canonical success case:
// 10·4 == 8·5 stubs on both sides.
func TestBuild_BalancedExplicitCounts(t *testing.T) {
	t.Parallel()

	s, err := NewBuilder().
		NumberOfVariables(10).
		NumberOfConstraints(8).
		VariableDegree(4).
		ConstraintDegree(5).
		Build()
	if err != nil {
		t.Fatalf("balanced parameters must build, got %v", err)
	}
	if s.NumberOfVariables() != 10 || s.NumberOfConstraints() != 8 {
		t.Errorf("counts: expected 10/8, got %d/%d", s.NumberOfVariables(), s.NumberOfConstraints())
	}
	if s.NumberOfEdges() != 40 {
		t.Errorf("edges: expected 40, got %d", s.NumberOfEdges())
	}
}

// TestBuild_UnbalancedCounts verifies the canonical failure: 10·3 != 10·2.
func TestBuild_UnbalancedCounts(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder().
		NumberOfVariables(10).
		NumberOfConstraints(10).
		VariableDegree(3).
		ConstraintDegree(2).
		Build()
	if err == nil {
		t.Fatal("unbalanced parameters must not build")
	}
	if !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("expected ErrInvalidParameters, got %v", err)
	}

	// The structured failure carries all four offending values.
	var invalid *InvalidParametersError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidParametersError, got %T", err)
	}
	if invalid.NumberOfVariables != 10 || invalid.NumberOfConstraints != 10 ||
		invalid.VariableDegree != 3 || invalid.ConstraintDegree != 2 {
		t.Errorf("offending values not carried: %+v", invalid)
	}
}

// TestBuild_ScalingFactor verifies scaled sizing: counts derive from the
// degrees and the shared factor, balanced by construction.
func TestBuild_ScalingFactor(t *testing.T) {
	t.Parallel()

	s, err := NewBuilder().
		VariableDegree(3).
		ConstraintDegree(5).
		ScalingFactor(4).
		Build()
	if err != nil {
		t.Fatalf("scaled parameters must build, got %v", err)
	}
	if s.NumberOfVariables() != 20 { // constraintDegree·factor = 5·4
		t.Errorf("variables: expected 20, got %d", s.NumberOfVariables())
	}
	if s.NumberOfConstraints() != 12 { // variableDegree·factor = 3·4
		t.Errorf("constraints: expected 12, got %d", s.NumberOfConstraints())
	}
	if s.NumberOfEdges() != 60 { // 3·5·4
		t.Errorf("edges: expected 60, got %d", s.NumberOfEdges())
	}
}

// TestBuild_ScalingFactorOverridesCounts pins the precedence rule: a
// positive factor wins over explicit counts, even unbalanced ones.
func TestBuild_ScalingFactorOverridesCounts(t *testing.T) {
	t.Parallel()

	s, err := NewBuilder().
		NumberOfVariables(7). // would not balance on its own
		NumberOfConstraints(9).
		VariableDegree(2).
		ConstraintDegree(2).
		ScalingFactor(3).
		Build()
	if err != nil {
		t.Fatalf("scaled sizing must ignore explicit counts, got %v", err)
	}
	if s.NumberOfVariables() != 6 || s.NumberOfConstraints() != 6 {
		t.Errorf("expected 6/6, got %d/%d", s.NumberOfVariables(), s.NumberOfConstraints())
	}
}

// TestBuild_ZeroDefaults verifies that an untouched Builder builds the
// trivial Sampler (everything 0 balances as 0 == 0).
func TestBuild_ZeroDefaults(t *testing.T) {
	t.Parallel()

	s, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("zero parameters must build, got %v", err)
	}
	if s.NumberOfEdges() != 0 {
		t.Errorf("expected 0 edges, got %d", s.NumberOfEdges())
	}
}

// TestBuild_InfeasibleDegrees verifies the simplicity bound: balanced stub
// counts whose degrees exceed the opposite side's node count describe a
// graph no simple realization can satisfy, so Build must reject them
// instead of handing SampleWith an unsatisfiable repair loop.
func TestBuild_InfeasibleDegrees(t *testing.T) {
	t.Parallel()

	// 1·2 == 1·2 balances, yet degree 2 needs two distinct neighbors on a
	// side that has only one node.
	_, err := NewBuilder().
		NumberOfVariables(1).
		NumberOfConstraints(1).
		VariableDegree(2).
		ConstraintDegree(2).
		Build()
	if !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("infeasible degrees must be rejected, got %v", err)
	}

	// A larger shape: 2·3 == 2·3 balances, but degree 3 on two-node sides
	// overshoots both bounds at once (under balance the two bounds imply
	// each other whenever both counts are positive).
	_, err = NewBuilder().
		NumberOfVariables(2).
		NumberOfConstraints(2).
		VariableDegree(3).
		ConstraintDegree(3).
		Build()
	if !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("infeasible degrees must be rejected on both sides, got %v", err)
	}

	// Degree equal to the opposite count is the densest legal regime.
	if _, err = NewBuilder().
		NumberOfVariables(2).
		NumberOfConstraints(2).
		VariableDegree(2).
		ConstraintDegree(2).
		Build(); err != nil {
		t.Errorf("complete bipartite parameters must build, got %v", err)
	}

	// Empty sides with nominal degrees contribute zero stubs and stay valid.
	if _, err = NewBuilder().VariableDegree(5).ConstraintDegree(7).Build(); err != nil {
		t.Errorf("zero-count parameters must build, got %v", err)
	}
}

// TestBuild_NegativeParameter verifies the non-negativity contract.
func TestBuild_NegativeParameter(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder().
		NumberOfVariables(-10).
		NumberOfConstraints(-10).
		VariableDegree(3).
		ConstraintDegree(3).
		Build()
	if !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("negative counts must be rejected, got %v", err)
	}
}

// TestBuild_BuilderReusable verifies that Build does not freeze the Builder
// and that earlier Samplers are unaffected by later setter calls.
func TestBuild_BuilderReusable(t *testing.T) {
	t.Parallel()

	b := NewBuilder().VariableDegree(2).ConstraintDegree(2).ScalingFactor(1)
	first, err := b.Build()
	if err != nil {
		t.Fatalf("first build failed: %v", err)
	}

	second, err := b.ScalingFactor(5).Build()
	if err != nil {
		t.Fatalf("second build failed: %v", err)
	}
	if first.NumberOfVariables() != 2 {
		t.Errorf("first sampler mutated: expected 2 variables, got %d", first.NumberOfVariables())
	}
	if second.NumberOfVariables() != 10 {
		t.Errorf("second sampler: expected 10 variables, got %d", second.NumberOfVariables())
	}
}
