// SPDX-License-Identifier: MIT
// Package: bigs/sampler
//
// sample.go — the one-shot sampling engine (configuration model + repair).
//
// Canonical model:
//   - Build one stub sequence per side (each label repeated its degree),
//     shuffle both independently, zip position-wise into candidate edges.
//   - Drain the candidate queue FIFO: insert fresh edges directly; repair a
//     collision with the first double edge swap that keeps the graph simple;
//     re-enqueue the candidate when no swap partner exists yet.
//
// Termination:
//   - Every placement (direct or via swap) grows the edge count by exactly
//     one while preserving the target degree multiset, so a deferred
//     candidate retries against a strictly larger graph. Iteration count is
//     unbounded in the dense regime; correctness is not affected.
//
// Determinism:
//   - All randomness is consumed in a fixed order (variable shuffle, then
//     constraint shuffle), and the first-fit swap search walks the graph's
//     deterministic enumeration order, so a fixed rng state sequence yields
//     a fixed graph.

package sampler

import "github.com/katalvlaran/bigs/graph"

// sample is the transient state of one sampling call: the candidate queue
// plus the sampler parameters. It is discarded once run returns.
type sample struct {
	sampler    Sampler
	candidates edgeQueue
}

// newSample shuffles both stub sequences with rng and zips them into the
// initial candidate queue (the configuration-model pairing; it may still
// contain duplicates).
// Complexity: O(E) time and space.
func newSample(s Sampler, rng Rand) *sample {
	variables := candidateStubs(s.numberOfVariables, s.variableDegree, rng)
	constraints := candidateStubs(s.numberOfConstraints, s.constraintDegree, rng)

	// Both sequences have length NumberOfEdges() by the Build-time balance.
	queue := newEdgeQueue(len(variables))
	for i := range variables {
		queue.pushBack(graph.NewEdge(variables[i], constraints[i]))
	}

	return &sample{sampler: s, candidates: queue}
}

// candidateStubs builds the stub sequence for one side — each label in
// [0, count) repeated degree times — and shuffles it uniformly in place.
// Complexity: O(count·degree)
func candidateStubs(count, degree int, rng Rand) []int {
	stubs := make([]int, 0, count*degree)
	for label := 0; label < count; label++ {
		for k := 0; k < degree; k++ {
			stubs = append(stubs, label)
		}
	}
	rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

	return stubs
}

// run drains the candidate queue into a completed graph.
func (s *sample) run() *graph.Graph {
	g := graph.NewSized(
		s.sampler.numberOfVariables,
		s.sampler.numberOfConstraints,
		s.sampler.NumberOfEdges(),
	)
	for !s.candidates.empty() {
		edge := s.candidates.popFront()
		if g.Contains(edge) {
			s.swapOrDefer(g, edge)
		} else {
			g.Insert(edge)
		}
	}

	return g
}

// swapOrDefer resolves a colliding candidate: the first existing edge whose
// far endpoints can be exchanged with the candidate's without creating a
// duplicate is swapped in; otherwise the candidate goes to the back of the
// queue to retry once more of the graph exists.
func (s *sample) swapOrDefer(g *graph.Graph, edge graph.Edge) {
	partner, ok := findSwapPartner(g, edge)
	if !ok {
		s.candidates.pushBack(edge)

		return
	}
	g.Remove(partner)
	first, second := swapped(edge, partner)
	g.Insert(first)
	g.Insert(second)
}

// findSwapPartner scans the graph's edges in enumeration order (first-fit)
// for a partner whose swap with target yields two edges absent from the
// graph. Random access via EdgeAt keeps the scan allocation-free.
// Complexity: O(E) worst case per collision.
func findSwapPartner(g *graph.Graph, target graph.Edge) (graph.Edge, bool) {
	for slot := 0; slot < g.NumberOfEdges(); slot++ {
		partner := g.EdgeAt(slot)
		first, second := swapped(target, partner)
		if !g.Contains(first) && !g.Contains(second) {
			return partner, true
		}
	}

	return graph.Edge{}, false
}

// swapped performs the double edge swap: the two input edges exchange their
// constraint endpoints. Degrees on both sides are preserved by construction.
func swapped(a, b graph.Edge) (graph.Edge, graph.Edge) {
	return graph.NewEdge(a.Variable, b.Constraint), graph.NewEdge(b.Variable, a.Constraint)
}

// edgeQueue is a FIFO of candidate edges: pop from the front, push deferred
// candidates to the back. Backed by a slice with a head index; the dead
// prefix is compacted once it dominates the backing array.
type edgeQueue struct {
	items []graph.Edge
	head  int
}

// newEdgeQueue allocates a queue for the expected number of candidates.
func newEdgeQueue(capacity int) edgeQueue {
	return edgeQueue{items: make([]graph.Edge, 0, capacity)}
}

// empty reports whether no candidates remain.
func (q *edgeQueue) empty() bool {
	return q.head >= len(q.items)
}

// popFront removes and returns the oldest candidate. Caller checks empty.
func (q *edgeQueue) popFront() graph.Edge {
	e := q.items[q.head]
	q.head++

	return e
}

// pushBack appends a candidate, compacting the consumed prefix first when it
// outweighs the live tail.
func (q *edgeQueue) pushBack(e graph.Edge) {
	if q.head > len(q.items)/2 {
		live := copy(q.items, q.items[q.head:])
		q.items = q.items[:live]
		q.head = 0
	}
	q.items = append(q.items, e)
}
