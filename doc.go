// Package bigs — the BIpartite Graph Sampler.
//
// 🚀 What is bigs?
//
//	A small, focused library for sampling uniformly-at-random simple regular
//	bipartite graphs:
//		• Two node sets — "variables" and "constraints" (SAT naming) —
//		  connected by an edge set with no duplicate edges
//		• Every variable shares one fixed degree; every constraint another
//		• Sampling via the configuration model: randomly paired degree stubs,
//		  repaired into a simple graph with targeted double edge swaps
//
// ✨ Why choose bigs?
//
//   - Deterministic – the same seed always reproduces the same graph
//   - Reusable – a Sampler is an immutable value; draw as many independent
//     samples from it as you like
//   - Inspectable – the resulting Graph exposes per-node degrees, neighbor
//     sets and full edge enumeration
//   - Practical – the shapes it produces back SAT-instance generators and
//     LDPC parity-check matrices alike
//
// Everything is organized under two subpackages plus a CLI:
//
//	graph/    — Edge and Graph types, node enumeration, JSON codec
//	sampler/  — Builder, Sampler and the sampling engine
//	cmd/bigs/ — command-line surface for one-shot sampling
//
// Quick sketch of a (2,3)-regular bipartite graph:
//
//	v0   v1   v2
//	│ ╲ ╱ ╲ ╱ │
//	│  ╳   ╳  │
//	│ ╱ ╲ ╱ ╲ │
//	c0        c1
//
//	three variables of degree 2, two constraints of degree 3, six edges.
//
// Dive into the sampler package docs for the full sampling contract.
//
//	go get github.com/katalvlaran/bigs
package bigs
