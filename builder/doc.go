// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// Package builder generates deterministic weighted edge lists for classic
// topologies (path, cycle, star, wheel, complete, grid, random sparse).
//
// The output is a plain []kruskal.Edge, ready for kruskal.New. Fixtures,
// benchmarks and the `mstrace gen` command all come from here.
//
// Determinism
//
//   - Edges are emitted in a documented, index-ascending order per topology.
//   - Stochastic parts (RandomSparse sampling, random weights) draw only from
//     the *rand.Rand set by WithSeed/WithRand. Same options ⇒ same edges.
//
// Weights
//
//	Every generated weight is strictly positive: the default is a constant 1,
//	and the weight helpers reject ranges that could yield w <= 0.
//
// Nodes exist only as edge endpoints, so a topology with no edges (Complete(1),
// Path(1)) contributes no nodes at all.
//
// Errors
//
//	Constructors return sentinel errors wrapped with the topology name:
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
//	Option constructors panic on meaningless values (nil fn, non-positive weight).
package builder
