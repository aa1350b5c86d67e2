// Package kruskal computes a Minimum Spanning Tree (or forest) with Kruskal's
// algorithm and records a replayable trace of every edge decision.
//
// What & Why
//
//   - Given an undirected edge list with positive weights, Kruskal sorts the
//     edges by weight and accepts each edge whose endpoints are still in
//     different components (tracked by package dsu). Everything else would
//     close a cycle and is rejected.
//   - Besides the MST itself, Run emits one StepRecord per examined edge. The
//     whole visualization of a run can be rebuilt from that ordered slice alone.
//
// Pipeline
//
//	raw edges ──New──► Graph{Nodes, SortedEdges} ──Run──► RunResult ──Summarize──► Statistics
//
// Determinism
//
//   - Nodes are listed in first-appearance order (source before target, edge by edge).
//   - SortedEdges is a stable sort by weight: equal weights keep input order.
//   - Component ids inside each StepRecord come from dsu.ComponentMap and are
//     therefore fixed by the node order above.
//
// Two runs over the same edge slice yield identical RunResults.
//
// No short-circuit
//
//	Run does not stop once |V|-1 edges are accepted. Every remaining edge is
//	still examined and reported as rejected so the trace is a full audit of
//	the sorted edge list; completeness is read from Statistics.IsSpanning.
//
// Complexity: O(E log E) sort + O(E·α(V)) unions + O(E·V) component snapshots.
//
// Errors
//
//	The package performs no I/O and returns no errors. Input validation
//	(non-empty, weight > 0) belongs to the caller, see package graphio.
//	An edge that references a node outside the graph is a contract violation
//	and panics with dsu.ErrUnknownNode; it cannot happen for graphs built by New.
package kruskal
