// Package verify holds independent oracles used to cross-check a Kruskal run:
// a heap-based Prim forest weight, BFS component counting and DFS cycle
// detection. None of them share code with package kruskal or package dsu, so
// agreement between the two sides is meaningful.
//
// CheckResult bundles every trace property (optimality, acyclicity, step
// completeness, monotonic counters, component counts) into one error built
// with errors.Join; nil means the run is sound.
package verify
