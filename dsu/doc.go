// Package dsu provides a string-keyed Disjoint-Set (Union-Find) structure with
// path compression and union by rank, tuned for replayable MST traces.
//
// What & Why
//
//   - A DisjointSet tracks a partition of a fixed node set into components.
//     Find answers "which component?", Union merges two components.
//   - Kruskal's algorithm asks exactly these two questions once per edge, so the
//     structure is the engine behind package kruskal.
//
// Determinism
//
//   - Nodes are kept in construction order. ComponentMap walks that order and
//     hands out dense ids 0,1,2,... by first encounter, so two calls on the same
//     internal state always yield identical maps.
//   - On a rank tie Union attaches the second root under the first and bumps the
//     first root's rank. Traces depend on this direction; do not swap it.
//
// Complexity
//
//   - New:          O(V) time and memory.
//   - Find / Union: O(α(V)) amortized.
//   - ComponentMap: O(V·α(V)); intended to be called once per Kruskal step.
//
// Contract violations
//
//	Find, Union and Rank panic with an error wrapping ErrUnknownNode when asked
//	about a node that was not passed to New. New panics with ErrDuplicateNode.
//	These are programming errors, never runtime conditions.
//
// A DisjointSet is not safe for concurrent mutation; build one per run.
package dsu
