// Package mstrace computes minimum spanning trees with Kruskal's algorithm
// and keeps a full, replayable record of every decision the algorithm makes.
//
// 🚀 What is mstrace?
//
//	A small toolkit built around one traced algorithm:
//		• dsu       — disjoint-set (union-find) with path compression and union by rank
//		• kruskal   — edge sorting, the traced driver and run statistics
//		• verify    — independent oracles (Prim forest weight, BFS components, cycle check)
//		• graphio   — JSON/YAML graph documents, validation and report encoding
//		• replay    — paced step-by-step streaming of a finished run
//		• batch     — bounded-parallel runs over many graphs
//		• builder   — deterministic generators for classic topologies
//
// Every examined edge yields a StepRecord: the edge, whether it was selected
// or rejected, a human-readable reason, the running cost and a snapshot of
// the component assignment at that moment. Disconnected inputs produce a
// minimum spanning forest and are reported with IsSpanning == false.
//
// Quick start:
//
//	_, res, stats := kruskal.Compute([]kruskal.Edge{
//		{Source: "A", Target: "B", Weight: 1},
//		{Source: "B", Target: "C", Weight: 2},
//		{Source: "A", Target: "C", Weight: 3},
//	})
//	fmt.Println(res.TotalCost, stats.IsSpanning) // 3 true
//
// The mstrace command (cmd/mstrace) exposes run, replay, validate and gen
// subcommands over the same packages.
package mstrace
