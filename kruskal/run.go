package kruskal

import "github.com/katalvlaran/mstrace/dsu"

// RunSorted is the Kruskal driver. sorted must already be in processing order
// and every endpoint must appear in nodes.
//
// Steps:
//  1. Empty nodes → empty result (no edges, zero cost, no steps).
//  2. Build one dsu.DisjointSet over nodes for the whole run.
//  3. For each edge, numbered from 1:
//     a. canAdd := Find(source) != Find(target), checked before any mutation.
//     b. canAdd → Union, append to the MST, add the weight, record "selected".
//     c. otherwise record "rejected"; the running cost is unchanged.
//     Each record snapshots Count and ComponentMap after this step's union.
//  4. Return once every edge was examined; there is no early exit.
//
// Complexity: O(E·α(V) + E·V) time, O(E·V) memory for the snapshots.
func RunSorted(sorted []Edge, nodes []string) RunResult {
	res := RunResult{
		MSTEdges: []Edge{},
		Steps:    []StepRecord{},
	}
	if len(nodes) == 0 {
		return res
	}

	set := dsu.New(nodes)
	res.Steps = make([]StepRecord, 0, len(sorted))
	for i, e := range sorted {
		status := StatusRejected
		if set.Find(e.Source) != set.Find(e.Target) {
			set.Union(e.Source, e.Target)
			res.MSTEdges = append(res.MSTEdges, e)
			res.TotalCost += e.Weight
			status = StatusSelected
		}

		res.Steps = append(res.Steps, StepRecord{
			StepNumber:          i + 1,
			Edge:                e,
			Status:              status,
			Message:             stepMessage(e, status, res.TotalCost),
			TotalCost:           res.TotalCost,
			EdgesSelected:       len(res.MSTEdges),
			ConnectedComponents: set.Count(),
			ComponentMap:        set.ComponentMap(),
		})
	}

	return res
}

// Compute is New + Run + Statistics in one call.
func Compute(edges []Edge) (*Graph, RunResult, Statistics) {
	g := New(edges)
	res := g.Run()

	return g, res, g.Statistics(res)
}
