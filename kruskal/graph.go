package kruskal

import "sort"

// Graph is the immutable context of one Kruskal computation: the edges as
// given, the derived node set, and the weight-sorted edge list.
type Graph struct {
	edges  []Edge
	nodes  []string
	sorted []Edge
}

// New derives the node set from edges and sorts a copy of the edges by weight.
//
// Steps:
//  1. Copy edges; parallel edges and self-loops are kept as given.
//  2. Collect nodes in first-appearance order (Source, then Target).
//  3. Stable-sort the copy by ascending Weight.
//
// The input slice is never retained or mutated.
// Complexity: O(E log E) time, O(V + E) memory.
func New(edges []Edge) *Graph {
	g := &Graph{
		edges: make([]Edge, len(edges)),
	}
	copy(g.edges, edges)
	g.nodes = extractNodes(g.edges)

	g.sorted = make([]Edge, len(g.edges))
	copy(g.sorted, g.edges)
	sort.SliceStable(g.sorted, func(i, j int) bool {
		return g.sorted[i].Weight < g.sorted[j].Weight
	})

	return g
}

// Nodes returns the node set in first-appearance order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns the edges in input order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// SortedEdges returns the edges in processing order.
func (g *Graph) SortedEdges() []Edge {
	out := make([]Edge, len(g.sorted))
	copy(out, g.sorted)

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Run executes Kruskal over the sorted edges. See RunSorted.
func (g *Graph) Run() RunResult {
	return RunSorted(g.sorted, g.nodes)
}

// Statistics summarizes res against g. See Summarize.
func (g *Graph) Statistics(res RunResult) Statistics {
	return Summarize(g.nodes, g.edges, res.MSTEdges, res.TotalCost)
}

func extractNodes(edges []Edge) []string {
	seen := make(map[string]struct{}, len(edges))
	nodes := make([]string, 0, len(edges))
	add := func(v string) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		nodes = append(nodes, v)
	}
	for _, e := range edges {
		add(e.Source)
		add(e.Target)
	}

	return nodes
}
