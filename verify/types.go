package verify

import (
	"errors"

	"github.com/katalvlaran/mstrace/kruskal"
)

// Sentinel errors reported by CheckResult. Use errors.Is to branch.
var (
	// ErrNotOptimal: total cost differs from the Prim forest weight.
	ErrNotOptimal = errors.New("verify: total cost is not minimal")
	// ErrCycle: the selected edges contain a cycle.
	ErrCycle = errors.New("verify: selected edges contain a cycle")
	// ErrForestSize: selected edge count differs from |V| - components.
	ErrForestSize = errors.New("verify: selected edge count does not match components")
	// ErrIncompleteTrace: the trace does not cover every edge exactly once.
	ErrIncompleteTrace = errors.New("verify: trace does not cover every edge")
	// ErrNotMonotonic: running counters moved the wrong way between steps.
	ErrNotMonotonic = errors.New("verify: step counters are not monotonic")
	// ErrSnapshot: a component map is incomplete or disagrees with the component count.
	ErrSnapshot = errors.New("verify: component snapshot is inconsistent")
)

// Epsilon is the relative tolerance used when comparing float costs; it is
// scaled by max(1, |a|, |b|), so it acts as an absolute bound below 1.
const Epsilon = 1e-9

// halfEdge is one direction of an undirected edge in the adjacency list.
// idx is the position of the edge in the input slice, used to tell parallel
// edges apart.
type halfEdge struct {
	to     string
	weight float64
	idx    int
}

func adjacency(nodes []string, edges []kruskal.Edge) map[string][]halfEdge {
	adj := make(map[string][]halfEdge, len(nodes))
	for _, v := range nodes {
		adj[v] = nil
	}
	for i, e := range edges {
		adj[e.Source] = append(adj[e.Source], halfEdge{to: e.Target, weight: e.Weight, idx: i})
		if e.Source != e.Target {
			adj[e.Target] = append(adj[e.Target], halfEdge{to: e.Source, weight: e.Weight, idx: i})
		}
	}

	return adj
}
