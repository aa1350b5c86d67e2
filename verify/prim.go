package verify

import (
	"container/heap"

	"github.com/katalvlaran/mstrace/kruskal"
)

// MinimumForestWeight returns the weight of a minimum spanning forest using
// Prim's algorithm restarted from every node not yet reached.
//
// Steps:
//  1. Build an adjacency list (self-loops are ignored by the visited check).
//  2. For each node in order that is still unvisited, grow a tree from it:
//     pop the lightest candidate edge, skip it if its endpoint is visited,
//     otherwise take it and push the new node's edges.
//  3. Sum every taken edge.
//
// Complexity: O(E log E) time, O(V + E) memory.
func MinimumForestWeight(nodes []string, edges []kruskal.Edge) float64 {
	adj := adjacency(nodes, edges)
	visited := make(map[string]bool, len(nodes))
	var total float64

	for _, root := range nodes {
		if visited[root] {
			continue
		}
		visited[root] = true

		pq := &edgePQ{}
		for _, he := range adj[root] {
			heap.Push(pq, he)
		}
		for pq.Len() > 0 {
			he := heap.Pop(pq).(halfEdge)
			if visited[he.to] {
				continue
			}
			visited[he.to] = true
			total += he.weight
			for _, next := range adj[he.to] {
				if !visited[next.to] {
					heap.Push(pq, next)
				}
			}
		}
	}

	return total
}

// edgePQ is a min-heap of halfEdge ordered by weight.
type edgePQ []halfEdge

func (pq edgePQ) Len() int           { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return pq[i].weight < pq[j].weight }
func (pq edgePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(halfEdge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	he := old[n-1]
	*pq = old[:n-1]

	return he
}
