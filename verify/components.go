package verify

import "github.com/katalvlaran/mstrace/kruskal"

// CountComponents returns the number of connected components of (nodes, edges)
// using breadth-first search.
// Complexity: O(V + E).
func CountComponents(nodes []string, edges []kruskal.Edge) int {
	adj := adjacency(nodes, edges)
	visited := make(map[string]bool, len(nodes))
	count := 0

	for _, start := range nodes {
		if visited[start] {
			continue
		}
		count++
		visited[start] = true
		queue := []string{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, he := range adj[cur] {
				if !visited[he.to] {
					visited[he.to] = true
					queue = append(queue, he.to)
				}
			}
		}
	}

	return count
}

// IsForest reports whether (nodes, edges) has no cycle. Self-loops and
// parallel edges count as cycles.
//
// Iterative DFS: an edge back to an already-visited node other than through
// the edge we arrived by closes a cycle.
// Complexity: O(V + E).
func IsForest(nodes []string, edges []kruskal.Edge) bool {
	adj := adjacency(nodes, edges)
	visited := make(map[string]bool, len(nodes))

	type frame struct {
		node    string
		viaEdge int // index of the edge used to reach node, -1 for roots
	}

	for _, e := range edges {
		if e.Source == e.Target {
			return false
		}
	}

	for _, root := range nodes {
		if visited[root] {
			continue
		}
		visited[root] = true
		stack := []frame{{node: root, viaEdge: -1}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, he := range adj[top.node] {
				if he.idx == top.viaEdge {
					continue
				}
				if visited[he.to] {
					return false
				}
				visited[he.to] = true
				stack = append(stack, frame{node: he.to, viaEdge: he.idx})
			}
		}
	}

	return true
}
