package dsu

import "fmt"

// DisjointSet is a forest over a fixed, ordered node set.
//
// Internally nodes are interned to dense indices so that parent/rank live in
// flat slices; order keeps the construction order for ComponentMap.
type DisjointSet struct {
	index  map[string]int // node -> dense index
	order  []string       // dense index -> node, construction order
	parent []int          // parent[i] == i for roots
	rank   []int          // upper bound on tree height, meaningful on roots
	count  int            // live number of components
}

// New builds a DisjointSet where every node is its own singleton component.
// Nodes keep the given order; passing the same node twice panics with
// ErrDuplicateNode.
//
// Complexity: O(V) time and memory.
func New(nodes []string) *DisjointSet {
	n := len(nodes)
	d := &DisjointSet{
		index:  make(map[string]int, n),
		order:  make([]string, n),
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i, v := range nodes {
		if _, dup := d.index[v]; dup {
			panic(fmt.Errorf("dsu: New(%q): %w", v, ErrDuplicateNode))
		}
		d.index[v] = i
		d.order[i] = v
		d.parent[i] = i // every node starts as its own root
	}

	return d
}

// Len returns the number of nodes in the set.
func (d *DisjointSet) Len() int { return len(d.order) }

// Count returns the live number of disjoint components.
// It starts at Len() and drops by exactly one per successful Union.
func (d *DisjointSet) Count() int { return d.count }

// Contains reports whether x is a known node.
func (d *DisjointSet) Contains(x string) bool {
	_, ok := d.index[x]

	return ok
}

// Nodes returns a copy of the node set in construction order.
func (d *DisjointSet) Nodes() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)

	return out
}

// Find returns the canonical representative of x's component.
//
// Every node visited on the way to the root is relinked directly to the root
// (full path compression). The walk is iterative in two passes so deep chains
// never grow the goroutine stack.
//
// Panics with ErrUnknownNode if x is not in the set.
func (d *DisjointSet) Find(x string) string {
	return d.order[d.root(d.mustIndex("Find", x))]
}

// Connected reports whether x and y are in the same component.
func (d *DisjointSet) Connected(x, y string) bool {
	return d.root(d.mustIndex("Connected", x)) == d.root(d.mustIndex("Connected", y))
}

// Union merges the components of x and y and reports whether a merge happened.
// A false result means x and y were already connected, i.e. an edge x–y would
// close a cycle.
//
// Union by rank: the lower-rank root goes under the higher-rank root. On a tie
// the root of y is attached under the root of x and x's root rank grows by one.
//
// Panics with ErrUnknownNode if either node is not in the set.
func (d *DisjointSet) Union(x, y string) bool {
	rx := d.root(d.mustIndex("Union", x))
	ry := d.root(d.mustIndex("Union", y))
	if rx == ry {
		return false
	}

	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.count--

	return true
}

// Rank returns the current rank stored for x. Only roots carry a meaningful
// rank; the value is exposed for introspection and tests.
func (d *DisjointSet) Rank(x string) int {
	return d.rank[d.mustIndex("Rank", x)]
}

// ComponentMap returns a fresh node -> component id mapping.
//
// Nodes are walked in construction order; the first node seen in a component
// fixes that component's id. The result is owned by the caller and never
// aliased by the DisjointSet.
//
// Complexity: O(V·α(V)).
func (d *DisjointSet) ComponentMap() ComponentMap {
	out := make(ComponentMap, len(d.order))
	ids := make(map[int]int, d.count) // root index -> dense id
	for i, v := range d.order {
		r := d.root(i)
		id, ok := ids[r]
		if !ok {
			id = len(ids)
			ids[r] = id
		}
		out[v] = id
	}

	return out
}

// root is the two-pass find over dense indices.
func (d *DisjointSet) root(i int) int {
	// 1. Walk up to the root.
	r := i
	for d.parent[r] != r {
		r = d.parent[r]
	}
	// 2. Relink every node on the path straight to r.
	for d.parent[i] != r {
		next := d.parent[i]
		d.parent[i] = r
		i = next
	}

	return r
}

func (d *DisjointSet) mustIndex(op, x string) int {
	i, ok := d.index[x]
	if !ok {
		panic(fmt.Errorf("dsu: %s(%q): %w", op, x, ErrUnknownNode))
	}

	return i
}
