// Package batch runs many independent Kruskal computations concurrently.
//
// Each job builds its own kruskal.Graph (and therefore its own disjoint-set),
// so runs share no mutable state. Work is bounded by an errgroup limit;
// results come back in job order regardless of completion order.
package batch
