package kruskal

// Summarize derives Statistics from a run.
//
//	TotalNodes    = |nodes|
//	TotalEdges    = |edges| (every edge is examined, so EdgesExamined is the same)
//	MSTEdgeCount  = |mstEdges|
//	EdgesRejected = TotalEdges - MSTEdgeCount
//	Components    = TotalNodes - MSTEdgeCount (trees in the spanning forest)
//	IsSpanning    = MSTEdgeCount == TotalNodes - 1
//
// A disconnected input yields a spanning forest and IsSpanning == false.
// The returned MSTEdges is a copy.
func Summarize(nodes []string, edges, mstEdges []Edge, totalCost float64) Statistics {
	mst := make([]Edge, len(mstEdges))
	copy(mst, mstEdges)

	return Statistics{
		TotalNodes:    len(nodes),
		TotalEdges:    len(edges),
		MSTEdgeCount:  len(mstEdges),
		MSTTotalCost:  totalCost,
		EdgesExamined: len(edges),
		EdgesRejected: len(edges) - len(mstEdges),
		Components:    len(nodes) - len(mstEdges),
		IsSpanning:    len(mstEdges) == len(nodes)-1,
		MSTEdges:      mst,
	}
}
