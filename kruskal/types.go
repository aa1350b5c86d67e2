package kruskal

import (
	"fmt"

	"github.com/katalvlaran/mstrace/dsu"
)

// Status tags the outcome of one examined edge.
type Status string

const (
	// StatusSelected marks an edge accepted into the MST.
	StatusSelected Status = "selected"
	// StatusRejected marks an edge whose endpoints were already connected.
	StatusRejected Status = "rejected"
)

// Edge is an undirected weighted edge. It is a plain value; two edges with
// identical fields are indistinguishable.
type Edge struct {
	Source string  `json:"source" yaml:"source"`
	Target string  `json:"target" yaml:"target"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// String renders e as "S-T(W)".
func (e Edge) String() string {
	return fmt.Sprintf("%s-%s(%s)", e.Source, e.Target, formatWeight(e.Weight))
}

// StepRecord is an immutable snapshot taken after one edge was examined.
//
// TotalCost and EdgesSelected are cumulative. ConnectedComponents and
// ComponentMap describe the disjoint-set after any union done in this step.
// ComponentMap is owned by the record and covers every node.
type StepRecord struct {
	StepNumber          int              `json:"step_number" yaml:"step_number"`
	Edge                Edge             `json:"edge" yaml:"edge"`
	Status              Status           `json:"status" yaml:"status"`
	Message             string           `json:"message" yaml:"message"`
	TotalCost           float64          `json:"total_cost" yaml:"total_cost"`
	EdgesSelected       int              `json:"edges_selected" yaml:"edges_selected"`
	ConnectedComponents int              `json:"connected_components" yaml:"connected_components"`
	ComponentMap        dsu.ComponentMap `json:"component_map" yaml:"component_map"`
}

// RunResult is the full output of one Kruskal run.
type RunResult struct {
	MSTEdges  []Edge       `json:"mst_edges" yaml:"mst_edges"`
	TotalCost float64      `json:"total_cost" yaml:"total_cost"`
	Steps     []StepRecord `json:"steps" yaml:"steps"`
}

// Statistics summarizes a RunResult against the graph it came from.
type Statistics struct {
	TotalNodes    int     `json:"total_nodes" yaml:"total_nodes"`
	TotalEdges    int     `json:"total_edges" yaml:"total_edges"`
	MSTEdgeCount  int     `json:"mst_edges_count" yaml:"mst_edges_count"`
	MSTTotalCost  float64 `json:"mst_total_cost" yaml:"mst_total_cost"`
	EdgesExamined int     `json:"edges_examined" yaml:"edges_examined"`
	EdgesRejected int     `json:"edges_rejected" yaml:"edges_rejected"`
	// Components is the number of trees in the resulting spanning forest.
	Components int `json:"components" yaml:"components"`
	// IsSpanning is true iff the MST touches every node, i.e. the input was connected.
	IsSpanning bool   `json:"is_spanning" yaml:"is_spanning"`
	MSTEdges   []Edge `json:"mst_edges" yaml:"mst_edges"`
}
