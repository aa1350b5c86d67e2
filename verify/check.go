package verify

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mstrace/kruskal"
)

// CheckResult validates res against the graph it was computed from.
//
// Checks, all independent of the Kruskal implementation:
//   - total cost equals the Prim minimum forest weight (ErrNotOptimal);
//   - MST edges form a forest (ErrCycle) with |V| - components edges (ErrForestSize);
//   - one step per sorted edge, numbered 1..E, in sorted order (ErrIncompleteTrace);
//   - cost and selected counters never decrease, components never increase,
//     and a selected step moves each by exactly one edge (ErrNotMonotonic);
//   - every component map covers all nodes with exactly ConnectedComponents
//     distinct ids (ErrSnapshot).
//
// Every violation found is reported; the result is nil when none are.
func CheckResult(g *kruskal.Graph, res kruskal.RunResult) error {
	nodes := g.Nodes()
	edges := g.Edges()
	sorted := g.SortedEdges()

	var errs []error

	if want := MinimumForestWeight(nodes, edges); !almostEqual(want, res.TotalCost) {
		errs = append(errs, fmt.Errorf("%w: got %g, want %g", ErrNotOptimal, res.TotalCost, want))
	}
	if !IsForest(nodes, res.MSTEdges) {
		errs = append(errs, ErrCycle)
	}
	if comps := CountComponents(nodes, edges); len(res.MSTEdges) != len(nodes)-comps {
		errs = append(errs, fmt.Errorf("%w: %d edges, %d nodes, %d components",
			ErrForestSize, len(res.MSTEdges), len(nodes), comps))
	}

	if len(res.Steps) != len(sorted) {
		errs = append(errs, fmt.Errorf("%w: %d steps for %d edges", ErrIncompleteTrace, len(res.Steps), len(sorted)))
	} else {
		errs = append(errs, checkSteps(nodes, sorted, res.Steps)...)
	}

	return errors.Join(errs...)
}

func checkSteps(nodes []string, sorted []kruskal.Edge, steps []kruskal.StepRecord) []error {
	var (
		errs       []error
		prevCost   float64
		prevSel    int
		prevComps  = len(nodes)
		stepErrorf = func(sentinel error, i int, format string, args ...interface{}) {
			errs = append(errs, fmt.Errorf("%w: step %d: %s", sentinel, i+1, fmt.Sprintf(format, args...)))
		}
	)

	for i, st := range steps {
		if st.StepNumber != i+1 {
			stepErrorf(ErrIncompleteTrace, i, "numbered %d", st.StepNumber)
		}
		if st.Edge != sorted[i] {
			stepErrorf(ErrIncompleteTrace, i, "edge %s, want %s", st.Edge, sorted[i])
		}

		switch st.Status {
		case kruskal.StatusSelected:
			if st.EdgesSelected != prevSel+1 || st.ConnectedComponents != prevComps-1 ||
				!almostEqual(st.TotalCost, prevCost+st.Edge.Weight) {
				stepErrorf(ErrNotMonotonic, i, "selected step did not advance counters by one edge")
			}
		case kruskal.StatusRejected:
			if st.EdgesSelected != prevSel || st.ConnectedComponents != prevComps || st.TotalCost != prevCost {
				stepErrorf(ErrNotMonotonic, i, "rejected step changed counters")
			}
		default:
			stepErrorf(ErrIncompleteTrace, i, "unknown status %q", st.Status)
		}

		if len(st.ComponentMap) != len(nodes) {
			stepErrorf(ErrSnapshot, i, "map covers %d of %d nodes", len(st.ComponentMap), len(nodes))
		} else if groups := st.ComponentMap.Groups(); groups != st.ConnectedComponents {
			stepErrorf(ErrSnapshot, i, "%d distinct ids, %d components", groups, st.ConnectedComponents)
		}

		prevCost, prevSel, prevComps = st.TotalCost, st.EdgesSelected, st.ConnectedComponents
	}

	return errs
}

func almostEqual(a, b float64) bool {
	diff := math.Abs(a - b)
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return diff <= Epsilon*scale
}
