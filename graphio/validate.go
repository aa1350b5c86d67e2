package graphio

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Validate checks doc before it is handed to kruskal.New.
//
//   - at least one edge (ErrNoEdges);
//   - non-blank Source and Target (ErrEmptyNode);
//   - Weight finite and > 0 (ErrBadWeight).
//
// Every offending edge is reported with its index; the errors are joined.
func Validate(doc Document) error {
	if len(doc.Edges) == 0 {
		return ErrNoEdges
	}

	var errs []error
	for i, e := range doc.Edges {
		if strings.TrimSpace(e.Source) == "" || strings.TrimSpace(e.Target) == "" {
			errs = append(errs, fmt.Errorf("edges[%d]: %w", i, ErrEmptyNode))
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight <= 0 {
			errs = append(errs, fmt.Errorf("edges[%d]: weight %g: %w", i, e.Weight, ErrBadWeight))
		}
	}

	return errors.Join(errs...)
}
