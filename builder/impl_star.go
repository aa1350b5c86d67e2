// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// impl_star.go — Star(n): hub "Center" with spokes to leaves idFn(1..n-1).

package builder

import "github.com/katalvlaran/mstrace/kruskal"

const (
	methodStar     = "Star"
	minStarNodes   = 2
	centerVertexID = "Center"
)

// Star builds a star with hub "Center" and n-1 leaves (n ≥ 2). Complexity: O(n).
func Star(n int) Constructor {
	return func(cfg builderConfig) ([]kruskal.Edge, error) {
		if n < minStarNodes {
			return nil, builderErrorf(methodStar, "n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		if err := cfg.checkIDs(methodStar, n); err != nil {
			return nil, err
		}
		s := newEdgeSink(methodStar, cfg, n-1)
		for i := 1; i < n; i++ {
			if err := s.add(centerVertexID, cfg.idFn(i)); err != nil {
				return nil, err
			}
		}

		return s.edges, nil
	}
}
