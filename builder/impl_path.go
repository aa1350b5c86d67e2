// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// impl_path.go — Path(n): edges (i-1)—i for i = 1..n-1.

package builder

import "github.com/katalvlaran/mstrace/kruskal"

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path builds the simple path P_n (n ≥ 1). Complexity: O(n).
func Path(n int) Constructor {
	return func(cfg builderConfig) ([]kruskal.Edge, error) {
		if n < minPathNodes {
			return nil, builderErrorf(methodPath, "n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		if err := cfg.checkIDs(methodPath, n); err != nil {
			return nil, err
		}
		s := newEdgeSink(methodPath, cfg, n-1)
		for i := 1; i < n; i++ {
			if err := s.add(cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return nil, err
			}
		}

		return s.edges, nil
	}
}
