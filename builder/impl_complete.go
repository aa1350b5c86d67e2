// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// impl_complete.go — Complete(n): every unordered pair {i<j} in lexicographic order.

package builder

import "github.com/katalvlaran/mstrace/kruskal"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds K_n (n ≥ 1). Complexity: O(n²).
func Complete(n int) Constructor {
	return func(cfg builderConfig) ([]kruskal.Edge, error) {
		if n < minCompleteNodes {
			return nil, builderErrorf(methodComplete, "n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := cfg.checkIDs(methodComplete, n); err != nil {
			return nil, err
		}
		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
		}
		s := newEdgeSink(methodComplete, cfg, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := s.add(ids[i], ids[j]); err != nil {
					return nil, err
				}
			}
		}

		return s.edges, nil
	}
}
