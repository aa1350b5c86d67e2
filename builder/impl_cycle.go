// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// impl_cycle.go — Cycle(n): edges i—(i+1)%n for i = 0..n-1.

package builder

import "github.com/katalvlaran/mstrace/kruskal"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds the simple cycle C_n (n ≥ 3). Complexity: O(n).
func Cycle(n int) Constructor {
	return func(cfg builderConfig) ([]kruskal.Edge, error) {
		if n < minCycleNodes {
			return nil, builderErrorf(methodCycle, "n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		if err := cfg.checkIDs(methodCycle, n); err != nil {
			return nil, err
		}
		s := newEdgeSink(methodCycle, cfg, n)
		for i := 0; i < n; i++ {
			// i == n-1 closes the ring back to 0.
			if err := s.add(cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return nil, err
			}
		}

		return s.edges, nil
	}
}
