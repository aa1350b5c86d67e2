// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// impl_wheel.go — Wheel(n) = Cycle(n-1) rim followed by spokes from "Center".

package builder

import "github.com/katalvlaran/mstrace/kruskal"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel builds W_n: a rim cycle over idFn(0..n-2) plus hub "Center" (n ≥ 4).
// Rim edges come first, then spokes in rim index order. Complexity: O(n).
func Wheel(n int) Constructor {
	return func(cfg builderConfig) ([]kruskal.Edge, error) {
		if n < minWheelNodes {
			return nil, builderErrorf(methodWheel, "n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
		}
		rim, err := Cycle(n - 1)(cfg)
		if err != nil {
			return nil, builderErrorf(methodWheel, "rim: %w", err)
		}
		s := newEdgeSink(methodWheel, cfg, 2*(n-1))
		s.edges = append(s.edges, rim...)
		for i := 0; i < n-1; i++ {
			if err := s.add(centerVertexID, cfg.idFn(i)); err != nil {
				return nil, err
			}
		}

		return s.edges, nil
	}
}
