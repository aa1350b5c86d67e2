// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// impl_random_sparse.go — RandomSparse(n, p): Erdős–Rényi G(n, p) edge sampling.

package builder

import "github.com/katalvlaran/mstrace/kruskal"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse includes each unordered pair {i<j} independently with
// probability p. Pairs are visited in lexicographic order and each trial
// draws one rng.Float64(), so a fixed seed fixes the edge set.
//
// p ∈ {0, 1} is deterministic and needs no RNG; any other p requires one.
// The result is usually disconnected for small p, which is the point:
// it exercises spanning-forest behaviour.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) ([]kruskal.Edge, error) {
		if n < minRandomSparseVertices {
			return nil, builderErrorf(methodRandomSparse, "n=%d < min=%d: %w",
				n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return nil, builderErrorf(methodRandomSparse, "p=%.6f not in [%.1f,%.1f]: %w",
				p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return nil, builderErrorf(methodRandomSparse, "rng is required: %w", ErrNeedRandSource)
		}

		if err := cfg.checkIDs(methodRandomSparse, n); err != nil {
			return nil, err
		}
		s := newEdgeSink(methodRandomSparse, cfg, 0)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var take bool
				switch {
				case p == probMin:
					take = false
				case p == probMax:
					take = true
				default:
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err := s.add(cfg.idFn(i), cfg.idFn(j)); err != nil {
					return nil, err
				}
			}
		}

		return s.edges, nil
	}
}
