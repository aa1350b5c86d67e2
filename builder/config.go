// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// config.go — resolved, immutable builder configuration.

package builder

import "math/rand"

// builderConfig is resolved once per Build call from BuilderOption values.
type builderConfig struct {
	// idFn maps a vertex index to its ID.
	idFn IDFn
	// rng feeds stochastic constructors and weight functions; nil means none.
	rng *rand.Rand
	// weightFn produces one weight per emitted edge.
	weightFn WeightFn
	// idLimit is the number of distinct IDs idFn can render; 0 means unbounded.
	idLimit int
	// err is the first invalid option seen; Build returns it before any constructor runs.
	err error
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// reject records the first option error.
func (cfg *builderConfig) reject(err error) {
	if cfg.err == nil {
		cfg.err = err
	}
}

// checkIDs fails when vertex indices 0..n-1 do not fit the ID scheme.
func (cfg builderConfig) checkIDs(method string, n int) error {
	if cfg.idLimit > 0 && n > cfg.idLimit {
		return builderErrorf(method, "n=%d exceeds the %d IDs of the vertex ID scheme: %w",
			n, cfg.idLimit, ErrConstructFailed)
	}

	return nil
}

// weight draws the next edge weight and rejects anything that is not > 0.
func (cfg builderConfig) weight(method string) (float64, error) {
	w := cfg.weightFn(cfg.rng)
	if !(w > 0) {
		return 0, builderErrorf(method, "weight %g is not positive: %w", w, ErrConstructFailed)
	}

	return w, nil
}
