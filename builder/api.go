// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// api.go — public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Resolves cfg once, runs cons in order,
//     concatenates their edges.
//   - Determinism: same options/seed and constructor order ⇒ identical edge lists.
//   - Constructors never panic; they return sentinel errors wrapped with the topology name.
//   - Invalid With* option values are reported by Build as ErrConstructFailed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstrace/kruskal"
)

// Constructor emits the edges of one topology using the resolved config.
type Constructor func(cfg builderConfig) ([]kruskal.Edge, error)

// Build resolves opts and concatenates the edges produced by cons, in order.
// Any constructor error is wrapped as "Build: %w" and returned immediately.
//
// Complexity: Σ cost of each constructor; O(len(opts)) to resolve options.
func Build(opts []BuilderOption, cons ...Constructor) ([]kruskal.Edge, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("Build: %w", cfg.err)
	}

	var out []kruskal.Edge
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		edges, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		out = append(out, edges...)
	}
	if out == nil {
		out = []kruskal.Edge{}
	}

	return out, nil
}

// ByName returns the constructor for a named topology. size is n for
// one-dimensional topologies and the side length for "grid"; p is only read
// by "random".
//
// Names: path, cycle, star, wheel, complete, grid, random.
func ByName(name string, size int, p float64) (Constructor, error) {
	switch name {
	case "path":
		return Path(size), nil
	case "cycle":
		return Cycle(size), nil
	case "star":
		return Star(size), nil
	case "wheel":
		return Wheel(size), nil
	case "complete":
		return Complete(size), nil
	case "grid":
		return Grid(size, size), nil
	case "random":
		return RandomSparse(size, p), nil
	default:
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownTopology)
	}
}

// Topologies lists the names accepted by ByName.
func Topologies() []string {
	return []string{"path", "cycle", "star", "wheel", "complete", "grid", "random"}
}

// edgeSink accumulates edges for one constructor and tags errors with its method.
type edgeSink struct {
	method string
	cfg    builderConfig
	edges  []kruskal.Edge
}

func newEdgeSink(method string, cfg builderConfig, capacity int) *edgeSink {
	return &edgeSink{method: method, cfg: cfg, edges: make([]kruskal.Edge, 0, capacity)}
}

// add draws a weight and appends u—v.
func (s *edgeSink) add(u, v string) error {
	w, err := s.cfg.weight(s.method)
	if err != nil {
		return err
	}
	s.edges = append(s.edges, kruskal.Edge{Source: u, Target: v, Weight: w})

	return nil
}

// builderErrorf prefixes format with the method name; %w verbs are preserved.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
