// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations add context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) is below the
// topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not produce a valid edge list
// (nil constructor, invalid option value, vertex count beyond the ID scheme,
// or a weight function returned a non-positive weight).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology indicates ByName was given a name it does not know.
var ErrUnknownTopology = errors.New("builder: unknown topology")
