// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// weight_fn.go — edge weight generators. All of them return values > 0.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is used when no weight function is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn returns the weight of the next emitted edge. rng may be nil.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics unless value > 0.
func ConstantWeightFn(value float64) WeightFn {
	if !(value > 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn draws from [min, max). Panics unless 0 < min <= max.
// Without an RNG it returns min.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min > 0) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// IntWeightFn draws integers uniformly from [min, max]. Panics unless 1 <= min <= max.
// Integer weights make equal-weight ties common, which exercises stable ordering.
func IntWeightFn(min, max int) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("IntWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(min)
		}
		return float64(min + rng.Intn(max-min+1))
	}
}

// ExponentialWeightFn draws ceil(Exp(rate)) so the result is at least 1.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return math.Max(1, math.Ceil(rng.ExpFloat64()/rate))
	}
}

// The With*Weight options validate their arguments instead of panicking:
// an invalid value makes Build fail with ErrConstructFailed.

// WithConstantWeight uses ConstantWeightFn(w).
func WithConstantWeight(w float64) BuilderOption {
	return func(c *builderConfig) {
		if !(w > 0) {
			c.reject(fmt.Errorf("WithConstantWeight: value must be > 0, got %g: %w", w, ErrConstructFailed))
			return
		}
		c.weightFn = ConstantWeightFn(w)
	}
}

// WithUniformWeight uses UniformWeightFn(min, max).
func WithUniformWeight(min, max float64) BuilderOption {
	return func(c *builderConfig) {
		if !(min > 0) || max < min {
			c.reject(fmt.Errorf("WithUniformWeight: require 0 < min ≤ max, got min=%g, max=%g: %w",
				min, max, ErrConstructFailed))
			return
		}
		c.weightFn = UniformWeightFn(min, max)
	}
}

// WithIntWeight uses IntWeightFn(min, max).
func WithIntWeight(min, max int) BuilderOption {
	return func(c *builderConfig) {
		if min < 1 || max < min {
			c.reject(fmt.Errorf("WithIntWeight: require 1 ≤ min ≤ max, got min=%d, max=%d: %w",
				min, max, ErrConstructFailed))
			return
		}
		c.weightFn = IntWeightFn(min, max)
	}
}
