// Package builder_test verifies topology shapes, determinism and error
// classification for every constructor.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstrace/builder"
	"github.com/katalvlaran/mstrace/kruskal"
	"github.com/katalvlaran/mstrace/verify"
)

// TestBuilders_Functional checks node/edge counts and connectivity per topology.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantV     int
		wantE     int
		wantComps int
	}{
		{"Path(4)", builder.Path(4), 4, 3, 1},
		{"Path(1)", builder.Path(1), 0, 0, 0},
		{"Cycle(5)", builder.Cycle(5), 5, 5, 1},
		{"Star(6)", builder.Star(6), 6, 5, 1},
		{"Wheel(5)", builder.Wheel(5), 5, 8, 1},
		{"Complete(5)", builder.Complete(5), 5, 10, 1},
		{"Grid(3x4)", builder.Grid(3, 4), 12, 17, 1},
		{"RandomSparse(6,0)", builder.RandomSparse(6, 0), 0, 0, 0},
		{"RandomSparse(6,1)", builder.RandomSparse(6, 1), 6, 15, 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			edges, err := builder.Build(nil, tc.ctor)
			require.NoError(t, err)
			g := kruskal.New(edges)

			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.Equal(t, tc.wantComps, verify.CountComponents(g.Nodes(), g.Edges()))
			for _, e := range edges {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
		})
	}
}

// TestCycle_Order verifies the documented emission order i—(i+1)%n.
func TestCycle_Order(t *testing.T) {
	edges, err := builder.Build([]builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(3))
	require.NoError(t, err)

	assert.Equal(t, []kruskal.Edge{
		{Source: "A", Target: "B", Weight: 1},
		{Source: "B", Target: "C", Weight: 1},
		{Source: "C", Target: "A", Weight: 1},
	}, edges)
}

// TestBuild_Concatenates verifies constructors are applied in order.
func TestBuild_Concatenates(t *testing.T) {
	edges, err := builder.Build(
		[]builder.BuilderOption{builder.WithPrefixIDs("V")},
		builder.Path(2), builder.Star(2),
	)
	require.NoError(t, err)
	assert.Equal(t, []kruskal.Edge{
		{Source: "V0", Target: "V1", Weight: 1},
		{Source: "Center", Target: "V1", Weight: 1},
	}, edges)
}

// TestRandomSparse_Deterministic verifies equal seeds give equal edge lists.
func TestRandomSparse_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)}
	}
	a, err := builder.Build(opts(), builder.RandomSparse(20, 0.2))
	require.NoError(t, err)
	b, err := builder.Build(opts(), builder.RandomSparse(20, 0.2))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	for _, e := range a {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.Less(t, e.Weight, 10.0)
	}
}

// TestBuild_Errors verifies sentinel classification.
func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Path(0)", nil, builder.Path(0), builder.ErrTooFewVertices},
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0x3)", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse p<0", nil, builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse p>1", nil, builder.RandomSparse(3, 1.1), builder.ErrInvalidProbability},
		{"RandomSparse no rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{
			"zero weight",
			[]builder.BuilderOption{builder.WithWeightFn(func(*rand.Rand) float64 { return 0 })},
			builder.Path(3),
			builder.ErrConstructFailed,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestByName verifies the registry resolves every listed name.
func TestByName(t *testing.T) {
	for _, name := range builder.Topologies() {
		ctor, err := builder.ByName(name, 4, 1)
		require.NoError(t, err, name)
		_, err = builder.Build(nil, ctor)
		require.NoError(t, err, name)
	}
	_, err := builder.ByName("hypercube", 4, 0)
	assert.ErrorIs(t, err, builder.ErrUnknownTopology)
}

// TestIDSchemes covers the ID helpers.
func TestIDSchemes(t *testing.T) {
	assert.Equal(t, "0", builder.DefaultIDFn(0))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "n12", builder.PrefixIDFn("n")(12))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
}

// TestWeightFns covers range contracts of the weight helpers.
func TestWeightFns(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		w := builder.IntWeightFn(2, 4)(r)
		assert.Contains(t, []float64{2, 3, 4}, w)
		assert.GreaterOrEqual(t, builder.ExponentialWeightFn(0.5)(r), 1.0)
	}
	assert.Panics(t, func() { builder.ConstantWeightFn(0) })
	assert.Panics(t, func() { builder.UniformWeightFn(0, 1) })
	assert.Panics(t, func() { builder.IntWeightFn(0, 1) })
}

// TestBuild_InvalidWeightOptions verifies bad weight ranges surface from Build
// as ErrConstructFailed instead of panicking.
func TestBuild_InvalidWeightOptions(t *testing.T) {
	cases := map[string]builder.BuilderOption{
		"int min 0":         builder.WithIntWeight(0, 10),
		"int max < min":     builder.WithIntWeight(5, 2),
		"uniform min 0":     builder.WithUniformWeight(0, 1),
		"uniform max<min":   builder.WithUniformWeight(3, 1),
		"constant zero":     builder.WithConstantWeight(0),
		"constant negative": builder.WithConstantWeight(-2),
	}
	for name, opt := range cases {
		opt := opt
		t.Run(name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = builder.Build([]builder.BuilderOption{builder.WithSeed(1), opt}, builder.Path(3))
			})
			assert.ErrorIs(t, err, builder.ErrConstructFailed)
		})
	}
}

// TestBuild_ConstantWeight verifies every emitted edge carries the constant.
func TestBuild_ConstantWeight(t *testing.T) {
	edges, err := builder.Build([]builder.BuilderOption{builder.WithConstantWeight(2.5)}, builder.Cycle(4))
	require.NoError(t, err)
	require.Len(t, edges, 4)
	for _, e := range edges {
		assert.Equal(t, 2.5, e.Weight)
	}
}

// TestBuild_SymbolIDCapacity verifies symbol IDs cap the vertex count at 26.
func TestBuild_SymbolIDCapacity(t *testing.T) {
	ctors := map[string]builder.Constructor{
		"path":     builder.Path(30),
		"cycle":    builder.Cycle(27),
		"star":     builder.Star(27),
		"wheel":    builder.Wheel(28),
		"complete": builder.Complete(27),
		"random":   builder.RandomSparse(27, 0.5),
	}
	for name, ctor := range ctors {
		ctor := ctor
		t.Run(name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = builder.Build([]builder.BuilderOption{builder.WithSeed(1), builder.WithSymbolIDs()}, ctor)
			})
			assert.ErrorIs(t, err, builder.ErrConstructFailed)
		})
	}

	edges, err := builder.Build([]builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(26))
	require.NoError(t, err)
	assert.Equal(t, "Z", edges[len(edges)-1].Target)

	// An explicit scheme lifts the cap again.
	_, err = builder.Build([]builder.BuilderOption{
		builder.WithSymbolIDs(), builder.WithIDScheme(builder.ExcelColumnIDFn),
	}, builder.Path(30))
	assert.NoError(t, err)
}
