package batch_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstrace/batch"
	"github.com/katalvlaran/mstrace/builder"
	"github.com/katalvlaran/mstrace/kruskal"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunAll_OrderAndIsolation(t *testing.T) {
	var jobs []batch.Job
	for seed := int64(0); seed < 16; seed++ {
		edges, err := builder.Build(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntWeight(1, 9)},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)
		jobs = append(jobs, batch.Job{Name: fmt.Sprintf("seed-%d", seed), Edges: edges})
	}

	out, err := batch.RunAll(context.Background(), jobs, batch.Options{Parallel: 4, Verify: true, Logger: quietLogger()})
	require.NoError(t, err)
	require.Len(t, out, len(jobs))

	for i, o := range out {
		assert.Equal(t, jobs[i].Name, o.Name)
		// Concurrent runs must match a sequential run byte for byte.
		_, want, wantStats := kruskal.Compute(jobs[i].Edges)
		assert.Equal(t, want, o.Result)
		assert.Equal(t, wantStats, o.Statistics)
		assert.NoError(t, o.VerifyErr)
	}
}

func TestRunAll_NoJobs(t *testing.T) {
	_, err := batch.RunAll(context.Background(), nil, batch.Options{})
	assert.ErrorIs(t, err, batch.ErrNoJobs)
}

func TestRunAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := batch.RunAll(ctx, []batch.Job{{Name: "a", Edges: []kruskal.Edge{{Source: "A", Target: "B", Weight: 1}}}},
		batch.Options{Logger: quietLogger()})
	assert.ErrorIs(t, err, context.Canceled)
}
