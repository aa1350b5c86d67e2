package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mstrace/kruskal"
	"github.com/katalvlaran/mstrace/verify"
)

const tracerName = "github.com/katalvlaran/mstrace/batch"

// ErrNoJobs is returned by RunAll when jobs is empty.
var ErrNoJobs = errors.New("batch: no jobs")

// Job is one graph to compute.
type Job struct {
	Name  string
	Edges []kruskal.Edge
}

// Outcome is the result of one Job.
type Outcome struct {
	Name       string
	Graph      *kruskal.Graph
	Result     kruskal.RunResult
	Statistics kruskal.Statistics
	// VerifyErr holds verify.CheckResult output when Options.Verify is set.
	VerifyErr error
}

// Options configures RunAll.
type Options struct {
	// Parallel bounds concurrent runs; ≤ 0 means runtime.GOMAXPROCS(0).
	Parallel int
	// Verify cross-checks each run with package verify.
	Verify bool
	// Logger receives per-job events; nil means slog.Default().
	Logger *slog.Logger
}

// RunAll computes every job and returns outcomes in job order.
//
// Cancelling ctx stops jobs that have not started; the first context error is
// returned. A failed verification does not abort other jobs: it is reported
// in Outcome.VerifyErr and, joined, as the returned error.
func RunAll(ctx context.Context, jobs []Job, opts Options) ([]Outcome, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}
	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "batch.RunAll")
	defer span.End()
	span.SetAttributes(attribute.Int("batch.jobs", len(jobs)), attribute.Int("batch.parallel", parallel))

	out := make([]Outcome, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := range jobs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = runOne(gctx, jobs[i], opts.Verify, log)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	var verr []error
	for _, o := range out {
		if o.VerifyErr != nil {
			verr = append(verr, fmt.Errorf("%s: %w", o.Name, o.VerifyErr))
		}
	}

	return out, errors.Join(verr...)
}

func runOne(ctx context.Context, job Job, check bool, log *slog.Logger) Outcome {
	_, span := otel.Tracer(tracerName).Start(ctx, "kruskal.Run")
	defer span.End()

	g, res, stats := kruskal.Compute(job.Edges)
	span.SetAttributes(
		attribute.String("job.name", job.Name),
		attribute.Int("graph.nodes", stats.TotalNodes),
		attribute.Int("graph.edges", stats.TotalEdges),
		attribute.Float64("mst.total_cost", res.TotalCost),
	)

	o := Outcome{Name: job.Name, Graph: g, Result: res, Statistics: stats}
	if check {
		o.VerifyErr = verify.CheckResult(g, res)
	}
	log.Info("run finished",
		slog.String("job", job.Name),
		slog.Int("nodes", stats.TotalNodes),
		slog.Int("edges", stats.TotalEdges),
		slog.Float64("total_cost", res.TotalCost),
		slog.Bool("spanning", stats.IsSpanning),
	)

	return o
}
