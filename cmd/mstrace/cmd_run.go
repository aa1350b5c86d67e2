package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstrace/batch"
	"github.com/katalvlaran/mstrace/graphio"
	"github.com/katalvlaran/mstrace/internal/logging"
	"github.com/katalvlaran/mstrace/internal/observability"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		output    string
		withSteps bool
		verifyRun bool
		parallel  int
	)

	cmd := &cobra.Command{
		Use:   "run <graph>...",
		Short: "Compute the MST and trace of one or more graph files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, span := observability.StartCommandSpan(cmd.Context(), "run")
			defer span.End()
			log := logging.New("run")

			format, err := graphio.ParseFormat(output)
			if err != nil {
				return err
			}

			jobs := make([]batch.Job, 0, len(args))
			for _, path := range args {
				doc, err := graphio.Load(path)
				if err != nil {
					observability.RecordError(span, err)
					return err
				}
				jobs = append(jobs, batch.Job{Name: path, Edges: doc.Edges})
			}

			opts := batch.Options{
				Parallel: a.cfg.Batch.Parallel,
				Verify:   a.cfg.Batch.Verify,
				Logger:   log,
			}
			if cmd.Flags().Changed("parallel") {
				opts.Parallel = parallel
			}
			if cmd.Flags().Changed("verify") {
				opts.Verify = verifyRun
			}

			outcomes, runErr := batch.RunAll(ctx, jobs, opts)
			if outcomes == nil {
				observability.RecordError(span, runErr)
				return runErr
			}

			for _, o := range outcomes {
				observability.RecordRun(span, o.Statistics)
				report := graphio.NewReport(o.Result, o.Statistics)
				if !withSteps {
					report.Steps = nil
				}
				if err := graphio.Encode(cmd.OutOrStdout(), report, format); err != nil {
					return err
				}
			}
			observability.RecordError(span, runErr)

			return runErr
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format: json or yaml")
	cmd.Flags().BoolVar(&withSteps, "steps", true, "Include the step trace in the report")
	cmd.Flags().BoolVar(&verifyRun, "verify", false, "Cross-check each run against independent oracles")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "Concurrent runs (0 = GOMAXPROCS)")

	return cmd
}
