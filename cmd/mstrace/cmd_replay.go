package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstrace/graphio"
	"github.com/katalvlaran/mstrace/internal/logging"
	"github.com/katalvlaran/mstrace/internal/observability"
	"github.com/katalvlaran/mstrace/kruskal"
	"github.com/katalvlaran/mstrace/replay"
)

func newReplayCmd(a *app) *cobra.Command {
	var (
		speed float64
		delay time.Duration
	)

	cmd := &cobra.Command{
		Use:   "replay <graph>",
		Short: "Stream the step trace as paced JSON lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, span := observability.StartCommandSpan(cmd.Context(), "replay")
			defer span.End()
			log := logging.New("replay")
			sink := replay.NewWriterSink(cmd.OutOrStdout())

			doc, err := graphio.Load(args[0])
			if err != nil {
				// Report in-band as well, so a stream consumer sees why nothing follows.
				if serr := sink.Send(ctx, replay.ErrorMessage(err)); serr != nil {
					log.Debug("in-band error not delivered", "error", serr)
				}
				observability.RecordError(span, err)
				return err
			}

			_, res, stats := kruskal.Compute(doc.Edges)
			observability.RecordRun(span, stats)

			if !cmd.Flags().Changed("speed") {
				speed = a.cfg.Replay.Speed
			}
			if !cmd.Flags().Changed("delay") {
				delay = a.cfg.Replay.BaseDelay
			}
			log.Debug("replaying", "file", args[0], "steps", len(res.Steps), "speed", speed, "delay", delay)

			err = replay.Replay(ctx, res, stats, sink,
				replay.WithSpeed(speed),
				replay.WithBaseDelay(delay),
				replay.WithLogger(log),
			)
			observability.RecordError(span, err)

			return err
		},
	}

	cmd.Flags().Float64Var(&speed, "speed", 1, "Playback speed multiplier")
	cmd.Flags().DurationVar(&delay, "delay", replay.DefaultBaseDelay, "Delay between steps at speed 1")

	return cmd
}
