package replay

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/mstrace/kruskal"
)

const tracerName = "github.com/katalvlaran/mstrace/replay"

// Replay sends every step of res to sink, then a completion message.
//
// Steps:
//  1. Resolve options; invalid speed/delay is returned before anything is sent.
//  2. For each message, wait on the pacing limiter, then Send.
//  3. Stop at the first Send error or when ctx is done, returning that error.
//
// res is only read. Returns nil once the completion message was delivered.
func Replay(ctx context.Context, res kruskal.RunResult, stats kruskal.Statistics, sink Sink, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	log := o.Logger
	if log == nil {
		log = slog.Default()
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "replay.Replay")
	defer span.End()
	span.SetAttributes(
		attribute.Int("replay.steps", len(res.Steps)),
		attribute.String("replay.delay", o.Delay().String()),
	)

	limiter := rate.NewLimiter(rate.Inf, 1)
	if d := o.Delay(); d > 0 {
		limiter = rate.NewLimiter(rate.Every(d), 1)
	}

	send := func(msg Message) error {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		return sink.Send(ctx, msg)
	}

	for _, st := range res.Steps {
		if err := send(StepMessage(st)); err != nil {
			log.Debug("replay stopped", slog.Int("step", st.StepNumber), slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "replay stopped")

			return fmt.Errorf("replay: step %d: %w", st.StepNumber, err)
		}
	}
	if err := send(CompleteMessage(res, stats)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "replay stopped")

		return fmt.Errorf("replay: complete: %w", err)
	}
	log.Debug("replay finished", slog.Int("steps", len(res.Steps)))

	return nil
}
