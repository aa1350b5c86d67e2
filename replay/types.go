package replay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/mstrace/kruskal"
)

// ErrBadSpeed is returned when a non-positive speed multiplier is supplied.
var ErrBadSpeed = errors.New("replay: speed must be > 0")

// ErrBadDelay is returned when a negative base delay is supplied.
var ErrBadDelay = errors.New("replay: base delay must be ≥ 0")

// MessageType tags a streamed Message.
type MessageType string

const (
	TypeStep     MessageType = "step"
	TypeComplete MessageType = "complete"
	TypeError    MessageType = "error"
)

// Message is one streamed envelope.
type Message struct {
	Type    MessageType `json:"type"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Completion is the payload of the final "complete" message.
type Completion struct {
	MSTEdges   []kruskal.Edge     `json:"mst_edges"`
	TotalCost  float64            `json:"total_cost"`
	Statistics kruskal.Statistics `json:"statistics"`
}

// StepMessage wraps a StepRecord.
func StepMessage(st kruskal.StepRecord) Message {
	return Message{Type: TypeStep, Data: st}
}

// CompleteMessage wraps the final result.
func CompleteMessage(res kruskal.RunResult, stats kruskal.Statistics) Message {
	return Message{Type: TypeComplete, Data: Completion{
		MSTEdges:   res.MSTEdges,
		TotalCost:  res.TotalCost,
		Statistics: stats,
	}}
}

// ErrorMessage wraps err for transports that report failures in-band.
func ErrorMessage(err error) Message {
	return Message{Type: TypeError, Message: err.Error()}
}

// Sink receives streamed messages. Send must honour ctx.
type Sink interface {
	Send(ctx context.Context, msg Message) error
}

// DefaultBaseDelay is the delay between messages at Speed 1.
const DefaultBaseDelay = time.Second

// Options configures Replay.
type Options struct {
	// BaseDelay is the spacing between messages at Speed 1.
	BaseDelay time.Duration
	// Speed divides BaseDelay; 2.0 plays twice as fast.
	Speed float64
	// Logger receives debug events; nil means slog.Default().
	Logger *slog.Logger

	err error
}

// Option configures Options. Invalid values are recorded and surfaced by Replay.
type Option func(*Options)

// DefaultOptions returns BaseDelay 1s, Speed 1.
func DefaultOptions() Options {
	return Options{BaseDelay: DefaultBaseDelay, Speed: 1}
}

// WithBaseDelay sets the delay between messages at Speed 1.
func WithBaseDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: got %s", ErrBadDelay, d)
			return
		}
		o.BaseDelay = d
	}
}

// WithSpeed sets the playback multiplier.
func WithSpeed(s float64) Option {
	return func(o *Options) {
		if !(s > 0) {
			o.err = fmt.Errorf("%w: got %g", ErrBadSpeed, s)
			return
		}
		o.Speed = s
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Delay returns the effective spacing between messages.
func (o Options) Delay() time.Duration {
	return time.Duration(float64(o.BaseDelay) / o.Speed)
}
