package replay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// WriterSink writes each message as one JSON line.
type WriterSink struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewWriterSink returns a WriterSink over w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{enc: json.NewEncoder(w)}
}

// Send encodes msg. ctx is checked before writing.
func (s *WriterSink) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(msg); err != nil {
		return fmt.Errorf("replay: write: %w", err)
	}

	return nil
}

// ChanSink forwards messages to a channel, blocking until the receiver
// takes each one or ctx is done.
type ChanSink chan<- Message

// Send implements Sink.
func (c ChanSink) Send(ctx context.Context, msg Message) error {
	select {
	case c <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
