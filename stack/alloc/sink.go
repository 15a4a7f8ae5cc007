package alloc

import (
	"io"
	"os"
	"sync"
)

// Sink receives trace events in the order they happen.
type Sink interface {
	Record(e Event)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(e Event)

func (f SinkFunc) Record(e Event) { f(e) }

// Stdout is the process-wide sink used by a Tracing strategy with no Sink set.
var Stdout Sink = NewWriterSink(os.Stdout)

// WriterSink writes one trace line per event to an io.Writer.
type WriterSink struct {
	mu  sync.Mutex
	w   io.Writer
	err error
}

// NewWriterSink returns a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Record(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}
	if _, err := io.WriteString(s.w, e.String()+"\n"); err != nil {
		s.err = err
	}
}

// Err returns the first write error. Once a write fails the sink stops
// writing, so a broken destination does not interleave partial lines.
func (s *WriterSink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Tee forwards every event to each sink in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(e Event) {
		for _, s := range sinks {
			s.Record(e)
		}
	})
}
