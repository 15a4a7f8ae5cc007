package alloc

import "github.com/go-logr/logr"

// LogrSink logs each event through a logr.Logger at verbosity V.
type LogrSink struct {
	Logger logr.Logger
	V      int
}

// NewLogrSink returns a sink logging through logger at verbosity v.
func NewLogrSink(logger logr.Logger, v int) *LogrSink {
	return &LogrSink{Logger: logger, V: v}
}

func (s *LogrSink) Record(e Event) {
	s.Logger.V(s.V).Info(e.String(), "event", e.Kind.String(), "addr", formatAddr(e.Addr))
}
