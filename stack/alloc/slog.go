package alloc

import (
	"context"
	"log/slog"
)

// SlogSink logs each event as an slog record. The message is the trace line;
// the event kind and address are attached as attributes.
type SlogSink struct {
	Logger *slog.Logger
	Level  slog.Level
}

// NewSlogSink returns a sink logging at level. A nil logger uses slog.Default.
func NewSlogSink(logger *slog.Logger, level slog.Level) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{Logger: logger, Level: level}
}

func (s *SlogSink) Record(e Event) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.LogAttrs(context.Background(), s.Level, e.String(),
		slog.String("event", e.Kind.String()),
		slog.String("addr", formatAddr(e.Addr)),
	)
}
