package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/joshuapare/nodestack/internal/logger"
	"github.com/joshuapare/nodestack/stack/alloc"
)

// colorSink writes trace lines like alloc.WriterSink, colored by event kind.
type colorSink struct {
	w       io.Writer
	alloc   *color.Color
	dealloc *color.Color
}

func newColorSink(w io.Writer) *colorSink {
	return &colorSink{
		w:       w,
		alloc:   color.New(color.FgGreen),
		dealloc: color.New(color.FgYellow),
	}
}

func (s *colorSink) Record(e alloc.Event) {
	c := s.alloc
	if e.Kind == alloc.Deallocating {
		c = s.dealloc
	}
	c.Fprintln(s.w, e.String())
}

// newTraceSink builds the sink named by --sink. Output goes to os.Stdout as
// it is at call time, so tests can redirect it.
func newTraceSink(name string) (alloc.Sink, error) {
	switch name {
	case "stdout", "":
		return newColorSink(os.Stdout), nil
	case "slog":
		return alloc.NewSlogSink(slog.New(slog.NewTextHandler(os.Stdout, nil)), slog.LevelInfo), nil
	case "logr":
		l, err := logger.NewLogr(os.Stdout, logLevel)
		if err != nil {
			return nil, err
		}
		return alloc.NewLogrSink(l, 0), nil
	default:
		return nil, fmt.Errorf("unknown sink %q (expected stdout, slog, or logr)", name)
	}
}
