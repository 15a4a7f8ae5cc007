package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/nodestack/internal/logger"
	"github.com/joshuapare/nodestack/stack"
	"github.com/joshuapare/nodestack/stack/alloc"
)

var (
	stressPushes int
	stressPops   int
)

// errConservation indicates the tracing counts and the stack disagreed.
var errConservation = errors.New("node count conservation violated")

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVar(&stressPushes, "pushes", 100_000, "Number of values to push")
	cmd.Flags().IntVar(&stressPops, "pops", 50_000, "Number of values to pop before closing")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Push, pop and close a traced stack, checking every node is accounted for",
		Long: `The stress command pushes --pushes values onto a tracing stack, pops --pops
of them and closes it. After every operation the number of live nodes reported
by the trace must equal the stack length, and closing must deallocate exactly
the nodes that were left.

Example:
  stackdemo stress
  stackdemo stress --pushes 1000000 --pops 10
  stackdemo stress --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress()
		},
	}
	return cmd
}

// stressReport is the --json output of stress.
type stressReport struct {
	Pushed      int    `json:"pushed"`
	Popped      int    `json:"popped"`
	Closed      int    `json:"closed"`
	Allocated   int    `json:"allocated"`
	Deallocated int    `json:"deallocated"`
	PeakRSS     uint64 `json:"peak_rss_bytes,omitempty"`
}

func runStress() error {
	if stressPushes < 0 || stressPops < 0 {
		return fmt.Errorf("--pushes and --pops must not be negative")
	}
	if stressPops > stressPushes {
		return fmt.Errorf("--pops (%d) exceeds --pushes (%d)", stressPops, stressPushes)
	}

	rec := &alloc.Recorder{}
	st := stack.NewTracing[int](rec)

	for i := range stressPushes {
		if err := st.Push(i); err != nil {
			return err
		}
		if err := checkConservation(st.Len(), rec); err != nil {
			return fmt.Errorf("after push %d: %w", i, err)
		}
	}
	for i := range stressPops {
		want := stressPushes - 1 - i
		got, err := st.Pop()
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("pop %d returned %d, want %d", i, got, want)
		}
		if err := checkConservation(st.Len(), rec); err != nil {
			return fmt.Errorf("after pop %d: %w", i, err)
		}
	}

	left := st.Len()
	before := rec.Deallocated()
	st.Close()
	if closed := rec.Deallocated() - before; closed != left {
		return fmt.Errorf("%w: close deallocated %d nodes, %d were live", errConservation, closed, left)
	}
	if err := checkConservation(0, rec); err != nil {
		return fmt.Errorf("after close: %w", err)
	}

	report := stressReport{
		Pushed:      stressPushes,
		Popped:      stressPops,
		Closed:      left,
		Allocated:   rec.Allocated(),
		Deallocated: rec.Deallocated(),
	}
	peak, ok := peakRSS()
	if ok {
		report.PeakRSS = peak
	}
	logger.Info("stress complete", "pushed", report.Pushed, "popped", report.Popped, "closed", report.Closed)

	if jsonOut {
		return printJSON(report)
	}
	if quiet {
		return nil
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(os.Stdout, "pushed %d, popped %d, closed %d\n", report.Pushed, report.Popped, report.Closed)
	p.Fprintf(os.Stdout, "events: %d allocated, %d deallocated, 0 live\n", report.Allocated, report.Deallocated)
	if ok {
		fmt.Fprintf(os.Stdout, "peak RSS: %s\n", humanize.Bytes(peak))
	}
	return nil
}

func checkConservation(length int, rec *alloc.Recorder) error {
	if live := rec.Live(); live != length {
		return fmt.Errorf("%w: %d live nodes traced, stack holds %d", errConservation, live, length)
	}
	return nil
}
