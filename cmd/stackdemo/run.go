package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nodestack/internal/logger"
	"github.com/joshuapare/nodestack/internal/scenario"
	"github.com/joshuapare/nodestack/stack"
	"github.com/joshuapare/nodestack/stack/alloc"
)

var (
	runStrategy string
	runSink     string
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().StringVar(&runStrategy, "strategy", "tracing", "Allocation strategy (default, tracing)")
	cmd.Flags().StringVar(&runSink, "sink", "stdout", "Trace sink for the tracing strategy (stdout, slog, logr)")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "Replay a scenario against a stack",
		Long: `The run command replays a scripted scenario against a stack and checks
every expected result. Without a file it runs the built-in reference scenario.
The stack is closed at the end, so nodes still on it are deallocated too.

Example:
  stackdemo run
  stackdemo run --strategy default
  stackdemo run my-scenario.yaml --sink slog
  stackdemo run --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(args)
		},
	}
	return cmd
}

// runSummary is the --json output of run.
type runSummary struct {
	*scenario.Result
	Strategy string   `json:"strategy"`
	LeftOver int      `json:"left_at_close"`
	Events   []string `json:"events,omitempty"`
}

func runScenario(args []string) error {
	sc := scenario.Reference()
	if len(args) == 1 {
		printVerbose("Loading scenario: %s\n", args[0])
		var err error
		sc, err = scenario.LoadFile(args[0])
		if err != nil {
			return err
		}
	}

	switch runStrategy {
	case "default":
		return replay(stack.New[string](), sc, nil)
	case "tracing":
		// JSON output collects events into the summary instead of streaming them.
		rec := &alloc.Recorder{}
		if jsonOut {
			return replay(stack.NewTracing[string](rec), sc, rec)
		}
		sink, err := newTraceSink(runSink)
		if err != nil {
			return err
		}
		return replay(stack.NewTracing[string](alloc.Tee(rec, sink)), sc, rec)
	default:
		return fmt.Errorf("unknown strategy %q (expected default or tracing)", runStrategy)
	}
}

func replay[S alloc.Strategy[stack.Node[string]]](
	st *stack.Stack[string, S],
	sc *scenario.Scenario,
	rec *alloc.Recorder,
) error {
	logger.Info("replaying scenario", "name", sc.Name, "steps", len(sc.Steps), "strategy", runStrategy)

	res, err := scenario.Run(st, sc, func(i int, step scenario.Step, got string) {
		logger.Debug("step", "index", i, "op", string(step.Op), "result", got, "len", st.Len())
	})
	leftOver := st.Len()
	st.Close()
	if err != nil {
		return fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	if jsonOut {
		summary := runSummary{Result: res, Strategy: runStrategy, LeftOver: leftOver}
		if rec != nil {
			for _, e := range rec.Events() {
				summary.Events = append(summary.Events, e.String())
			}
		}
		return printJSON(summary)
	}

	printInfo("scenario %s passed: %d steps, popped [%s], %d left at close\n",
		res.Name, res.Steps, strings.Join(res.Popped, " "), leftOver)
	if rec != nil {
		printInfo("events: %d allocated, %d deallocated\n", rec.Allocated(), rec.Deallocated())
	}
	return nil
}
