package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/hostdevs/devs"
	"github.com/inference-sim/hostdevs/devs/host"
	"github.com/inference-sim/hostdevs/devs/scenario"
	"github.com/inference-sim/hostdevs/devs/trace"
)

var (
	configPath string  // Path to the YAML scenario
	horizon    float64 // Simulation horizon; negative keeps the scenario's value
	logLevel   string  // Log verbosity level
	traceLevel string  // Trace level; empty keeps the scenario's value
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "hostdevs",
	Short: "Discrete-event simulator for host-language DEVS models",
}

// runCmd builds the scenario named by --config and simulates it
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation scenario",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if configPath == "" {
			logrus.Fatalf("Scenario config not provided. Exiting simulation.")
		}
		sc, err := scenario.Load(configPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if horizon >= 0 {
			sc.Horizon = horizon
		}
		if traceLevel != "" {
			sc.Trace = traceLevel
		}

		if err := runScenario(sc, os.Stdout); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// runScenario builds sc in a fresh runtime, runs it to its horizon and
// writes a summary to w.
func runScenario(sc *scenario.Scenario, w io.Writer) error {
	rt := host.NewRuntime()
	n, err := scenario.Build(rt, sc)
	if err != nil {
		return err
	}
	defer n.Close()

	s, err := devs.NewSimulatorFromDigraph(n.Digraph)
	if err != nil {
		return err
	}
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(sc.Trace)})
	s.AddListener(devs.NewTraceListener(st))

	tEnd := devs.Infinity
	if sc.Horizon > 0 {
		tEnd = devs.Time(sc.Horizon)
	}
	logrus.Infof("Starting simulation with %d models, horizon=%g, trace=%q",
		len(n.Names), float64(tEnd), sc.Trace)
	startTime := time.Now()
	if err := s.ExecuteUntil(tEnd); err != nil {
		return err
	}
	logrus.Debugf("Simulation ran in %v", time.Since(startTime))

	printSummary(w, s, n, trace.Summarize(st), sc.Trace)
	return nil
}

func printSummary(w io.Writer, s *devs.Simulator, n *scenario.Network, sum *trace.TraceSummary, level string) {
	fmt.Fprintln(w, "=== Simulation Summary ===")
	fmt.Fprintf(w, "Final Clock          : %g\n", float64(s.Clock()))
	fmt.Fprintf(w, "Next Event           : %g\n", float64(s.NextEventTime()))
	if level != "" && level != string(trace.TraceLevelNone) {
		fmt.Fprintf(w, "Transitions          : %d\n", sum.TotalTransitions)
		for _, name := range n.Names {
			fmt.Fprintf(w, "  %-18s : %d\n", name, sum.TransitionsByModel[name])
		}
	}
	if level == string(trace.TraceLevelEvents) {
		fmt.Fprintf(w, "Outputs              : %d\n", sum.TotalOutputs)
		names := make([]string, 0, len(sum.OutputsByModel))
		for name := range sum.OutputsByModel {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %-18s : %d\n", name, sum.OutputsByModel[name])
		}
	}
	for _, name := range n.Names {
		obj := n.Object(name)
		if !obj.HasAttr("received") {
			continue
		}
		v := obj.GetAttr("received")
		fmt.Fprintf(w, "Received by %-9s: %s\n", name, v.Repr())
		v.DecRef()
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to the YAML scenario")
	runCmd.Flags().Float64Var(&horizon, "horizon", -1, "Simulation horizon; 0 runs until every model is passive (default: scenario value)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "", "Trace level (none, transitions, events) (default: scenario value)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
