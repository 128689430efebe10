// Package main provides the longpath CLI: solve longest-path instances,
// generate test graphs, and compare solver families.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/longpath/compare"
	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/graphio"
	"github.com/katalvlaran/longpath/longest"
)

var version = "0.1.0"

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	rootCmd := &cobra.Command{
		Use:   "longpath",
		Short: "longpath - Longest Simple Path solvers for weighted graphs",
		Long: `longpath finds the maximum-weight simple path in an undirected,
edge-weighted graph.

Two solver families are available:
  • exact   - exhaustive backtracking search, guaranteed optimal
  • approx  - multi-start seeded greedy heuristics, polynomial time

Graphs are plain text: an "n m" header line followed by "u v w" edge lines.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("longpath v%s\n", version)
		},
	})

	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newCompareCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// parseScorerSet maps the CLI identifier to a longest.ScorerSet.
func parseScorerSet(s string) (longest.ScorerSet, error) {
	switch s {
	case "auto":
		return longest.ScorerSetAuto, nil
	case "general":
		return longest.ScorerSetGeneral, nil
	case "priority":
		return longest.ScorerSetPriority, nil
	case "all":
		return longest.ScorerSetAll, nil
	default:
		return 0, fmt.Errorf("unknown scorer set %q (want auto|general|priority|all)", s)
	}
}

// readGraphArg opens the positional file argument, or stdin when absent.
func readGraphArg(args []string) (*core.Graph, error) {
	var in io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	return graphio.Read(in)
}

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve one instance (file or stdin)",
		Long: `Solve reads one graph and prints the result: the path length on the
first line, the space-joined vertex sequence on the second.

By default the exact solver runs; --approx switches to the heuristic
driver. --timeout bounds the exact solver's wall clock (it has none of
its own); an overrun aborts the command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}
	cmd.Flags().Bool("approx", false, "use the heuristic driver instead of exact search")
	cmd.Flags().Int64("seed", 0, "base seed for heuristic tie-breaking (0 = fixed default)")
	cmd.Flags().String("scorers", "auto", "heuristic scorer set: auto|general|priority|all")
	cmd.Flags().Int("starts", 0, "heuristic start budget (0 = auto, -1 = all vertices)")
	cmd.Flags().Duration("timeout", 0, "wall-clock bound for the exact solver (0 = none)")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, err := readGraphArg(args)
	if err != nil {
		// The empty instance has the well-defined answer (0, []).
		if errors.Is(err, core.ErrEmptyGraph) {
			return graphio.WriteResult(os.Stdout, 0, nil)
		}

		return err
	}

	approx, _ := cmd.Flags().GetBool("approx")
	logger.Info("instance loaded", "vertices", g.Order(), "edges", g.Size(), "approx", approx)

	var res longest.Result
	startedAt := time.Now()
	if approx {
		seed, _ := cmd.Flags().GetInt64("seed")
		starts, _ := cmd.Flags().GetInt("starts")
		scorers, _ := cmd.Flags().GetString("scorers")
		set, err := parseScorerSet(scorers)
		if err != nil {
			return err
		}
		res, err = longest.ApproxSolve(g,
			longest.WithSeed(seed),
			longest.WithStartCount(starts),
			longest.WithScorerSet(set),
		)
		if err != nil {
			return err
		}
	} else {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		res, err = exactWithBudget(g, timeout)
		if err != nil {
			return err
		}
	}
	logger.Info("solved", "length", res.Length, "path_vertices", len(res.Path), "elapsed", time.Since(startedAt))

	return graphio.WriteResult(os.Stdout, res.Length, res.Path)
}

// exactWithBudget bounds ExactSolve with an external wall clock. The solver
// cannot be interrupted mid-search; on overrun it is abandoned and the
// command fails.
func exactWithBudget(g *core.Graph, budget time.Duration) (longest.Result, error) {
	if budget <= 0 {
		return longest.ExactSolve(g), nil
	}

	done := make(chan longest.Result, 1)
	go func() { done <- longest.ExactSolve(g) }()

	select {
	case res := <-done:
		return res, nil
	case <-time.After(budget):
		return longest.Result{}, fmt.Errorf("exact solve exceeded %s budget", budget)
	}
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a test graph",
		Long: `Generate emits one graph in the solver text format on stdout
(or --out). Shapes: path, cycle, star, complete, tree, sparse, dense, trap.`,
		RunE: runGenerate,
	}
	cmd.Flags().String("shape", "sparse", "graph shape")
	cmd.Flags().Int("n", 10, "vertex count")
	cmd.Flags().Int("m", 15, "edge count (sparse)")
	cmd.Flags().Float64("density", 0.5, "edge density (dense)")
	cmd.Flags().Int64("seed", 0, "generator seed")
	cmd.Flags().String("out", "", "output file (default stdout)")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var (
		shape, _   = cmd.Flags().GetString("shape")
		n, _       = cmd.Flags().GetInt("n")
		m, _       = cmd.Flags().GetInt("m")
		density, _ = cmd.Flags().GetFloat64("density")
		seed, _    = cmd.Flags().GetInt64("seed")
		outPath, _ = cmd.Flags().GetString("out")
	)

	spec := compare.CaseSpec{Name: shape, Shape: shape, N: n, M: m, Density: density, Seed: seed}
	g, err := spec.Build()
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	logger.Info("generated", "shape", shape, "vertices", g.Order(), "edges", g.Size(), "seed", seed)

	return graphio.Write(out, g)
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run an exact-vs-heuristic comparison suite",
		Long: `Compare loads a YAML suite of generator cases, solves every case with
both families, and prints per-case gaps plus aggregate statistics.`,
		RunE: runCompare,
	}
	cmd.Flags().String("suite", "", "YAML suite file (required)")
	cmd.Flags().Int64("seed", 42, "base seed for heuristic solves")
	cmd.Flags().String("scorers", "auto", "heuristic scorer set: auto|general|priority|all")
	cmd.Flags().Duration("exact-budget", 30*time.Second, "wall-clock bound per exact solve")
	_ = cmd.MarkFlagRequired("suite")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	var (
		suitePath, _ = cmd.Flags().GetString("suite")
		seed, _      = cmd.Flags().GetInt64("seed")
		scorers, _   = cmd.Flags().GetString("scorers")
		budget, _    = cmd.Flags().GetDuration("exact-budget")
	)
	set, err := parseScorerSet(scorers)
	if err != nil {
		return err
	}

	f, err := os.Open(suitePath)
	if err != nil {
		return err
	}
	defer f.Close()

	suite, err := compare.LoadSuite(f)
	if err != nil {
		return err
	}
	logger.Info("suite loaded", "name", suite.Name, "cases", len(suite.Cases))

	rep, err := compare.Run(context.Background(), suite,
		compare.WithSeed(seed),
		compare.WithScorerSet(set),
		compare.WithExactBudget(budget),
	)
	if err != nil {
		return err
	}

	printReport(os.Stdout, rep)

	return nil
}

// printReport renders per-case rows and the aggregate summary.
func printReport(w io.Writer, rep *compare.Report) {
	fmt.Fprintf(w, "suite: %s\n", rep.Suite)
	fmt.Fprintf(w, "%-20s %6s %6s %12s %12s %8s\n", "case", "V", "E", "exact", "approx", "gap%")
	for _, r := range rep.Results {
		if r.TimedOut {
			fmt.Fprintf(w, "%-20s %6d %6d %12s %12.2f %8s\n", r.Name, r.Order, r.Size, "timeout", r.Approx.Length, "-")

			continue
		}
		fmt.Fprintf(w, "%-20s %6d %6d %12.2f %12.2f %8.2f\n",
			r.Name, r.Order, r.Size, r.Exact.Length, r.Approx.Length, r.GapPercent)
	}

	s := rep.Summary
	fmt.Fprintf(w, "\ncases=%d timed_out=%d optimal=%d (%.1f%%)\n", s.Cases, s.TimedOut, s.Optimal, 100*s.OptimalRate)
	fmt.Fprintf(w, "gap%%: mean=%.2f p90=%.2f max=%.2f\n", s.MeanGap, s.P90Gap, s.MaxGap)
}
