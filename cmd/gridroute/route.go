// File: route.go
// Role: the `route` subcommand — read a graph and plan, run the
// negotiated-congestion router, write the routed plan and metrics.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/wiregraph/gridroute/metrics"
	"github.com/wiregraph/gridroute/negotiate"
	"github.com/wiregraph/gridroute/planio"
)

func runRoute(args []string, logger zerolog.Logger) error {
	fs := flag.NewFlagSet("route", flag.ExitOnError)
	graphPath := fs.String("graph", "", "path to a textual graph file (required)")
	planPath := fs.String("plan", "", "path to a routing plan JSON file (required)")
	outPath := fs.String("out", "", "path to write the routed plan JSON (default: stdout)")
	metricsPath := fs.String("metrics", "", "path to write the per-iteration metrics CSV (default: none)")
	solver := fs.String("solver", string(negotiate.SolverSteiner), "independent_paths|steiner|simple_steiner")
	histFactor := fs.Float64("hist-factor", negotiate.DefaultOptions().HistFactor, "historic-cost accumulation factor")
	presentFactor := fs.Float64("present-factor", negotiate.DefaultOptions().PresentFactor, "present-cost congestion factor")
	maxIterations := fs.Int("max-iterations", negotiate.DefaultOptions().MaxIterations, "iteration budget")
	timeout := fs.Duration("timeout", 0, "overall deadline; 0 disables it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *graphPath == "" || *planPath == "" {
		return fmt.Errorf("route: -graph and -plan are required")
	}

	graphFile, err := os.Open(*graphPath)
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}
	defer graphFile.Close()

	g, err := planio.ParseGraph(graphFile)
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}

	planFile, err := os.Open(*planPath)
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}
	defer planFile.Close()

	plan, err := planio.ReadPlan(planFile, g)
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}

	if unreachable, err := planio.UnreachableSinkNames(g); err == nil && len(unreachable) > 0 {
		logger.Warn().Strs("sinks", unreachable).Msg("these sinks are unreachable from any source")
	}

	cfg := negotiate.Config{
		Solver:        negotiate.Solver(*solver),
		HistFactor:    *histFactor,
		PresentFactor: *presentFactor,
		MaxIterations: *maxIterations,
	}
	router := negotiate.NewRouter(g, cfg, logger)

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := router.Route(ctx, plan)
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}
	logger.Info().Str("outcome", result.Outcome.Kind.String()).Dur("elapsed", time.Since(start)).Msg("route finished")

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("route: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := planio.WritePlan(out, g, result.Plan); err != nil {
		return fmt.Errorf("route: %w", err)
	}

	if *metricsPath != "" {
		mf, err := os.Create(*metricsPath)
		if err != nil {
			return fmt.Errorf("route: %w", err)
		}
		defer mf.Close()

		var reporter metrics.Reporter
		for _, row := range result.Metrics {
			reporter.Append(row)
		}
		if err := reporter.WriteCSV(mf); err != nil {
			return fmt.Errorf("route: %w", err)
		}
	}

	if result.Outcome.Kind == negotiate.Failed {
		return fmt.Errorf("route: routing failed with %d conflicts", result.Outcome.Conflicts)
	}

	return nil
}
