// File: router.go
// Role: the Router itself — validation, the per-iteration rip-up/
// re-route loop, historic-cost accumulation, and termination. Grounded
// on the teacher's flow package shape (Options-configured iterative
// graph algorithm returning a terminal result), with the injected
// zerolog.Logger idiom of optakt/flow-dps's mapper.Mapper.
package negotiate

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wiregraph/gridroute/metrics"
	"github.com/wiregraph/gridroute/rgraph"
	"github.com/wiregraph/gridroute/treebuilder"
)

// Router runs the negotiated-congestion outer loop against one
// rgraph.Graph. A Router owns no state across Route calls beyond its
// Config and Logger: all mutable routing state (usage, historic,
// present, committed trees) lives in the graph and in Route's local
// variables.
type Router struct {
	Graph  *rgraph.Graph
	Config Config
	Logger zerolog.Logger
}

// NewRouter constructs a Router. If cfg.MaxIterations is zero, it is
// replaced with DefaultOptions().MaxIterations (a zero-value Config is
// not a valid configuration, mirroring the teacher's DefaultOptions
// idiom for FlowOptions).
func NewRouter(g *rgraph.Graph, cfg Config, logger zerolog.Logger) *Router {
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = DefaultOptions().MaxIterations
	}
	if cfg.PresentFactor == 0 {
		cfg.PresentFactor = DefaultOptions().PresentFactor
	}

	return &Router{Graph: g, Config: cfg, Logger: logger}
}

// Route runs the outer loop over plan (spec §4.4). The returned Result
// always carries plan's signals with Result populated for whichever
// iteration was last attempted for each; on Cancelled it carries
// whatever partial state existed at the moment of cancellation.
func (r *Router) Route(ctx context.Context, plan []treebuilder.Signal) (Result, error) {
	if err := r.validate(plan); err != nil {
		return Result{}, err
	}

	strategy, err := r.Config.Solver.strategy()
	if err != nil {
		return Result{}, err
	}

	trees := make([]*treebuilder.RoutingTree, len(plan))
	result := Result{Plan: plan}

	for k := 0; k < r.Config.MaxIterations; k++ {
		if err := ctx.Err(); err != nil {
			result.Outcome = Outcome{Kind: Cancelled}
			result.Plan = applyTrees(plan, trees)
			return result, nil
		}

		unrouted := 0
		for i, sig := range plan {
			if err := ctx.Err(); err != nil {
				result.Outcome = Outcome{Kind: Cancelled}
				result.Plan = applyTrees(plan, trees)
				return result, nil
			}

			if trees[i] != nil {
				if err := r.release(trees[i]); err != nil {
					return Result{}, err
				}
				trees[i] = nil
			}

			tree, err := strategy.Build(r.Graph, sig, r.Config.PresentFactor)
			if err != nil {
				unrouted++
				r.Logger.Debug().Str("signal", sig.Name).Int("iteration", k).Msg("signal unroutable this iteration")
				continue
			}

			if err := r.commit(tree); err != nil {
				return Result{}, err
			}
			trees[i] = tree
		}

		conflicts, err := r.conflicts()
		if err != nil {
			return Result{}, err
		}

		row := r.buildMetrics(k, conflicts, unrouted, trees)
		result.Metrics = append(result.Metrics, row)
		r.Logger.Info().Int("iteration", k).Int("conflicts", conflicts).Int("unrouted", unrouted).Msg("iteration complete")

		r.Graph.RecomputeHistoric(r.Config.HistFactor)

		// An iteration with zero over-capacity nodes but an unrouted
		// signal is still not success: the plan is incomplete (spec
		// §4.4 "this is also a 'conflict-like' condition"). Report it
		// under Conflicts so Failed(c) still implies c > 0.
		effective := conflicts
		if effective == 0 {
			effective = unrouted
		}

		if effective == 0 {
			result.Outcome = Outcome{Kind: Success, Iterations: k}
			result.Plan = applyTrees(plan, trees)

			return result, nil
		}
		if k == r.Config.MaxIterations-1 {
			result.Outcome = Outcome{Kind: Failed, Conflicts: effective}
			result.Plan = applyTrees(plan, trees)

			return result, nil
		}
	}

	// Unreachable: the loop above always returns by the last iteration.
	return result, nil
}

// release decrements usage for every node of a previously committed
// tree, once each, before that signal is re-routed (spec §4.3.3).
func (r *Router) release(tree *treebuilder.RoutingTree) error {
	for node := range tree.Nodes {
		if err := r.Graph.AddUsage(node, -1); err != nil {
			return fmt.Errorf("%w: %v", errInvariant, err)
		}
	}

	return nil
}

// commit increments usage for every node of a freshly built tree, once
// each (spec §4.3.3).
func (r *Router) commit(tree *treebuilder.RoutingTree) error {
	for node := range tree.Nodes {
		if err := r.Graph.AddUsage(node, 1); err != nil {
			return fmt.Errorf("%w: %v", errInvariant, err)
		}
	}

	return nil
}

// conflicts counts nodes with usage > 1 across the whole graph (spec
// §4.4 "conflicts(k)").
func (r *Router) conflicts() (int, error) {
	count := 0
	for id := rgraph.NodeID(0); int(id) < r.Graph.NodeCount(); id++ {
		usage, err := r.Graph.Usage(id)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", errInvariant, err)
		}
		if usage > 1 {
			count++
		}
	}

	return count, nil
}

// buildMetrics assembles one iteration's metrics row from the trees
// committed during that iteration (spec §4.5).
func (r *Router) buildMetrics(iteration, conflicts, unrouted int, trees []*treebuilder.RoutingTree) metrics.Row {
	row := metrics.Row{Iteration: iteration, Conflicts: conflicts, UnroutedSignals: unrouted}

	var wireReuseSum float64
	var routedCount int

	for _, tree := range trees {
		if tree == nil {
			continue
		}
		routedCount++
		row.TotalWireUse += len(tree.Nodes)

		var usageSum int
		for node := range tree.Nodes {
			usage, err := r.Graph.Usage(node)
			if err != nil {
				continue
			}
			usageSum += usage
		}
		if len(tree.Nodes) > 0 {
			wireReuseSum += float64(usageSum) / float64(len(tree.Nodes))
		}

		for _, path := range tree.Paths {
			if len(path) > row.LongestPathCost {
				row.LongestPathCost = len(path)
			}
		}
	}

	if routedCount > 0 {
		row.WireReuse = wireReuseSum / float64(routedCount)
	}

	return row
}

// applyTrees returns a copy of plan with each signal's Result set to
// its committed tree for the terminal iteration (nil for any signal
// that never routed successfully).
func applyTrees(plan []treebuilder.Signal, trees []*treebuilder.RoutingTree) []treebuilder.Signal {
	out := make([]treebuilder.Signal, len(plan))
	copy(out, plan)
	for i := range out {
		out[i].Result = trees[i]
	}

	return out
}

// validate enforces spec §7 InputError checks before iteration 0.
func (r *Router) validate(plan []treebuilder.Signal) error {
	for _, sig := range plan {
		if len(sig.Sinks) == 0 {
			return fmt.Errorf("%w: signal %q", ErrEmptySinks, sig.Name)
		}

		seen := make(map[rgraph.NodeID]struct{}, len(sig.Sinks))
		for _, sink := range sig.Sinks {
			if sink == sig.Source {
				return fmt.Errorf("%w: signal %q, sink %v", ErrSourceIsSink, sig.Name, sink)
			}
			if _, dup := seen[sink]; dup {
				return fmt.Errorf("%w: signal %q, sink %v", ErrDuplicateSink, sig.Name, sink)
			}
			seen[sink] = struct{}{}

			if _, err := r.Graph.Identifier(sink); err != nil {
				return fmt.Errorf("negotiate: %w", err)
			}
		}

		if _, err := r.Graph.Identifier(sig.Source); err != nil {
			return fmt.Errorf("negotiate: %w", err)
		}
	}

	return nil
}
