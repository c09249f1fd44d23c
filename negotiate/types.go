// Package negotiate implements the negotiated-congestion outer loop: a
// fixed-point iteration that rips up and re-routes every signal in a
// plan, letting historic cost accumulate across iterations until either
// no node is over capacity or the iteration budget is exhausted. Shaped
// after the teacher's flow package (FlowOptions, DefaultOptions,
// sentinel errors), since both are "configured iterative graph
// algorithm with a terminal outcome" packages.
package negotiate

import (
	"errors"
	"fmt"

	"github.com/wiregraph/gridroute/metrics"
	"github.com/wiregraph/gridroute/treebuilder"
)

// Sentinel errors.
var (
	// ErrEmptySinks rejects a signal with no sinks (spec §7 InputError).
	ErrEmptySinks = errors.New("negotiate: signal has empty sink set")

	// ErrSourceIsSink rejects a signal whose source is also one of its
	// own sinks (spec §7 InputError, §8 boundary behavior).
	ErrSourceIsSink = errors.New("negotiate: signal source equals one of its sinks")

	// ErrDuplicateSink rejects a signal listing the same sink twice.
	ErrDuplicateSink = errors.New("negotiate: signal lists a duplicate sink")

	// ErrUnknownSolver is returned when Config.Solver names no known
	// strategy.
	ErrUnknownSolver = errors.New("negotiate: unknown solver")

	// errInvariant wraps a bug, not a routing outcome (spec §7
	// InternalInvariantViolation): a usage update that would go negative
	// or a node ID the graph does not contain. Router.Route halts
	// immediately. Committed paths are not checked for contiguity.
	errInvariant = errors.New("negotiate: internal invariant violation")
)

// Solver names the tree-construction strategy a Router uses, mirroring
// the `solver` config enum of spec.md §6.
type Solver string

const (
	SolverIndependentPaths Solver = "independent_paths"
	SolverSteiner          Solver = "steiner"
	SolverSimpleSteiner    Solver = "simple_steiner"
)

func (s Solver) strategy() (treebuilder.Strategy, error) {
	switch s {
	case SolverIndependentPaths:
		return treebuilder.IndependentPaths{}, nil
	case SolverSteiner, "":
		return treebuilder.ApproximateSteiner{}, nil
	case SolverSimpleSteiner:
		return treebuilder.SimpleSteiner{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, string(s))
	}
}

// Config holds the outer loop's tuning knobs (spec §4.4, §6).
type Config struct {
	Solver        Solver
	HistFactor    float64
	PresentFactor float64
	MaxIterations int
}

// DefaultOptions returns the spec's documented defaults: Steiner solver,
// hist_factor=0.1, present_factor=1.0, max_iterations=2000.
func DefaultOptions() Config {
	return Config{
		Solver:        SolverSteiner,
		HistFactor:    0.1,
		PresentFactor: 1.0,
		MaxIterations: 2000,
	}
}

// OutcomeKind classifies how a Route invocation ended (spec §6
// `outcome ∈ { Success(iterations), Failed(conflicts), Cancelled }`).
type OutcomeKind int

const (
	Success OutcomeKind = iota
	Failed
	Cancelled
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "Success"
	case Failed:
		return "Failed"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Outcome is the terminal result of one Route invocation.
type Outcome struct {
	Kind       OutcomeKind
	Iterations int // 0-based index k of the iteration that succeeded, for Success
	Conflicts  int // conflicts(k) at termination, or the unrouted-signal count when conflicts(k) is 0, for Failed
}

// Result is everything Route returns: the plan with every signal's
// result field filled in, the per-iteration metrics rows, and the
// terminal outcome.
type Result struct {
	Plan    []treebuilder.Signal
	Metrics []metrics.Row
	Outcome Outcome
}
