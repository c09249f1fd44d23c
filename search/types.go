// Package search implements the single shortest-path primitive shared by
// every tree-construction strategy in the treebuilder package: a
// best-first search over an rgraph.Graph that can be seeded from one
// node (per-sink independent search) or many (the Steiner strategy's
// "existing tree as a virtual super-source" frontier, spec §9).
package search

import (
	"errors"

	"github.com/wiregraph/gridroute/rgraph"
)

// Sentinel errors for search configuration.
var (
	// ErrNoSeeds indicates Run was called with an empty seed set.
	ErrNoSeeds = errors.New("search: at least one seed node is required")

	// ErrNilGraph indicates a nil *rgraph.Graph was passed to Run.
	ErrNilGraph = errors.New("search: graph is nil")
)

// NoPredecessor is the sentinel predecessor value for a seed node:
// "π(v) = ⊥" in spec §4.2 terms. Nodes the search never settles have no
// entry in Prev at all.
const NoPredecessor rgraph.NodeID = -1

// Options configures a single Run call.
type Options struct {
	// Targets, if non-empty, makes the search stop as soon as every
	// target has been settled (extracted from the frontier with its
	// final distance) instead of exhausting the whole reachable set.
	// This is the "all_targets_settled" stopping condition of spec §4.2.
	Targets []rgraph.NodeID

	// Budget, if > 0, caps the number of nodes the search will settle
	// before giving up, returning a partial Result in which any
	// undiscovered target is simply absent from Dist/Prev. This is the
	// "budgeted" stopping condition of spec §4.2.
	Budget int

	// PresentFactor is the present_factor config knob (spec §4.4),
	// threaded through to rgraph.Graph.EdgeWeight on every relaxation.
	PresentFactor float64
}

// Option is a functional option for Run.
type Option func(*Options)

// WithTargets sets the target set that triggers early termination once
// all of them are settled.
func WithTargets(targets ...rgraph.NodeID) Option {
	return func(o *Options) { o.Targets = targets }
}

// WithBudget caps the number of nodes visited before the search aborts.
func WithBudget(budget int) Option {
	return func(o *Options) { o.Budget = budget }
}

// WithPresentFactor sets the present_factor used in edge-weight
// composition. Defaults to 1.0 if never set.
func WithPresentFactor(factor float64) Option {
	return func(o *Options) { o.PresentFactor = factor }
}

func defaultOptions() Options {
	return Options{PresentFactor: 1.0}
}

// Result is the outcome of one Run call: a distance map and predecessor
// map defined for every node the search settled (spec §4.2). Seed nodes
// have Prev[seed] == NoPredecessor.
type Result struct {
	Dist map[rgraph.NodeID]float64
	Prev map[rgraph.NodeID]rgraph.NodeID
}

// Settled reports whether id was settled (reached a final distance)
// during the search.
func (r *Result) Settled(id rgraph.NodeID) bool {
	_, ok := r.Dist[id]

	return ok
}

// Reconstruct walks the predecessor chain from target back to whichever
// seed discovered it, then reverses the walk so the returned sequence
// runs seed → ... → target (spec §4.2 "Path reconstruction"). Returns
// false if target was never settled.
func (r *Result) Reconstruct(target rgraph.NodeID) ([]rgraph.NodeID, bool) {
	if !r.Settled(target) {
		return nil, false
	}

	var path []rgraph.NodeID
	for cur := target; ; {
		path = append(path, cur)
		prev, ok := r.Prev[cur]
		if !ok || prev == NoPredecessor {
			break
		}
		cur = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
