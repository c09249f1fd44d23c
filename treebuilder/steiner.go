// File: steiner.go
// Role: the Approximate-Steiner and Simple-Steiner strategies (spec
// §4.3.2), grounded on the teacher's prim_kruskal/prim.go "grow a tree
// from a frontier via a heap" shape — here the frontier is search's
// multi-source Run instead of a single-source Prim heap, so each growth
// step is one call into the search package rather than hand-rolled heap
// bookkeeping.
package treebuilder

import (
	"sort"

	"github.com/wiregraph/gridroute/rgraph"
	"github.com/wiregraph/gridroute/search"
)

// ApproximateSteiner grows a shared subgraph: it seeds an initial trunk
// (the farthest sink from the source), then attaches every remaining
// sink to whichever tree node is currently cheapest to reach, by
// treating the whole tree as a multi-source frontier (spec §4.3.2).
type ApproximateSteiner struct{}

func (ApproximateSteiner) Build(g *rgraph.Graph, sig Signal, presentFactor float64) (*RoutingTree, error) {
	return buildSteiner(g, sig, presentFactor, true)
}

// SimpleSteiner is the documented "faster but worse" variant (spec
// §4.3.2): at each growth step it searches from a single tree node
// instead of the whole tree — the source for the first sink after the
// trunk, then the tree node at which the previous sink's path attached —
// trading tree quality for a cheaper per-step search. It does not look
// for the tree node nearest to the next sink.
type SimpleSteiner struct{}

func (SimpleSteiner) Build(g *rgraph.Graph, sig Signal, presentFactor float64) (*RoutingTree, error) {
	return buildSteiner(g, sig, presentFactor, false)
}

// buildSteiner implements both variants; wholeTree selects whether each
// growth step seeds from every tree node (Approximate-Steiner) or from
// only the previous step's attach point (Simple-Steiner).
func buildSteiner(g *rgraph.Graph, sig Signal, presentFactor float64, wholeTree bool) (*RoutingTree, error) {
	if len(sig.Sinks) == 0 {
		return nil, ErrNoSinks
	}

	// Step 1: trunk target is the sink farthest from the source.
	trunkRes, err := search.Run(g, []rgraph.NodeID{sig.Source},
		search.WithTargets(sig.Sinks...),
		search.WithPresentFactor(presentFactor),
	)
	if err != nil {
		return nil, err
	}

	trunk, ok := farthestSettled(trunkRes, sig.Sinks)
	if !ok {
		return nil, ErrUnroutable
	}

	trunkPath, ok := trunkRes.Reconstruct(trunk)
	if !ok {
		return nil, ErrUnroutable
	}

	tree := NewRoutingTree(sig.Source)
	tree.addPath(trunk, trunkPath)
	// anchor is the single attach point Simple-Steiner searches from: the
	// tree-internal node where the most recent path split off, never a
	// sink leaf (a sink need not have any outgoing edges of its own).
	anchor := sig.Source

	// Step 2: the remaining sinks, input order, trunk excluded.
	for _, sink := range sig.Sinks {
		if sink == trunk {
			continue
		}

		seeds := []rgraph.NodeID{anchor}
		if wholeTree {
			seeds = treeSeeds(tree)
		}

		res, err := search.Run(g, seeds,
			search.WithTargets(sink),
			search.WithPresentFactor(presentFactor),
		)
		if err != nil {
			return nil, err
		}

		spliced, attach, ok := splicePath(tree, res, sink)
		if !ok {
			return nil, ErrUnroutable
		}
		tree.addPath(sink, spliced)
		anchor = attach
	}

	return tree, nil
}

// farthestSettled returns the settled sink with the greatest distance,
// breaking ties by input order.
func farthestSettled(res *search.Result, sinks []rgraph.NodeID) (rgraph.NodeID, bool) {
	var best rgraph.NodeID
	bestDist := -1.0
	found := false

	for _, s := range sinks {
		d, ok := res.Dist[s]
		if !ok {
			continue
		}
		if !found || d > bestDist {
			best, bestDist, found = s, d, true
		}
	}

	return best, found
}

// treeSeeds returns the tree's node set as a slice in deterministic
// ascending order, suitable as a multi-source seed list.
func treeSeeds(t *RoutingTree) []rgraph.NodeID {
	out := make([]rgraph.NodeID, 0, len(t.Nodes))
	for n := range t.Nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// splicePath walks the predecessor chain from sink back to the first
// node already in the tree, then prefixes that segment with the
// existing source-to-that-node path, producing a contiguous
// source-to-sink walk (spec §4.3.2 step 4).
func splicePath(t *RoutingTree, res *search.Result, sink rgraph.NodeID) ([]rgraph.NodeID, rgraph.NodeID, bool) {
	if !res.Settled(sink) {
		return nil, 0, false
	}

	var segment []rgraph.NodeID
	cur := sink
	for {
		segment = append(segment, cur)
		if _, inTree := t.Nodes[cur]; inTree {
			break
		}
		prev, ok := res.Prev[cur]
		if !ok || prev == search.NoPredecessor {
			return nil, 0, false
		}
		cur = prev
	}
	for i, j := 0, len(segment)-1; i < j; i, j = i+1, j-1 {
		segment[i], segment[j] = segment[j], segment[i]
	}

	attach := segment[0]
	prefix := pathToTreeNode(t, attach)

	return append(prefix, segment[1:]...), attach, true
}

// pathToTreeNode returns the recorded source-to-attach walk already
// present in the tree: either attach is the source itself, or it lies on
// some existing sink's path, in which case that path's prefix up to and
// including attach is the answer.
func pathToTreeNode(t *RoutingTree, attach rgraph.NodeID) []rgraph.NodeID {
	for _, path := range t.Paths {
		for i, n := range path {
			if n == attach {
				prefix := make([]rgraph.NodeID, i+1)
				copy(prefix, path[:i+1])

				return prefix
			}
		}
	}

	// attach is the root with no recorded path yet (the very first
	// trunk splice, or a source with zero sinks attached so far).
	return []rgraph.NodeID{attach}
}
