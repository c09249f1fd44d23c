// File: independent.go
// Role: the Independent-Paths strategy (spec §4.3.1) — search once per
// sink from the signal's source and union the results. Grounded
// directly on the teacher's single-source dijkstra runner, called once
// per target rather than generalized at the call site.
package treebuilder

import (
	"github.com/wiregraph/gridroute/rgraph"
	"github.com/wiregraph/gridroute/search"
)

// IndependentPaths routes each sink with its own unconstrained
// shortest-path search from the source, sharing nothing beyond what the
// cost field naturally produces.
type IndependentPaths struct{}

func (IndependentPaths) Build(g *rgraph.Graph, sig Signal, presentFactor float64) (*RoutingTree, error) {
	if len(sig.Sinks) == 0 {
		return nil, ErrNoSinks
	}

	tree := NewRoutingTree(sig.Source)

	for _, sink := range sig.Sinks {
		res, err := search.Run(g, []rgraph.NodeID{sig.Source},
			search.WithTargets(sink),
			search.WithPresentFactor(presentFactor),
		)
		if err != nil {
			return nil, err
		}

		path, ok := res.Reconstruct(sink)
		if !ok {
			return nil, ErrUnroutable
		}
		tree.addPath(sink, path)
	}

	return tree, nil
}
