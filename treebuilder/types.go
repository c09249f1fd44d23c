// Package treebuilder produces, for one signal, a routing tree
// connecting its source to every one of its sinks. Three interchangeable
// strategies implement the same Strategy interface so negotiate.Router
// depends only on that interface, never on a concrete strategy (the
// teacher's builder.Constructor / BuildGraph split, adapted: here the
// "constructor" builds a tree instead of a whole graph).
package treebuilder

import (
	"errors"

	"github.com/wiregraph/gridroute/rgraph"
)

// Sentinel errors.
var (
	// ErrNoSinks indicates a signal with an empty sink list.
	ErrNoSinks = errors.New("treebuilder: signal has no sinks")

	// ErrUnroutable indicates the strategy could not connect every sink
	// to the source under the current cost field: at least one sink is
	// unreachable from the source (or from the tree-so-far).
	ErrUnroutable = errors.New("treebuilder: signal is unroutable on current cost field")
)

// Signal is one entry of a routing plan: a source and the ordered set of
// sinks it must reach (spec §3 "Signal").
type Signal struct {
	Name   string
	Source rgraph.NodeID
	Sinks  []rgraph.NodeID
	Result *RoutingTree
}

// RoutingTree is the result of building a signal's tree: the set of
// nodes it occupies, plus one materialized path per sink, each path
// running source → ... → sink over forward edges (spec §3 "RoutingTree").
type RoutingTree struct {
	Nodes map[rgraph.NodeID]struct{}
	Paths map[rgraph.NodeID][]rgraph.NodeID
}

// NewRoutingTree returns an empty tree containing only root.
func NewRoutingTree(root rgraph.NodeID) *RoutingTree {
	return &RoutingTree{
		Nodes: map[rgraph.NodeID]struct{}{root: {}},
		Paths: make(map[rgraph.NodeID][]rgraph.NodeID),
	}
}

// addPath folds path into the tree: every node on it joins Nodes, and
// Paths[sink] is recorded verbatim. path must start at the tree's root
// or at a node already in the tree.
func (t *RoutingTree) addPath(sink rgraph.NodeID, path []rgraph.NodeID) {
	for _, n := range path {
		t.Nodes[n] = struct{}{}
	}
	t.Paths[sink] = path
}

// Strategy builds a RoutingTree for one signal against one resource
// graph under its current cost field. Implementations must not mutate
// g's usage counters: committing a tree (incrementing usage along its
// nodes) is the caller's responsibility (spec §4.3.3 "Commit Protocol").
type Strategy interface {
	Build(g *rgraph.Graph, sig Signal, presentFactor float64) (*RoutingTree, error)
}
