// Package treebuilder_test exercises all three strategies against small,
// hand-built graphs with known optimal trees.
package treebuilder_test

import (
	"testing"

	"github.com/wiregraph/gridroute/rgraph"
	"github.com/wiregraph/gridroute/treebuilder"
)

// fanOut builds:
//
//	source -> hub (cost 1)
//	hub -> sinkA (cost 1)
//	hub -> sinkB (cost 1)
//	source -> sinkC (cost 5)   // direct, expensive, the farthest trunk target
func fanOut(t *testing.T) (*rgraph.Graph, treebuilder.Signal) {
	t.Helper()

	g := rgraph.NewGraph()
	source, _ := g.AddNode("SRC", rgraph.Source)
	hub, _ := g.AddNode("HUB", rgraph.Interior)
	sinkA, _ := g.AddNode("A", rgraph.Sink)
	sinkB, _ := g.AddNode("B", rgraph.Sink)
	sinkC, _ := g.AddNode("C", rgraph.Sink)

	for _, e := range []struct {
		from, to rgraph.NodeID
		cost     int64
	}{
		{source, hub, 1},
		{hub, sinkA, 1},
		{hub, sinkB, 1},
		{source, sinkC, 5},
	} {
		if err := g.AddEdge(e.from, e.to, e.cost); err != nil {
			t.Fatal(err)
		}
	}

	return g, treebuilder.Signal{Name: "sig", Source: source, Sinks: []rgraph.NodeID{sinkA, sinkB, sinkC}}
}

func assertValidTree(t *testing.T, g *rgraph.Graph, sig treebuilder.Signal, tree *treebuilder.RoutingTree) {
	t.Helper()

	for _, sink := range sig.Sinks {
		path, ok := tree.Paths[sink]
		if !ok {
			t.Fatalf("no path recorded for sink %v", sink)
		}
		if len(path) == 0 || path[0] != sig.Source {
			t.Fatalf("path for %v does not start at source: %v", sink, path)
		}
		if path[len(path)-1] != sink {
			t.Fatalf("path for %v does not end at sink: %v", sink, path)
		}
		for i := 0; i+1 < len(path); i++ {
			edges, err := g.NeighborsForward(path[i])
			if err != nil {
				t.Fatal(err)
			}
			found := false
			for _, e := range edges {
				if e.To == path[i+1] {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("path for %v has non-edge %v->%v", sink, path[i], path[i+1])
			}
		}
	}
}

func TestIndependentPaths(t *testing.T) {
	g, sig := fanOut(t)

	tree, err := treebuilder.IndependentPaths{}.Build(g, sig, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	assertValidTree(t, g, sig, tree)
}

func TestApproximateSteiner_SharesHub(t *testing.T) {
	g, sig := fanOut(t)

	tree, err := treebuilder.ApproximateSteiner{}.Build(g, sig, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	assertValidTree(t, g, sig, tree)

	hub, _ := g.Lookup("HUB")
	if _, ok := tree.Nodes[hub]; !ok {
		t.Fatal("expected the Steiner tree to reuse the shared hub node")
	}
}

func TestSimpleSteiner(t *testing.T) {
	g, sig := fanOut(t)

	tree, err := treebuilder.SimpleSteiner{}.Build(g, sig, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	assertValidTree(t, g, sig, tree)
}

func TestBuild_NoSinks(t *testing.T) {
	g := rgraph.NewGraph()
	source, _ := g.AddNode("SRC", rgraph.Source)
	sig := treebuilder.Signal{Name: "sig", Source: source}

	for _, strategy := range []treebuilder.Strategy{
		treebuilder.IndependentPaths{},
		treebuilder.ApproximateSteiner{},
		treebuilder.SimpleSteiner{},
	} {
		if _, err := strategy.Build(g, sig, 1.0); err != treebuilder.ErrNoSinks {
			t.Fatalf("expected ErrNoSinks, got %v", err)
		}
	}
}

func TestBuild_UnreachableSink(t *testing.T) {
	g := rgraph.NewGraph()
	source, _ := g.AddNode("SRC", rgraph.Source)
	sink, _ := g.AddNode("SINK", rgraph.Sink) // no edge at all
	sig := treebuilder.Signal{Name: "sig", Source: source, Sinks: []rgraph.NodeID{sink}}

	for _, strategy := range []treebuilder.Strategy{
		treebuilder.IndependentPaths{},
		treebuilder.ApproximateSteiner{},
		treebuilder.SimpleSteiner{},
	} {
		if _, err := strategy.Build(g, sig, 1.0); err != treebuilder.ErrUnroutable {
			t.Fatalf("expected ErrUnroutable, got %v", err)
		}
	}
}
