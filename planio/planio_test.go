package planio_test

import (
	"bytes"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wiregraph/gridroute/planio"
	"github.com/wiregraph/gridroute/rgraph"
	"github.com/wiregraph/gridroute/treebuilder"
)

const sampleGraph = `
# simple fan-out
NODE SRC SOURCE
NODE HUB INTERIOR
NODE A SINK
NODE B SINK
EDGE SRC HUB 1
EDGE HUB A 1
EDGE HUB B 2
`

func TestParseGraph_BuildsExpectedTopology(t *testing.T) {
	g, err := planio.ParseGraph(strings.NewReader(sampleGraph))
	if err != nil {
		t.Fatal(err)
	}

	src, ok := g.Lookup("SRC")
	if !ok {
		t.Fatal("expected SRC to exist")
	}
	class, err := g.Classify(src)
	if err != nil || class != rgraph.Source {
		t.Fatalf("Classify(SRC) = %v, %v; want Source", class, err)
	}

	edges, err := g.NeighborsForward(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 1 {
		t.Fatalf("expected SRC to have 1 outgoing edge, got %d", len(edges))
	}
}

func TestParseGraph_MalformedLine(t *testing.T) {
	if _, err := planio.ParseGraph(strings.NewReader("GARBAGE 1 2 3")); !errors.Is(err, planio.ErrMalformedLine) {
		t.Fatalf("expected ErrMalformedLine, got %v", err)
	}
}

func TestParseGraph_UnknownClass(t *testing.T) {
	if _, err := planio.ParseGraph(strings.NewReader("NODE SRC WEIRD")); err == nil {
		t.Fatal("expected an error for an unknown classification")
	}
}

func TestParseGraph_EdgeBeforeNode(t *testing.T) {
	if _, err := planio.ParseGraph(strings.NewReader("EDGE A B 1")); err == nil {
		t.Fatal("expected an error for an edge referencing an undeclared node")
	}
}

func TestPlanRoundTrip(t *testing.T) {
	g, err := planio.ParseGraph(strings.NewReader(sampleGraph))
	if err != nil {
		t.Fatal(err)
	}

	src, _ := g.Lookup("SRC")
	a, _ := g.Lookup("A")
	b, _ := g.Lookup("B")
	hub, _ := g.Lookup("HUB")

	tree := treebuilder.NewRoutingTree(src)
	tree.Paths[a] = []rgraph.NodeID{src, hub, a}
	tree.Paths[b] = []rgraph.NodeID{src, hub, b}
	tree.Nodes[hub] = struct{}{}
	tree.Nodes[a] = struct{}{}
	tree.Nodes[b] = struct{}{}

	plan := []treebuilder.Signal{
		{Name: "SRC", Source: src, Sinks: []rgraph.NodeID{a, b}, Result: tree},
	}

	var buf bytes.Buffer
	if err := planio.WritePlan(&buf, g, plan); err != nil {
		t.Fatal(err)
	}

	roundTripped, err := planio.ReadPlan(&buf, g)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(plan[0].Source, roundTripped[0].Source); diff != "" {
		t.Errorf("source mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(plan[0].Sinks, roundTripped[0].Sinks); diff != "" {
		t.Errorf("sinks mismatch (-want +got):\n%s", diff)
	}
}

func TestReadPlan_UnknownNode(t *testing.T) {
	g, err := planio.ParseGraph(strings.NewReader(sampleGraph))
	if err != nil {
		t.Fatal(err)
	}

	_, err = planio.ReadPlan(strings.NewReader(`[{"signal":"NOPE","sinks":["A"]}]`), g)
	if err == nil {
		t.Fatal("expected an error for an unknown signal identifier")
	}
}

func TestWriteGraph_RoundTrips(t *testing.T) {
	g, err := planio.ParseGraph(strings.NewReader(sampleGraph))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := planio.WriteGraph(&buf, g); err != nil {
		t.Fatal(err)
	}

	g2, err := planio.ParseGraph(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if g2.NodeCount() != g.NodeCount() {
		t.Fatalf("NodeCount() after round trip = %d, want %d", g2.NodeCount(), g.NodeCount())
	}

	src, _ := g.Lookup("SRC")
	src2, ok := g2.Lookup("SRC")
	if !ok {
		t.Fatal("expected SRC to survive the round trip")
	}
	srcEdges, _ := g.NeighborsForward(src)
	src2Edges, _ := g2.NeighborsForward(src2)
	if len(srcEdges) != len(src2Edges) {
		t.Fatalf("SRC outgoing edge count changed across round trip: %d vs %d", len(srcEdges), len(src2Edges))
	}
}

func TestUnreachableSinkNames(t *testing.T) {
	const graphWithIsland = `
NODE SRC SOURCE
NODE A SINK
NODE ISLAND SINK
EDGE SRC A 1
`
	g, err := planio.ParseGraph(strings.NewReader(graphWithIsland))
	if err != nil {
		t.Fatal(err)
	}

	unreachable, err := planio.UnreachableSinkNames(g)
	if err != nil {
		t.Fatal(err)
	}
	if len(unreachable) != 1 || unreachable[0] != "ISLAND" {
		t.Fatalf("UnreachableSinkNames() = %v, want [ISLAND]", unreachable)
	}
}

func TestWriteEdgeList_SortedAndDeduplicated(t *testing.T) {
	g, err := planio.ParseGraph(strings.NewReader(sampleGraph))
	if err != nil {
		t.Fatal(err)
	}

	src, _ := g.Lookup("SRC")
	hub, _ := g.Lookup("HUB")
	a, _ := g.Lookup("A")
	b, _ := g.Lookup("B")

	// Both paths share the SRC->HUB edge: it must appear only once.
	tree := treebuilder.NewRoutingTree(src)
	tree.Paths[a] = []rgraph.NodeID{src, hub, a}
	tree.Paths[b] = []rgraph.NodeID{src, hub, b}

	var buf bytes.Buffer
	if err := planio.WriteEdgeList(&buf, g, tree); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 deduplicated edge-list lines, got %d: %v", len(lines), lines)
	}
	if !sort.StringsAreSorted(lines) {
		t.Fatalf("expected sorted edge list, got %v", lines)
	}

	want := []string{"SRC.HUB", "HUB.A", "HUB.B"}
	for _, w := range want {
		found := false
		for _, l := range lines {
			if l == w {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected edge-list to contain %q, got %v", w, lines)
		}
	}
}
