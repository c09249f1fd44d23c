package testgen_test

import (
	"testing"

	"github.com/wiregraph/gridroute/testgen"
)

func TestGrid_RejectsNonPositiveDimensions(t *testing.T) {
	if _, err := testgen.Grid(0, 4); err != testgen.ErrTooSmall {
		t.Fatalf("expected ErrTooSmall, got %v", err)
	}
}

func TestGrid_BuildsExpectedNodeCounts(t *testing.T) {
	g, err := testgen.Grid(2, 2, testgen.WithInputsPerTile(1))
	if err != nil {
		t.Fatal(err)
	}

	// 2x2 tiles, each with 1 Output + 1 Input + 1 Routing = 3 ports.
	want := 2 * 2 * 3
	if g.NodeCount() != want {
		t.Fatalf("NodeCount() = %d, want %d", g.NodeCount(), want)
	}
	if len(g.Sources()) != 4 {
		t.Fatalf("expected 4 source nodes, got %d", len(g.Sources()))
	}
	if len(g.Sinks()) != 4 {
		t.Fatalf("expected 4 sink nodes, got %d", len(g.Sinks()))
	}
}

func TestPlan_RejectsInsufficientSources(t *testing.T) {
	g, err := testgen.Grid(1, 1, testgen.WithInputsPerTile(1))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := testgen.Plan(g, 5, 1); err == nil {
		t.Fatal("expected an error requesting more signals than available sources")
	}
}

func TestPlan_DeterministicForFixedSeed(t *testing.T) {
	g, err := testgen.Grid(3, 3, testgen.WithInputsPerTile(2))
	if err != nil {
		t.Fatal(err)
	}

	p1, err := testgen.Plan(g, 3, 2, testgen.WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}
	p2, err := testgen.Plan(g, 3, 2, testgen.WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}

	if len(p1) != len(p2) {
		t.Fatalf("plan lengths differ: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i].Source != p2[i].Source {
			t.Fatalf("signal %d source differs across identical seeds", i)
		}
		for j := range p1[i].Sinks {
			if p1[i].Sinks[j] != p2[i].Sinks[j] {
				t.Fatalf("signal %d sink %d differs across identical seeds", i, j)
			}
		}
	}
}

func TestPlan_SinksAreDistinct(t *testing.T) {
	g, err := testgen.Grid(3, 3, testgen.WithInputsPerTile(3))
	if err != nil {
		t.Fatal(err)
	}

	plan, err := testgen.Plan(g, 2, 3, testgen.WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}

	for _, sig := range plan {
		seen := make(map[int]struct{}, len(sig.Sinks))
		for _, s := range sig.Sinks {
			if _, dup := seen[int(s)]; dup {
				t.Fatalf("signal %s has a duplicate sink", sig.Name)
			}
			seen[int(s)] = struct{}{}
		}
	}
}
