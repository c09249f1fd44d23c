// File: plan.go
// Role: Plan(g, nSignals, sinksPerSignal, opts...), a seeded random
// routing-plan sampler. Grounded on builder.RandomSparse's Bernoulli
// sampling loop, adapted from "sample edges" to "sample without
// replacement from the graph's Source/Sink pools": a seeded
// math/rand.Rand plus a Fisher-Yates-style partial shuffle drives
// deterministic, reproducible selection for a fixed seed.
package testgen

import (
	"fmt"
	"math/rand"

	"github.com/wiregraph/gridroute/rgraph"
	"github.com/wiregraph/gridroute/treebuilder"
)

// Plan samples nSignals distinct sources from g and, for each, a
// distinct set of sinksPerSignal sinks, naming every signal by its
// source's identifier. Complexity: O(nSignals * |sinks| + |sources|),
// since the sink pool is copied once per signal.
func Plan(g *rgraph.Graph, nSignals, sinksPerSignal int, opts ...PlanOption) ([]treebuilder.Signal, error) {
	if nSignals <= 0 {
		return nil, ErrTooFewSignals
	}
	if sinksPerSignal <= 0 {
		return nil, ErrTooFewSinks
	}

	sources := g.Sources()
	if len(sources) < nSignals {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrInsufficientSources, len(sources), nSignals)
	}

	sinks := g.Sinks()
	if len(sinks) < sinksPerSignal {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrInsufficientSinks, len(sinks), sinksPerSignal)
	}

	cfg := defaultPlanOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	chosenSources := samplePartial(rng, sources, nSignals)

	plan := make([]treebuilder.Signal, 0, nSignals)
	for _, src := range chosenSources {
		name, err := g.Identifier(src)
		if err != nil {
			return nil, fmt.Errorf("testgen: %w", err)
		}

		chosenSinks := samplePartial(rng, sinks, sinksPerSignal)
		plan = append(plan, treebuilder.Signal{Name: name, Source: src, Sinks: chosenSinks})
	}

	return plan, nil
}

// samplePartial returns k distinct elements of pool in random order, via
// a partial Fisher-Yates shuffle over a private copy (pool is never
// mutated).
func samplePartial(rng *rand.Rand, pool []rgraph.NodeID, k int) []rgraph.NodeID {
	work := append([]rgraph.NodeID(nil), pool...)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}

	return append([]rgraph.NodeID(nil), work[:k]...)
}
