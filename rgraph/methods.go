// File: methods.go
// Role: mutable per-node cost state — usage, present cost, historic cost
// — and the edge-weight composition used by the search package.
package rgraph

import "fmt"

// PresentFactor and HistFactor are passed in by negotiate.Router on every
// call; rgraph itself holds no congestion-tuning knobs, only the raw
// usage/historic counters (spec §4.4 assigns factors to the Router, not
// the graph).

// Usage returns the current usage count of a node: the number of
// distinct signals whose committed tree currently contains it.
func (g *Graph) Usage(id NodeID) (int, error) {
	g.muCost.RLock()
	defer g.muCost.RUnlock()

	if err := g.validID(id); err != nil {
		return 0, err
	}

	return g.cost[id].usage, nil
}

// AddUsage adjusts a node's usage by delta (±1), asserting the result
// never goes negative (spec §9: "maintain usage with a signed counter
// and assert ≥ 0 on every decrement").
func (g *Graph) AddUsage(id NodeID, delta int) error {
	g.muCost.Lock()
	defer g.muCost.Unlock()

	if err := g.validID(id); err != nil {
		return err
	}

	next := g.cost[id].usage + delta
	if next < 0 {
		return fmt.Errorf("%w: node %s usage would be %d", ErrNegativeUsage, g.names[id], next)
	}
	g.cost[id].usage = next

	return nil
}

// Historic returns the accumulated historic cost of a node.
func (g *Graph) Historic(id NodeID) (float64, error) {
	g.muCost.RLock()
	defer g.muCost.RUnlock()

	if err := g.validID(id); err != nil {
		return 0, err
	}

	return g.cost[id].historic, nil
}

// RecomputeHistoric folds this iteration's congestion into the historic
// cost of every node (spec §4.4 step 2):
//
//	historic(v) += max(0, usage(v)-1) · histFactor
//
// Called once per iteration by negotiate.Router, after every signal has
// been re-routed. historic never resets within a route invocation.
func (g *Graph) RecomputeHistoric(histFactor float64) {
	g.muCost.Lock()
	defer g.muCost.Unlock()

	for i := range g.cost {
		over := g.cost[i].usage - 1
		if over > 0 {
			g.cost[i].historic += float64(over) * histFactor
		}
	}
}

// Present returns the lazily-computed present cost of a node:
//
//	present(v) = 1 + max(0, usage(v)-1) · presentFactor
//
// Read on every search relaxation rather than precomputed, so two
// signals routed back-to-back within the same iteration see the
// congestion each creates for the other (spec §4.4 step 1b).
func (g *Graph) Present(id NodeID, presentFactor float64) (float64, error) {
	g.muCost.RLock()
	defer g.muCost.RUnlock()

	if err := g.validID(id); err != nil {
		return 0, err
	}

	over := g.cost[id].usage - 1
	if over < 0 {
		over = 0
	}

	return 1.0 + float64(over)*presentFactor, nil
}

// EdgeWeight composes the relaxation cost of traversing edge e whose
// destination is the node being relaxed into (spec §4.2):
//
//	w(u→v) = (b + historic(v)) · present(v)
func (g *Graph) EdgeWeight(e Edge, presentFactor float64) (float64, error) {
	g.muCost.RLock()
	hist := g.cost[e.To].historic
	usage := g.cost[e.To].usage
	g.muCost.RUnlock()

	if err := g.validID(e.To); err != nil {
		return 0, err
	}

	over := usage - 1
	if over < 0 {
		over = 0
	}
	present := 1.0 + float64(over)*presentFactor

	return (float64(e.BaseCost) + hist) * present, nil
}

// ClearUsage resets every node's usage counter and historic cost to
// zero. Used between independent route invocations that reuse a parsed
// graph (spec §5: "usage/historic/present state is per-invocation");
// present resets along with usage since Present is derived from usage.
func (g *Graph) ClearUsage() {
	g.muCost.Lock()
	defer g.muCost.Unlock()

	for i := range g.cost {
		g.cost[i].usage = 0
		g.cost[i].historic = 0
	}
}
