// File: plan.go
// Role: the routing plan JSON record shape (spec §6 "Routing plan
// input/output"): `{signal, sinks, result}`, where result is null or a
// RoutingTree in its `{paths, nodes}` wire form.
package planio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wiregraph/gridroute/rgraph"
	"github.com/wiregraph/gridroute/treebuilder"
)

// wireTree is the JSON wire form of a RoutingTree.
type wireTree struct {
	Paths map[string][]string `json:"paths"`
	Nodes []string            `json:"nodes"`
}

// wireSignal is the JSON wire form of one plan record.
type wireSignal struct {
	Signal string    `json:"signal"`
	Sinks  []string  `json:"sinks"`
	Result *wireTree `json:"result"`
}

// ReadPlan decodes an ordered sequence of plan records against g,
// resolving every node identifier. A non-null `result` field is
// accepted but discarded: the core re-routes from scratch (spec §6
// "Reading a plan with non-null result fields is permitted").
func ReadPlan(r io.Reader, g *rgraph.Graph) ([]treebuilder.Signal, error) {
	var raw []wireSignal
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("planio: decode plan: %w", err)
	}

	out := make([]treebuilder.Signal, 0, len(raw))
	for _, rs := range raw {
		source, ok := g.Lookup(rs.Signal)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, rs.Signal)
		}

		sinks := make([]rgraph.NodeID, 0, len(rs.Sinks))
		for _, s := range rs.Sinks {
			id, ok := g.Lookup(s)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownNode, s)
			}
			sinks = append(sinks, id)
		}

		out = append(out, treebuilder.Signal{Name: rs.Signal, Source: source, Sinks: sinks})
	}

	return out, nil
}

// WritePlan encodes plan against g, one record per signal in plan
// order, with `result` populated from each signal's Result if set.
func WritePlan(w io.Writer, g *rgraph.Graph, plan []treebuilder.Signal) error {
	raw := make([]wireSignal, 0, len(plan))
	for _, sig := range plan {
		sinks := make([]string, 0, len(sig.Sinks))
		for _, s := range sig.Sinks {
			id, err := g.Identifier(s)
			if err != nil {
				return fmt.Errorf("planio: %w", err)
			}
			sinks = append(sinks, id)
		}

		name, err := g.Identifier(sig.Source)
		if err != nil {
			return fmt.Errorf("planio: %w", err)
		}

		var result *wireTree
		if sig.Result != nil {
			wt, err := toWireTree(g, sig.Result)
			if err != nil {
				return err
			}
			result = wt
		}

		raw = append(raw, wireSignal{Signal: name, Sinks: sinks, Result: result})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("planio: encode plan: %w", err)
	}

	return nil
}

func toWireTree(g *rgraph.Graph, tree *treebuilder.RoutingTree) (*wireTree, error) {
	wt := &wireTree{Paths: make(map[string][]string, len(tree.Paths)), Nodes: make([]string, 0, len(tree.Nodes))}

	for sink, path := range tree.Paths {
		sinkID, err := g.Identifier(sink)
		if err != nil {
			return nil, fmt.Errorf("planio: %w", err)
		}

		ids := make([]string, 0, len(path))
		for _, n := range path {
			id, err := g.Identifier(n)
			if err != nil {
				return nil, fmt.Errorf("planio: %w", err)
			}
			ids = append(ids, id)
		}
		wt.Paths[sinkID] = ids
	}

	for n := range tree.Nodes {
		id, err := g.Identifier(n)
		if err != nil {
			return nil, fmt.Errorf("planio: %w", err)
		}
		wt.Nodes = append(wt.Nodes, id)
	}

	return wt, nil
}
