// File: layout.go
// Role: Layout -> rgraph.Graph conversion, the direct analogue of
// gridgraph.GridGraph.ToCoreGraph(): build every node first, then wire
// edges by walking the same neighbor-offset table used for bounds
// checks.
package tilegrid

import (
	"fmt"

	"github.com/wiregraph/gridroute/rgraph"
)

// Identifier returns the canonical node identifier for a tile port,
// the `X<int>Y<int>.<name>` textual form of spec.md §6.
func Identifier(x, y int, port string) string {
	return fmt.Sprintf("X%dY%d.%s", x, y, port)
}

func classFor(kind PortKind) rgraph.Class {
	switch kind {
	case Output:
		return rgraph.Source
	case Input:
		return rgraph.Sink
	default:
		return rgraph.Interior
	}
}

// ToResourceGraph builds an *rgraph.Graph from the layout: one node per
// (tile, port), intra-tile edges from every Output port to every
// Routing port and from every Routing port to every Input port, and
// inter-tile edges connecting each tile's Routing ports to its
// neighbors' Routing ports per the configured Connectivity.
//
// Complexity: O(W·H·P + W·H·d·R²) where P is ports-per-tile, d is the
// neighbor degree (4 or 8), and R is routing-ports-per-tile — R is
// small and fixed per layout, so this is effectively O(W·H·d).
func (l *Layout) ToResourceGraph() (*rgraph.Graph, error) {
	g := rgraph.NewGraph()

	ids := make(map[string]rgraph.NodeID, l.Width*l.Height*len(l.Ports))
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			for _, p := range l.Ports {
				id, err := g.AddNode(Identifier(x, y, p.Name), classFor(p.Kind))
				if err != nil {
					return nil, err
				}
				ids[Identifier(x, y, p.Name)] = id
			}
		}
	}

	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if err := l.wireIntraTile(g, ids, x, y); err != nil {
				return nil, err
			}
			if err := l.wireInterTile(g, ids, x, y); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func (l *Layout) wireIntraTile(g *rgraph.Graph, ids map[string]rgraph.NodeID, x, y int) error {
	var outputs, routings, inputs []string
	for _, p := range l.Ports {
		switch p.Kind {
		case Output:
			outputs = append(outputs, p.Name)
		case Routing:
			routings = append(routings, p.Name)
		case Input:
			inputs = append(inputs, p.Name)
		}
	}

	for _, o := range outputs {
		for _, r := range routings {
			if err := g.AddEdge(ids[Identifier(x, y, o)], ids[Identifier(x, y, r)], l.opts.IntraCost); err != nil {
				return err
			}
		}
	}
	for _, r := range routings {
		for _, i := range inputs {
			if err := g.AddEdge(ids[Identifier(x, y, r)], ids[Identifier(x, y, i)], l.opts.IntraCost); err != nil {
				return err
			}
		}
	}

	return nil
}

func (l *Layout) wireInterTile(g *rgraph.Graph, ids map[string]rgraph.NodeID, x, y int) error {
	for _, d := range l.neighborOffsets() {
		nx, ny := x+d[0], y+d[1]
		if !l.inBounds(nx, ny) {
			continue
		}

		for _, p := range l.Ports {
			if p.Kind != Routing {
				continue
			}

			from := ids[Identifier(x, y, p.Name)]
			to := ids[Identifier(nx, ny, p.Name)]
			if err := g.AddEdge(from, to, l.opts.WireCost); err != nil {
				return err
			}
		}
	}

	return nil
}
