// File: grid.go
// Role: Grid(w, h, opts...), a deterministic synthetic tile-grid
// constructor. Grounded on builder.RandomSparse's shape (validate early,
// build deterministically, no RNG required for the topology itself: a
// tile grid's adjacency is fixed by its dimensions, not sampled).
package testgen

import (
	"fmt"

	"github.com/wiregraph/gridroute/rgraph"
	"github.com/wiregraph/gridroute/tilegrid"
)

// Grid builds a width x height tile grid where every tile exposes one
// Output port ("O"), GridOptions.Inputs Input ports ("I0", "I1", ...),
// and one Routing port ("WIRE"), connected Conn4. Complexity: O(w*h).
func Grid(width, height int, opts ...GridOption) (*rgraph.Graph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrTooSmall
	}

	cfg := defaultGridOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	ports := []tilegrid.PortSpec{{Name: "O", Kind: tilegrid.Output}}
	for i := 0; i < cfg.Inputs; i++ {
		ports = append(ports, tilegrid.PortSpec{Name: fmt.Sprintf("I%d", i), Kind: tilegrid.Input})
	}
	ports = append(ports, tilegrid.PortSpec{Name: "WIRE", Kind: tilegrid.Routing})

	layout, err := tilegrid.NewLayout(width, height, ports, tilegrid.WithWireCost(cfg.WireCost))
	if err != nil {
		return nil, fmt.Errorf("testgen: %w", err)
	}

	g, err := layout.ToResourceGraph()
	if err != nil {
		return nil, fmt.Errorf("testgen: %w", err)
	}

	return g, nil
}
