// File: edgelist.go
// Role: the downstream edge-list format (spec.md:176), a secondary
// rendering derived post-hoc from a routed signal's `paths` — never from
// the full topology. One line per edge actually used by the tree, sorted
// and deduplicated:
//
//	X<x>Y<y>.<from>.<to>
//
// where `X<x>Y<y>.<from>` and the trailing `<to>` are each themselves
// node identifiers in the `X<int>Y<int>.<name>` textual form (spec.md:163);
// the two are simply concatenated with a "." separator, so an intra-tile
// edge reads e.g. "X1Y2.LA_O.X1Y2.WIRE" and an inter-tile edge reads
// "X1Y2.WIRE.X1Y3.WIRE".
package planio

import (
	"fmt"
	"io"
	"sort"

	"github.com/wiregraph/gridroute/rgraph"
	"github.com/wiregraph/gridroute/treebuilder"
)

// WriteEdgeList renders every edge used by tree's committed paths
// against g, as a sorted, deduplicated edge-list. Complexity: O(E log E)
// where E is the number of distinct edges across tree.Paths.
func WriteEdgeList(w io.Writer, g *rgraph.Graph, tree *treebuilder.RoutingTree) error {
	seen := make(map[string]struct{})
	lines := make([]string, 0)

	for _, path := range tree.Paths {
		for i := 0; i+1 < len(path); i++ {
			fromName, err := g.Identifier(path[i])
			if err != nil {
				return fmt.Errorf("planio: %w", err)
			}
			toName, err := g.Identifier(path[i+1])
			if err != nil {
				return fmt.Errorf("planio: %w", err)
			}

			line := fromName + "." + toName
			if _, dup := seen[line]; dup {
				continue
			}
			seen[line] = struct{}{}
			lines = append(lines, line)
		}
	}

	sort.Strings(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("planio: writing edge list: %w", err)
		}
	}

	return nil
}
