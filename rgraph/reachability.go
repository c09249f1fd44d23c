// File: reachability.go
// Role: a plain breadth-first reachability diagnostic, adapted from the
// teacher's bfs package (queue-of-(id,depth), visited set, parent links)
// but trimmed to the one thing this module needs: "which nodes can this
// source possibly reach", used by planio.UnreachableSinkNames to warn
// about sink-eligible nodes that no source can ever drive (spec §7
// UnreachableTarget is normally a per-iteration, per-signal concern, but
// a structurally-unreachable sink is worth flagging before routing).
package rgraph

// ReachableFrom returns the set of node IDs reachable from source by
// following forward edges, ignoring cost entirely (plain BFS). The
// source itself is included. Complexity: O(V+E).
func (g *Graph) ReachableFrom(source NodeID) (map[NodeID]struct{}, error) {
	g.muTopo.RLock()
	defer g.muTopo.RUnlock()

	if err := g.validID(source); err != nil {
		return nil, err
	}

	visited := make(map[NodeID]struct{}, len(g.names))
	queue := []NodeID{source}
	visited[source] = struct{}{}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, e := range g.forward[cur] {
			if _, seen := visited[e.To]; seen {
				continue
			}
			visited[e.To] = struct{}{}
			queue = append(queue, e.To)
		}
	}

	return visited, nil
}

// UnreachableSinks returns, among the sink-eligible nodes in the graph,
// those that are not reachable from any of the given sources. Intended
// as a one-time parse-time diagnostic, not a per-signal check: a signal
// lists the specific sources/sinks it cares about, and the negotiator
// discovers per-signal unreachability via search (spec §7).
func (g *Graph) UnreachableSinks(sources []NodeID) ([]NodeID, error) {
	reachable := make(map[NodeID]struct{})
	for _, s := range sources {
		r, err := g.ReachableFrom(s)
		if err != nil {
			return nil, err
		}
		for id := range r {
			reachable[id] = struct{}{}
		}
	}

	var unreachable []NodeID
	for _, id := range g.Sinks() {
		if _, ok := reachable[id]; !ok {
			unreachable = append(unreachable, id)
		}
	}

	return unreachable, nil
}
