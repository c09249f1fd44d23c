// File: search.go
// Role: the best-first runner itself, adapted from the teacher's
// dijkstra runner/process/relax shape (lvlath/dijkstra/dijkstra.go) but
// parameterized over a seed slice instead of a single source, and over
// an rgraph.Graph whose edge weights are read lazily (EdgeWeight) rather
// than fixed at construction time.
package search

import (
	"container/heap"

	"github.com/wiregraph/gridroute/rgraph"
)

// Run performs a best-first search over g starting from every node in
// seeds simultaneously, each at distance 0, and returns the settled
// distances and predecessors (spec §4.2). With a single seed this is
// ordinary Dijkstra; with several it treats the seed set as one merged
// super-source, which is how treebuilder grows a Steiner tree frontier
// (spec §9).
func Run(g *rgraph.Graph, seeds []rgraph.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[rgraph.NodeID]float64, g.NodeCount()),
		prev:    make(map[rgraph.NodeID]rgraph.NodeID, g.NodeCount()),
		settled: make(map[rgraph.NodeID]struct{}, g.NodeCount()),
	}

	r.init(seeds)
	if err := r.process(); err != nil {
		return nil, err
	}

	// Drop frontier nodes that were discovered but never settled, so
	// Dist/Prev hold final values only.
	for id := range r.dist {
		if _, ok := r.settled[id]; !ok {
			delete(r.dist, id)
			delete(r.prev, id)
		}
	}

	return &Result{Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state of a single Run call.
type runner struct {
	g       *rgraph.Graph
	options Options
	dist    map[rgraph.NodeID]float64
	prev    map[rgraph.NodeID]rgraph.NodeID
	settled map[rgraph.NodeID]struct{}
	pq      nodePQ
	nextSeq uint64
}

// push inserts item onto the heap, stamping it with the next sequence
// number so nodePQ.Less can break dist ties by insertion order (spec
// §4.2 "ties are broken by insertion order (deterministic given a
// stable priority queue)").
func (r *runner) push(id rgraph.NodeID, dist float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.nextSeq})
	r.nextSeq++
}

func (r *runner) init(seeds []rgraph.NodeID) {
	heap.Init(&r.pq)
	for _, s := range seeds {
		if _, ok := r.dist[s]; ok {
			continue // duplicate seed
		}
		r.dist[s] = 0
		r.prev[s] = NoPredecessor
		r.push(s, 0)
	}
}

// process is the core best-first loop: pop the nearest unsettled node,
// settle it, relax its forward edges, repeat until the heap is empty or
// a termination condition fires.
func (r *runner) process() error {
	targets := make(map[rgraph.NodeID]struct{}, len(r.options.Targets))
	for _, t := range r.options.Targets {
		targets[t] = struct{}{}
	}
	remaining := len(targets)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		if _, done := r.settled[u]; done {
			continue // stale lazy-decrease-key entry
		}
		r.settled[u] = struct{}{}

		if _, isTarget := targets[u]; isTarget {
			remaining--
			if remaining == 0 {
				return nil
			}
		}
		if r.options.Budget > 0 && len(r.settled) >= r.options.Budget {
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner) relax(u rgraph.NodeID) error {
	edges, err := r.g.NeighborsForward(u)
	if err != nil {
		return err
	}

	for _, e := range edges {
		if _, done := r.settled[e.To]; done {
			continue
		}

		w, err := r.g.EdgeWeight(e, r.options.PresentFactor)
		if err != nil {
			return err
		}

		cand := r.dist[u] + w
		if cur, ok := r.dist[e.To]; ok && cand >= cur {
			continue
		}

		r.dist[e.To] = cand
		r.prev[e.To] = u
		r.push(e.To, cand)
	}

	return nil
}

// nodeItem is one entry in the lazy-decrease-key priority queue. seq
// records push order so equal-distance items settle in the order they
// were discovered, not in whatever order an equal-priority heap happens
// to pick.
type nodeItem struct {
	id   rgraph.NodeID
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending distance, ties
// broken by ascending seq, mirroring the teacher's nodePQ
// (lvlath/dijkstra/dijkstra.go) plus the insertion-order tiebreaker spec
// §4.2 requires.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
