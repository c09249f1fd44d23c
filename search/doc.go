// File: doc.go
// Role: package-level overview and complexity notes for search.
//
// search generalizes the teacher's single-source Dijkstra runner
// (lvlath/dijkstra) along exactly one axis: the frontier may be seeded
// from several nodes at once, each starting at distance 0. A
// single-element seed set recovers ordinary single-source search; the
// treebuilder package's Approximate-Steiner strategy seeds from every
// node already in the partial tree, turning the whole tree into a
// single virtual super-source for the next sink (spec §9 "Multi-source
// frontier seeding").
//
// Complexity:
//
//   - Time: O((V+E) log V), identical to single-source Dijkstra; extra
//     seeds only change the heap's initial contents, not its asymptotic
//     behavior.
//   - Space: O(V+E), for the distance/predecessor maps and the
//     lazy-decrease-key heap.
//
// Termination:
//
//   - Default: exhaust the full reachable frontier.
//   - WithTargets: stop as soon as every named target has been popped
//     off the heap for the first time (a node's first pop is always its
//     final distance, since edge weights are non-negative).
//   - WithBudget: stop after settling a fixed number of nodes,
//     regardless of whether targets remain unsettled.
package search
