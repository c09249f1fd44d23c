// Package rgraph provides the routing resource graph used by the
// negotiate, search, and treebuilder packages.
//
// A Graph is built once from a parsed FPGA tile/switch-box description
// (see planio.ParseGraph) and then mutated in place, once per routing
// invocation, by the negotiated-congestion outer loop:
//
//   - topology (nodes, forward/reverse adjacency, classification) is
//     fixed at construction and never mutated afterwards;
//   - usage, historic cost, and present cost are mutated by AddUsage,
//     RecomputeHistoric, and read by EdgeWeight on every search
//     relaxation (see the search package).
//
// Node identifiers combine a tile coordinate with a symbolic name
// ("X1Y2.LA_O"); every node additionally receives a dense integer ID in
// [0, N) in insertion order, which is what every algorithm in this
// module actually operates on.
//
// Cost model (spec §4.1, §4.2):
//
//	w(u→v) = (BaseCost(u→v) + Historic(v)) · Present(v)
//	Present(v) = 1 + max(0, Usage(v)-1) · presentFactor   (read lazily)
//	Historic(v) += max(0, Usage(v)-1) · histFactor         (once per iteration)
//
// Errors:
//
//	ErrEmptyIdentifier, ErrDuplicateNode, ErrNodeNotFound,
//	ErrDuplicateEdge, ErrNonPositiveCost, ErrNegativeUsage
package rgraph
