// Package gridroute implements a negotiated-congestion ("PathFinder"
// style) global router for FPGA-like tile grids.
//
// The module is organized as a set of focused subpackages rather than
// one root package:
//
//	rgraph/     — the resource graph: nodes, directed edges, and the
//	              usage/historic/present cost-field state the router
//	              negotiates over
//	search/     — a multi-seed best-first shortest-path search
//	              (generalized Dijkstra) used to build per-sink paths
//	treebuilder/ — per-signal routing-tree construction strategies
//	              (IndependentPaths, ApproximateSteiner, SimpleSteiner)
//	negotiate/  — the rip-up/re-route outer loop that resolves
//	              over-capacity nodes by accumulating historic cost
//	metrics/    — the per-iteration metrics record and its CSV/JSON
//	              serialization
//	tilegrid/   — a rectangular FPGA tile-grid layout and its
//	              conversion into a resource graph
//	planio/     — the textual graph format and JSON routing-plan
//	              format this module reads and writes
//	testgen/    — a seeded synthetic grid/plan generator
//	httpapi/    — a minimal HTTP control surface over negotiate.Router
//	cmd/gridroute/ — the CLI: route, gen, and serve subcommands
package gridroute
