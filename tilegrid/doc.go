// File: doc.go
// Role: package overview and complexity summary, matching the density
// of the teacher's gridgraph/doc.go.
//
// What:
//
//   - Layout wraps a rectangular tile grid with a fixed per-tile port
//     set and a switch-box Connectivity (Conn4 or Conn8).
//   - ToResourceGraph converts a Layout into an rgraph.Graph: Output
//     ports classify as Source, Input ports as Sink, Routing ports as
//     Interior, matching spec.md §3's node classification.
//
// Complexity: see ToResourceGraph's doc comment.
package tilegrid
