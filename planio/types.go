// Package planio implements the narrow external-collaborator contracts
// spec.md §6 describes and explicitly calls out as containing "no
// interesting engineering": reading a textual graph file into an
// rgraph.Graph, reading/writing a routing plan as JSON, and writing the
// secondary downstream edge-list format. Grounded on the teacher's
// converterts package contract (a narrow adapter package with one
// entry point per format) and builder's fail-fast validation style.
package planio

import "errors"

// Sentinel errors.
var (
	// ErrMalformedLine indicates a graph-file line that is neither a
	// recognized NODE nor EDGE record.
	ErrMalformedLine = errors.New("planio: malformed graph-file line")

	// ErrUnknownClass indicates a NODE record naming an unrecognized
	// classification.
	ErrUnknownClass = errors.New("planio: unknown node classification")

	// ErrUnknownNode indicates a plan or edge record referencing a node
	// identifier the graph does not contain (spec §7 InputError).
	ErrUnknownNode = errors.New("planio: unknown node identifier")
)
