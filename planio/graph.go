// File: graph.go
// Role: the textual graph-file parser (spec §6 "Graph input"). Line
// format, one record per line:
//
//	NODE <identifier> <SOURCE|SINK|INTERIOR>
//	EDGE <from-identifier> <to-identifier> <base-cost>
//
// Blank lines and lines starting with '#' are ignored. NODE lines must
// precede any EDGE line referencing their identifier.
package planio

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/wiregraph/gridroute/rgraph"
)

// ParseGraph reads a textual graph description and returns the
// resulting resource graph. Complexity: O(lines).
func ParseGraph(r io.Reader) (*rgraph.Graph, error) {
	g := rgraph.NewGraph()
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "NODE":
			if err := parseNodeLine(g, fields, lineNo); err != nil {
				return nil, err
			}
		case "EDGE":
			if err := parseEdgeLine(g, fields, lineNo); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: line %d", ErrMalformedLine, lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("planio: reading graph: %w", err)
	}

	return g, nil
}

func parseNodeLine(g *rgraph.Graph, fields []string, lineNo int) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: line %d", ErrMalformedLine, lineNo)
	}

	class, err := parseClass(fields[2])
	if err != nil {
		return fmt.Errorf("%w: line %d", err, lineNo)
	}

	if _, err := g.AddNode(fields[1], class); err != nil {
		return fmt.Errorf("planio: line %d: %w", lineNo, err)
	}

	return nil
}

func parseClass(s string) (rgraph.Class, error) {
	switch strings.ToUpper(s) {
	case "SOURCE":
		return rgraph.Source, nil
	case "SINK":
		return rgraph.Sink, nil
	case "INTERIOR":
		return rgraph.Interior, nil
	default:
		return rgraph.Interior, fmt.Errorf("%w: %q", ErrUnknownClass, s)
	}
}

// UnreachableSinkNames returns the textual identifiers of every
// sink-eligible node unreachable from any source node in g, sorted for
// deterministic output. The CLI's route subcommand uses this as a
// pre-flight warning: a signal naming one of these sinks is certain to
// fail with ErrUnroutable (spec §7 "UnreachableTarget").
func UnreachableSinkNames(g *rgraph.Graph) ([]string, error) {
	unreachable, err := g.UnreachableSinks(g.Sources())
	if err != nil {
		return nil, fmt.Errorf("planio: %w", err)
	}

	names := make([]string, 0, len(unreachable))
	for _, id := range unreachable {
		name, err := g.Identifier(id)
		if err != nil {
			return nil, fmt.Errorf("planio: %w", err)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// WriteGraph renders g back into the NODE/EDGE textual format ParseGraph
// reads, in node-index order followed by edges in the same order. The
// round trip `WriteGraph` → `ParseGraph` reproduces an equivalent graph
// (identifiers, classes, edges, and base costs all preserved; usage and
// historic cost are not, since the textual format carries only
// topology).
func WriteGraph(w io.Writer, g *rgraph.Graph) error {
	for x := 0; x < g.NodeCount(); x++ {
		id := rgraph.NodeID(x)

		name, err := g.Identifier(id)
		if err != nil {
			return fmt.Errorf("planio: %w", err)
		}
		class, err := g.Classify(id)
		if err != nil {
			return fmt.Errorf("planio: %w", err)
		}

		if _, err := fmt.Fprintf(w, "NODE %s %s\n", name, classString(class)); err != nil {
			return fmt.Errorf("planio: writing graph: %w", err)
		}
	}

	for x := 0; x < g.NodeCount(); x++ {
		id := rgraph.NodeID(x)

		fromName, err := g.Identifier(id)
		if err != nil {
			return fmt.Errorf("planio: %w", err)
		}

		edges, err := g.NeighborsForward(id)
		if err != nil {
			return fmt.Errorf("planio: %w", err)
		}

		for _, e := range edges {
			toName, err := g.Identifier(e.To)
			if err != nil {
				return fmt.Errorf("planio: %w", err)
			}
			if _, err := fmt.Fprintf(w, "EDGE %s %s %d\n", fromName, toName, e.BaseCost); err != nil {
				return fmt.Errorf("planio: writing graph: %w", err)
			}
		}
	}

	return nil
}

func classString(c rgraph.Class) string {
	switch c {
	case rgraph.Source:
		return "SOURCE"
	case rgraph.Sink:
		return "SINK"
	default:
		return "INTERIOR"
	}
}

func parseEdgeLine(g *rgraph.Graph, fields []string, lineNo int) error {
	if len(fields) != 4 {
		return fmt.Errorf("%w: line %d", ErrMalformedLine, lineNo)
	}

	from, ok := g.Lookup(fields[1])
	if !ok {
		return fmt.Errorf("%w: %q, line %d", ErrUnknownNode, fields[1], lineNo)
	}
	to, ok := g.Lookup(fields[2])
	if !ok {
		return fmt.Errorf("%w: %q, line %d", ErrUnknownNode, fields[2], lineNo)
	}

	cost, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrMalformedLine, lineNo, err)
	}

	if err := g.AddEdge(from, to, cost); err != nil {
		return fmt.Errorf("planio: line %d: %w", lineNo, err)
	}

	return nil
}
