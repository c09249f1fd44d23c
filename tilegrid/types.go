// Package tilegrid models a rectangular FPGA tile grid as a resource
// graph: each tile at (x, y) exposes a fixed set of named ports, and
// adjacent tiles' routing ports connect through directed switch-box
// wires. Grounded directly on the teacher's gridgraph package — a
// rectangular grid wrapped with tunable connectivity and a
// ToCoreGraph-style conversion — generalized from "cell value ≥
// threshold is land" to "port kind determines node classification".
package tilegrid

import (
	"errors"
)

// Sentinel errors.
var (
	// ErrEmptyLayout indicates a layout with zero width or height.
	ErrEmptyLayout = errors.New("tilegrid: width and height must both be positive")

	// ErrNoPorts indicates a layout with no port specs at all.
	ErrNoPorts = errors.New("tilegrid: at least one port spec is required")

	// ErrNonPositiveCost indicates a non-positive wire cost was configured.
	ErrNonPositiveCost = errors.New("tilegrid: wire cost must be positive")
)

// PortKind classifies a tile port the same way rgraph.Class classifies
// a resource-graph node: an Output port drives a signal (Source), an
// Input port terminates one (Sink), and a Routing port merely relays it
// (Interior).
type PortKind int

const (
	Routing PortKind = iota
	Output
	Input
)

// PortSpec names one port present on every tile, e.g. {"LA_O", Output}
// or {"LA_I0", Input}.
type PortSpec struct {
	Name string
	Kind PortKind
}

// Connectivity selects which neighboring tiles a routing port connects
// to, mirroring gridgraph.Connectivity.
type Connectivity int

const (
	// Conn4 connects each tile's routing ports to its N/E/S/W neighbors.
	Conn4 Connectivity = iota
	// Conn8 additionally connects the four diagonal neighbors.
	Conn8
)

// Options configures a Layout.
type Options struct {
	Conn      Connectivity
	WireCost  int64 // base cost of an inter-tile switch-box edge
	IntraCost int64 // base cost of an intra-tile output->routing->input edge
}

// Option is a functional option for NewLayout.
type Option func(*Options)

// WithConnectivity selects Conn4 (default) or Conn8 switch-box wiring.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithWireCost sets the base cost of inter-tile switch-box edges.
func WithWireCost(cost int64) Option {
	return func(o *Options) { o.WireCost = cost }
}

// WithIntraCost sets the base cost of intra-tile output/input edges.
func WithIntraCost(cost int64) Option {
	return func(o *Options) { o.IntraCost = cost }
}

func defaultOptions() Options {
	return Options{Conn: Conn4, WireCost: 1, IntraCost: 1}
}

// Layout is an immutable rectangular tile grid: Width x Height tiles,
// each exposing the same set of named ports.
type Layout struct {
	Width, Height int
	Ports         []PortSpec
	opts          Options
}

// NewLayout validates and constructs a Layout. Complexity: O(1); no
// graph is built until ToResourceGraph is called.
func NewLayout(width, height int, ports []PortSpec, opts ...Option) (*Layout, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyLayout
	}
	if len(ports) == 0 {
		return nil, ErrNoPorts
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.WireCost <= 0 || cfg.IntraCost <= 0 {
		return nil, ErrNonPositiveCost
	}

	return &Layout{Width: width, Height: height, Ports: append([]PortSpec(nil), ports...), opts: cfg}, nil
}

// neighborOffsets returns the (dx, dy) pairs this layout's connectivity
// wires between tiles, mirroring gridgraph's precomputed offset table.
func (l *Layout) neighborOffsets() [][2]int {
	offsets := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	if l.opts.Conn == Conn8 {
		offsets = append(offsets, [2]int{1, 1}, [2]int{1, -1}, [2]int{-1, 1}, [2]int{-1, -1})
	}

	return offsets
}

func (l *Layout) inBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}
