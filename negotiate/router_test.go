package negotiate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/wiregraph/gridroute/negotiate"
	"github.com/wiregraph/gridroute/rgraph"
	"github.com/wiregraph/gridroute/treebuilder"
)

// RouterSuite exercises Router.Route against small, hand-built graphs
// with known contention patterns.
type RouterSuite struct {
	suite.Suite
}

// noContentionGraph builds two disjoint signals with no shared nodes.
func (s *RouterSuite) noContentionGraph() (*rgraph.Graph, []treebuilder.Signal) {
	g := rgraph.NewGraph()
	src1, _ := g.AddNode("SRC1", rgraph.Source)
	sinkA, _ := g.AddNode("A", rgraph.Sink)
	sinkB, _ := g.AddNode("B", rgraph.Sink)
	src2, _ := g.AddNode("SRC2", rgraph.Source)
	sinkC, _ := g.AddNode("C", rgraph.Sink)
	sinkD, _ := g.AddNode("D", rgraph.Sink)

	require.NoError(s.T(), g.AddEdge(src1, sinkA, 1))
	require.NoError(s.T(), g.AddEdge(src1, sinkB, 1))
	require.NoError(s.T(), g.AddEdge(src2, sinkC, 1))
	require.NoError(s.T(), g.AddEdge(src2, sinkD, 1))

	plan := []treebuilder.Signal{
		{Name: "sig1", Source: src1, Sinks: []rgraph.NodeID{sinkA, sinkB}},
		{Name: "sig2", Source: src2, Sinks: []rgraph.NodeID{sinkC, sinkD}},
	}

	return g, plan
}

func (s *RouterSuite) TestNoContentionSucceedsAtIterationZero() {
	g, plan := s.noContentionGraph()
	router := negotiate.NewRouter(g, negotiate.DefaultOptions(), zerolog.Nop())

	res, err := router.Route(context.Background(), plan)
	require.NoError(s.T(), err)
	require.Equal(s.T(), negotiate.Success, res.Outcome.Kind)
	require.Equal(s.T(), 0, res.Outcome.Iterations)
	require.Equal(s.T(), 0, res.Metrics[0].Conflicts)
}

// junctionGraph builds two signals whose only paths both cross node J.
func (s *RouterSuite) junctionGraph() (*rgraph.Graph, []treebuilder.Signal) {
	g := rgraph.NewGraph()
	src1, _ := g.AddNode("SRC1", rgraph.Source)
	src2, _ := g.AddNode("SRC2", rgraph.Source)
	junction, _ := g.AddNode("J", rgraph.Interior)
	sinkA, _ := g.AddNode("A", rgraph.Sink)
	sinkB, _ := g.AddNode("B", rgraph.Sink)

	require.NoError(s.T(), g.AddEdge(src1, junction, 1))
	require.NoError(s.T(), g.AddEdge(src2, junction, 1))
	require.NoError(s.T(), g.AddEdge(junction, sinkA, 1))
	require.NoError(s.T(), g.AddEdge(junction, sinkB, 1))
	// A detour around the junction: cheaper than the junction route once
	// the junction's historic cost has accumulated one penalty, more
	// expensive before that.
	detourNode, _ := g.AddNode("DETOUR", rgraph.Interior)
	require.NoError(s.T(), g.AddEdge(src2, detourNode, 1))
	require.NoError(s.T(), g.AddEdge(detourNode, sinkB, 2))

	plan := []treebuilder.Signal{
		{Name: "sig1", Source: src1, Sinks: []rgraph.NodeID{sinkA}},
		{Name: "sig2", Source: src2, Sinks: []rgraph.NodeID{sinkB}},
	}

	return g, plan
}

func (s *RouterSuite) TestContendedJunctionResolvesByIterationOne() {
	g, plan := s.junctionGraph()
	cfg := negotiate.DefaultOptions()
	cfg.HistFactor = 2.0
	router := negotiate.NewRouter(g, cfg, zerolog.Nop())

	res, err := router.Route(context.Background(), plan)
	require.NoError(s.T(), err)
	require.Equal(s.T(), negotiate.Success, res.Outcome.Kind)
	require.LessOrEqual(s.T(), res.Outcome.Iterations, 1)
}

func (s *RouterSuite) TestSourceEqualsSinkRejected() {
	g := rgraph.NewGraph()
	src, _ := g.AddNode("SRC", rgraph.Source)
	router := negotiate.NewRouter(g, negotiate.DefaultOptions(), zerolog.Nop())

	plan := []treebuilder.Signal{{Name: "bad", Source: src, Sinks: []rgraph.NodeID{src}}}
	_, err := router.Route(context.Background(), plan)
	require.True(s.T(), errors.Is(err, negotiate.ErrSourceIsSink))
}

func (s *RouterSuite) TestEmptySinksRejected() {
	g := rgraph.NewGraph()
	src, _ := g.AddNode("SRC", rgraph.Source)
	router := negotiate.NewRouter(g, negotiate.DefaultOptions(), zerolog.Nop())

	plan := []treebuilder.Signal{{Name: "bad", Source: src}}
	_, err := router.Route(context.Background(), plan)
	require.True(s.T(), errors.Is(err, negotiate.ErrEmptySinks))
}

func (s *RouterSuite) TestUnreachableSinkFailsAfterMaxIterations() {
	g := rgraph.NewGraph()
	src, _ := g.AddNode("SRC", rgraph.Source)
	sink, _ := g.AddNode("SINK", rgraph.Sink) // no edge at all
	cfg := negotiate.DefaultOptions()
	cfg.MaxIterations = 3
	router := negotiate.NewRouter(g, cfg, zerolog.Nop())

	plan := []treebuilder.Signal{{Name: "sig", Source: src, Sinks: []rgraph.NodeID{sink}}}
	res, err := router.Route(context.Background(), plan)
	require.NoError(s.T(), err)
	require.Equal(s.T(), negotiate.Failed, res.Outcome.Kind)
	require.Equal(s.T(), 3, len(res.Metrics))
	require.Equal(s.T(), 1, res.Metrics[len(res.Metrics)-1].UnroutedSignals)
}

func (s *RouterSuite) TestEmptyPlanSucceedsImmediately() {
	g := rgraph.NewGraph()
	router := negotiate.NewRouter(g, negotiate.DefaultOptions(), zerolog.Nop())

	res, err := router.Route(context.Background(), nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), negotiate.Success, res.Outcome.Kind)
	require.Equal(s.T(), 0, res.Outcome.Iterations)
	require.Len(s.T(), res.Metrics, 1)
}

func (s *RouterSuite) TestCancellationReturnsPartialState() {
	g, plan := s.noContentionGraph()
	router := negotiate.NewRouter(g, negotiate.DefaultOptions(), zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := router.Route(ctx, plan)
	require.NoError(s.T(), err)
	require.Equal(s.T(), negotiate.Cancelled, res.Outcome.Kind)
}

func (s *RouterSuite) TestDeterminism() {
	g1, plan1 := s.junctionGraph()
	g2, plan2 := s.junctionGraph()

	cfg := negotiate.DefaultOptions()
	r1 := negotiate.NewRouter(g1, cfg, zerolog.Nop())
	r2 := negotiate.NewRouter(g2, cfg, zerolog.Nop())

	res1, err := r1.Route(context.Background(), plan1)
	require.NoError(s.T(), err)
	res2, err := r2.Route(context.Background(), plan2)
	require.NoError(s.T(), err)

	require.Equal(s.T(), res1.Metrics, res2.Metrics)
	require.Equal(s.T(), res1.Outcome, res2.Outcome)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}
