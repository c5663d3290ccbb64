package lagrangian_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/lagrangian"
)

// LagrangianSuite exercises SolveConstrained and
// FlowSatisfiesConstraints on a two-arc network where the
// unconstrained-optimal arc violates a side constraint that the
// alternate arc always satisfies.
type LagrangianSuite struct {
	suite.Suite
}

// buildConstrainedRoutes builds two parallel arcs from node 0 to node
// 1. Arc 0 is cheaper on the objective but carries a side metric that
// any positive flow on it violates; arc 1 is costlier on the
// objective but contributes nothing to the side metric, so the only
// side-constraint-satisfying flow routes all demand over arc 1.
func buildConstrainedRoutes(t *testing.T) (*core.Graph, []int64, []int64, lagrangian.Problem) {
	t.Helper()
	const dualBit = 2
	g, err := core.NewGraph(2, 1<<dualBit|2, dualBit)
	require.NoError(t, err)
	require.NoError(t, g.AddArc(0, 0, 1))
	require.NoError(t, g.AddArc(1, 0, 1))

	excess := []int64{3, -3}
	capacity := make([]int64, g.MaxArcs())
	capacity[0] = 3
	capacity[1] = 3

	objectiveCost := make([]int64, g.MaxArcs())
	objectiveCost[0] = 1
	objectiveCost[1] = 3
	objectiveCost[g.Dual(0)] = -1
	objectiveCost[g.Dual(1)] = -3
	objectiveCharge := make([]int64, g.MaxArcs())

	sideCost := make([]int64, g.MaxArcs())
	sideCost[0] = 100
	sideCost[1] = 0
	sideCost[g.Dual(0)] = -100
	sideCharge := make([]int64, g.MaxArcs())

	problem := lagrangian.Problem{
		Cost:   [][]int64{objectiveCost, sideCost},
		Charge: [][]int64{objectiveCharge, sideCharge},
		Bound:  []int64{50},
	}

	return g, excess, capacity, problem
}

func (s *LagrangianSuite) TestSolveConstrained_Validation() {
	g, excess, capacity, problem := buildConstrainedRoutes(s.T())
	opts := lagrangian.DefaultOptions()

	_, err := lagrangian.SolveConstrained(nil, excess, capacity, problem, opts)
	require.ErrorIs(s.T(), err, lagrangian.ErrGraphNil)

	_, err = lagrangian.SolveConstrained(g, excess, capacity[:1], problem, opts)
	require.ErrorIs(s.T(), err, lagrangian.ErrArrayLength)

	badBound := problem
	badBound.Bound = nil
	_, err = lagrangian.SolveConstrained(g, excess, capacity, badBound, opts)
	require.ErrorIs(s.T(), err, lagrangian.ErrBoundLength)
}

// TestSolveConstrained_RejectsViolatingArc checks that relaxation
// converges to the unique side-constraint-satisfying flow (all demand
// over arc 1), even though arc 0 is cheaper on the raw objective.
func (s *LagrangianSuite) TestSolveConstrained_RejectsViolatingArc() {
	g, excess, capacity, problem := buildConstrainedRoutes(s.T())

	solved, err := lagrangian.SolveConstrained(g, excess, capacity, problem, lagrangian.DefaultOptions())
	require.NoError(s.T(), err)
	require.True(s.T(), solved)

	require.Equal(s.T(), 1, lagrangian.FlowSatisfiesConstraints(g, capacity, problem))
	require.Equal(s.T(), int64(9), flow.FlowCostWithCharge(g, capacity, problem.Cost[0], problem.Charge[0]))
}

// TestSolveConstrained_AlreadySatisfiedShortCircuits checks that when
// the unconstrained-optimal flow already satisfies every side
// constraint, SolveConstrained returns it without running the
// multiplier loop.
func (s *LagrangianSuite) TestSolveConstrained_AlreadySatisfiedShortCircuits() {
	g, excess, capacity, problem := buildConstrainedRoutes(s.T())
	// Loosen the bound so the unconstrained-optimal (all of arc 0,
	// side metric 300) already satisfies it.
	problem.Bound = []int64{1000}

	solved, err := lagrangian.SolveConstrained(g, excess, capacity, problem, lagrangian.DefaultOptions())
	require.NoError(s.T(), err)
	require.True(s.T(), solved)

	require.Equal(s.T(), 1, lagrangian.FlowSatisfiesConstraints(g, capacity, problem))
	require.Equal(s.T(), int64(3), flow.FlowCostWithCharge(g, capacity, problem.Cost[0], problem.Charge[0]))
}

func (s *LagrangianSuite) TestSolveConstrained_InfeasibleObjectiveReturnsError() {
	g, _, capacity, problem := buildConstrainedRoutes(s.T())
	excess := []int64{10, -10} // exceeds the combined 6-unit capacity

	_, err := lagrangian.SolveConstrained(g, excess, capacity, problem, lagrangian.DefaultOptions())
	require.True(s.T(), errors.Is(err, lagrangian.ErrInfeasible))
}

func TestLagrangianSuite(t *testing.T) {
	suite.Run(t, new(LagrangianSuite))
}
