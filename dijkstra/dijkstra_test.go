package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/dijkstra"
)

// buildCostedDAG builds the same 9-arc DAG as the bfs package's seed
// scenario, with costs {7,9,14,10,15,11,2,6,9} on the same arc ids.
func buildCostedDAG(t *testing.T) (*core.Graph, []int64, []int64) {
	t.Helper()
	const dualBit = 4
	g, err := core.NewGraph(6, 1<<dualBit|9, dualBit)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	edges := [][2]core.NodeId{
		{0, 1}, {0, 2}, {0, 5},
		{1, 2}, {1, 3},
		{2, 3}, {2, 5},
		{3, 4},
		{4, 5},
	}
	costs := []int64{7, 9, 14, 10, 15, 11, 2, 6, 9}
	capacity := make([]int64, g.MaxArcs())
	cost := make([]int64, g.MaxArcs())
	for i, e := range edges {
		if err := g.AddArc(core.ArcId(i), e[0], e[1]); err != nil {
			t.Fatalf("AddArc(%d): %v", i, err)
		}
		capacity[i] = 1
		cost[i] = costs[i]
		cost[g.Dual(core.ArcId(i))] = -costs[i]
	}

	return g, capacity, cost
}

// --- 1. Validation Tests ---

func TestDijkstraPath_Validation(t *testing.T) {
	g, capacity, cost := buildCostedDAG(t)
	potential := make([]int64, g.MaxNodes())
	prev := make([]core.ArcId, g.MaxNodes())
	distance := make([]int64, g.MaxNodes())

	if _, err := dijkstra.DijkstraPath(nil, 0, 1, false, capacity, 1, cost, potential, prev, distance); !errors.Is(err, dijkstra.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := dijkstra.DijkstraPath(g, 99, 1, false, capacity, 1, cost, potential, prev, distance); !errors.Is(err, dijkstra.ErrSourceOutOfRange) {
		t.Errorf("bad source: want ErrSourceOutOfRange, got %v", err)
	}
	if _, err := dijkstra.DijkstraPath(g, 0, 99, false, capacity, 1, cost, potential, prev, distance); !errors.Is(err, dijkstra.ErrDestOutOfRange) {
		t.Errorf("bad dest: want ErrDestOutOfRange, got %v", err)
	}
	if _, err := dijkstra.DijkstraPath(g, 0, 1, false, capacity, 0, cost, potential, prev, distance); !errors.Is(err, dijkstra.ErrThresholdNonPositive) {
		t.Errorf("zero threshold: want ErrThresholdNonPositive, got %v", err)
	}
}

// --- 2. Seed Scenario 2: Dijkstra distances ---

func TestDijkstraPath_Distances(t *testing.T) {
	g, capacity, cost := buildCostedDAG(t)
	potential := make([]int64, g.MaxNodes())
	prev := make([]core.ArcId, g.MaxNodes())
	distance := make([]int64, g.MaxNodes())

	if _, err := dijkstra.DijkstraPath(g, 0, 4, false, capacity, 1, cost, potential, prev, distance); err != nil {
		t.Fatalf("DijkstraPath: %v", err)
	}

	want := []int64{0, 7, 9, 20, 26, 11}
	for n, w := range want {
		if distance[n] != w {
			t.Errorf("distance[%d] = %d, want %d", n, distance[n], w)
		}
	}
}

func TestDijkstraPath_UnreachedNodeHasInfiniteDistance(t *testing.T) {
	const dualBit = 2
	g, err := core.NewGraph(3, 1<<dualBit|1, dualBit)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	if err := g.AddArc(0, 0, 1); err != nil {
		t.Fatal(err)
	}
	capacity := make([]int64, g.MaxArcs())
	capacity[0] = 1
	cost := make([]int64, g.MaxArcs())
	cost[0] = 1
	cost[g.Dual(0)] = -1
	potential := make([]int64, g.MaxNodes())
	prev := make([]core.ArcId, g.MaxNodes())
	distance := make([]int64, g.MaxNodes())

	reached, err := dijkstra.DijkstraPath(g, 0, 2, false, capacity, 1, cost, potential, prev, distance)
	if err != nil {
		t.Fatalf("DijkstraPath: %v", err)
	}
	if reached {
		t.Fatalf("node 2 is disconnected, must not be reached")
	}
	if distance[2] != math.MaxInt64 {
		t.Errorf("distance[unreached] = %d, want MaxInt64", distance[2])
	}
	if prev[2] != core.InvalidArcID {
		t.Errorf("prev[unreached] = %v, want InvalidArcID", prev[2])
	}
}

func TestDijkstraPath_NegativeReducedCostPanics(t *testing.T) {
	const dualBit = 2
	g, err := core.NewGraph(2, 1<<dualBit|1, dualBit)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	if err := g.AddArc(0, 0, 1); err != nil {
		t.Fatal(err)
	}
	capacity := make([]int64, g.MaxArcs())
	capacity[0] = 1
	cost := make([]int64, g.MaxArcs())
	cost[0] = -5
	cost[g.Dual(0)] = 5
	potential := make([]int64, g.MaxNodes())
	prev := make([]core.ArcId, g.MaxNodes())
	distance := make([]int64, g.MaxNodes())

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on negative reduced cost")
		}
	}()
	_, _ = dijkstra.DijkstraPath(g, 0, 1, false, capacity, 1, cost, potential, prev, distance)
}

// --- 3. DijkstraNearestSink Tests ---

func TestDijkstraNearestSink_FindsNegativeBalanceNode(t *testing.T) {
	g, capacity, cost := buildCostedDAG(t)
	potential := make([]int64, g.MaxNodes())
	prev := make([]core.ArcId, g.MaxNodes())
	distance := make([]int64, g.MaxNodes())
	nodeBalance := make([]int64, g.MaxNodes())
	nodeBalance[3] = -1 // node 4 (1-based) is the nearest deficit node

	sink, err := dijkstra.DijkstraNearestSink(g, 0, nodeBalance, capacity, 1, cost, potential, prev, distance)
	if err != nil {
		t.Fatalf("DijkstraNearestSink: %v", err)
	}
	if sink != 3 {
		t.Errorf("sink = %d, want 3", sink)
	}
}

func TestDijkstraNearestSink_NoDeficitReturnsInvalid(t *testing.T) {
	g, capacity, cost := buildCostedDAG(t)
	potential := make([]int64, g.MaxNodes())
	prev := make([]core.ArcId, g.MaxNodes())
	distance := make([]int64, g.MaxNodes())
	nodeBalance := make([]int64, g.MaxNodes())

	sink, err := dijkstra.DijkstraNearestSink(g, 0, nodeBalance, capacity, 1, cost, potential, prev, distance)
	if err != nil {
		t.Fatalf("DijkstraNearestSink: %v", err)
	}
	if sink != core.InvalidNodeID {
		t.Errorf("sink = %d, want InvalidNodeID", sink)
	}
}

func TestDijkstraNearestSink_PrecheckRejectsNegativeReducedCost(t *testing.T) {
	const dualBit = 2
	g, err := core.NewGraph(2, 1<<dualBit|1, dualBit)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	if err := g.AddArc(0, 0, 1); err != nil {
		t.Fatal(err)
	}
	capacity := make([]int64, g.MaxArcs())
	capacity[0] = 1
	cost := make([]int64, g.MaxArcs())
	cost[0] = -5
	cost[g.Dual(0)] = 5
	potential := make([]int64, g.MaxNodes())
	prev := make([]core.ArcId, g.MaxNodes())
	distance := make([]int64, g.MaxNodes())
	nodeBalance := []int64{0, -1}

	_, err = dijkstra.DijkstraNearestSink(g, 0, nodeBalance, capacity, 1, cost, potential, prev, distance)
	if !errors.Is(err, dijkstra.ErrNotOptimal) {
		t.Errorf("want ErrNotOptimal, got %v", err)
	}
}
