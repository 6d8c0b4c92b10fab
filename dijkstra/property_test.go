// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/fibpath/builder"
	"github.com/katalvlaran/fibpath/core"
	"github.com/katalvlaran/fibpath/dijkstra"
)

// randomGraphs yields seeded sparse digraphs with small integer weights
// (zero included), so path sums are exact and comparable with ==.
func randomGraphs(t *testing.T) []*core.Graph[int] {
	t.Helper()
	var out []*core.Graph[int]
	for seed := int64(1); seed <= 12; seed++ {
		n := 5 + int(seed)*4
		p := 3.0 / float64(n)
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.IntegerWeightFn(0, 20)),
		}, builder.RandomSparse(n, p))
		require.NoError(t, err)
		out = append(out, g)
	}

	grid, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(99),
		builder.WithWeightFn(builder.IntegerWeightFn(1, 9)),
	}, builder.Grid(7, 9))
	require.NoError(t, err)

	return append(out, grid)
}

// gonumDistances computes the reference table with gonum's Dijkstra.
func gonumDistances(g *core.Graph[int], start int) map[int]float64 {
	wg := simple.NewWeightedDirectedGraph(0, core.Infinity)
	for _, v := range g.Vertices() {
		wg.AddNode(simple.Node(v))
	}
	for _, u := range g.Vertices() {
		edges, _ := g.Neighbors(u)
		for _, e := range edges {
			wg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.From), T: simple.Node(e.To), W: e.Weight})
		}
	}

	sh := path.DijkstraFrom(simple.Node(start), wg)
	out := make(map[int]float64, g.VertexCount())
	for _, v := range g.Vertices() {
		out[v] = sh.WeightTo(int64(v))
	}
	return out
}

func TestProperty_AgreesWithGonum(t *testing.T) {
	for i, g := range randomGraphs(t) {
		t.Run(fmt.Sprintf("graph%d", i), func(t *testing.T) {
			for _, start := range []int{0, g.VertexCount() / 2} {
				want := gonumDistances(g, start)

				fib, err := dijkstra.ShortestPaths(g, start)
				require.NoError(t, err)
				require.Equal(t, want, fib)

				bin, err := dijkstra.ShortestPathsBinaryHeap(g, start)
				require.NoError(t, err)
				require.Equal(t, fib, bin, "Fibonacci and binary-heap tables must agree")
			}
		})
	}
}

func TestProperty_MonotonicPopOrder(t *testing.T) {
	for i, g := range randomGraphs(t) {
		t.Run(fmt.Sprintf("graph%d", i), func(t *testing.T) {
			for name, run := range map[string]func(*core.Graph[int], int, ...dijkstra.Option) (map[int]float64, error){
				"fibonacci": dijkstra.ShortestPaths[int],
				"binary":    dijkstra.ShortestPathsBinaryHeap[int],
			} {
				last := -1.0
				settled := map[int]int{}
				_, err := run(g, 0, dijkstra.WithOnSettle(func(v int, d float64) {
					require.GreaterOrEqual(t, d, last, "%s: pop order decreased at %d", name, v)
					last = d
					settled[v]++
				}))
				require.NoError(t, err)
				for v, n := range settled {
					require.Equal(t, 1, n, "%s: vertex %d settled %d times", name, v, n)
				}
			}
		})
	}
}

func TestProperty_DistancesAndReachability(t *testing.T) {
	for i, g := range randomGraphs(t) {
		t.Run(fmt.Sprintf("graph%d", i), func(t *testing.T) {
			dist, err := dijkstra.ShortestPaths(g, 0)
			require.NoError(t, err)
			require.Equal(t, 0.0, dist[0])
			require.Len(t, dist, g.VertexCount())

			reach, err := g.Reachable(0)
			require.NoError(t, err)
			reachable := make(map[int]bool, len(reach))
			for _, v := range reach {
				reachable[v] = true
			}

			for v, d := range dist {
				if reachable[v] {
					require.GreaterOrEqual(t, d, 0.0)
					require.Less(t, d, core.Infinity)
				} else {
					require.Equal(t, core.Infinity, d, "vertex %d is unreachable", v)
				}
			}
		})
	}
}

func TestProperty_EarlyExitMatchesTable(t *testing.T) {
	for i, g := range randomGraphs(t) {
		t.Run(fmt.Sprintf("graph%d", i), func(t *testing.T) {
			table, err := dijkstra.ShortestPaths(g, 0)
			require.NoError(t, err)

			for _, end := range g.Vertices() {
				want := table[end]
				reachable := want != core.Infinity

				d, ok, err := dijkstra.Search(g, 0, end)
				require.NoError(t, err)
				require.Equal(t, reachable, ok)
				require.Equal(t, want, d)

				d, ok, err = dijkstra.SearchBinaryHeap(g, 0, end)
				require.NoError(t, err)
				require.Equal(t, reachable, ok)
				require.Equal(t, want, d)

				route, cost, err := dijkstra.Path(g, 0, end)
				if !reachable {
					require.ErrorIs(t, err, dijkstra.ErrNoPath)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, want, cost)
				require.Equal(t, 0, route[0])
				require.Equal(t, end, route[len(route)-1])

				var sum float64
				for k := 0; k+1 < len(route); k++ {
					e, ok := g.Edge(route[k], route[k+1])
					require.True(t, ok, "route uses a missing edge %d→%d", route[k], route[k+1])
					sum += e.Weight
				}
				require.Equal(t, cost, sum)
			}
		})
	}
}

func TestProperty_NegativeWeightRejected(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithWeightFn(builder.ConstantWeightFn(-1)),
	}, builder.Cycle(6))
	require.NoError(t, err)

	_, err = dijkstra.ShortestPaths(g, 0)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	_, err = dijkstra.ShortestPathsBinaryHeap(g, 0)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}
