// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"slices"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// BuildGraph assembles adjacency lists and degrees from canonical edges.
// Every edge must satisfy 0 ≤ i < j < n and appear once.
func BuildGraph(n int, edges [][2]int) (Graph, error) {
	g := Graph{
		N:       n,
		Edges:   make([][2]int, 0, len(edges)),
		Adj:     make([][]int, n),
		Degrees: make([]int, n),
	}
	seen := make(map[[2]int]struct{}, len(edges))
	for _, e := range edges {
		i, j := e[0], e[1]
		if i < 0 || j >= n || i >= j {
			return Graph{}, fmt.Errorf("%s: edge (%d,%d) with n=%d: %w", methodBuildGraph, i, j, n, ErrBadEdge)
		}
		if _, dup := seen[e]; dup {
			return Graph{}, fmt.Errorf("%s: duplicate edge (%d,%d): %w", methodBuildGraph, i, j, ErrBadEdge)
		}
		seen[e] = struct{}{}
		g.Edges = append(g.Edges, e)
		g.Adj[i] = append(g.Adj[i], j)
		g.Adj[j] = append(g.Adj[j], i)
	}
	for v := range g.Adj {
		if g.Adj[v] == nil {
			g.Adj[v] = []int{}
		}
		g.Degrees[v] = len(g.Adj[v])
	}

	return g, nil
}

// Components returns the connected components of g, each sorted ascending,
// ordered by their smallest vertex. Isolated vertices are singleton
// components.
func (g Graph) Components() [][]int {
	ug := simple.NewUndirectedGraph()
	for v := 0; v < g.N; v++ {
		ug.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges {
		ug.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}

	comps := topo.ConnectedComponents(ug)
	out := make([][]int, 0, len(comps))
	for _, c := range comps {
		ids := make([]int, len(c))
		for k, node := range c {
			ids[k] = int(node.ID())
		}
		slices.Sort(ids)
		out = append(out, ids)
	}
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })

	return out
}

// DegreeSummary sorts a degree sequence and reports its frequency table,
// mean and population standard deviation.
func DegreeSummary(degrees []int) DegreeStats {
	ds := DegreeStats{
		Sorted: slices.Clone(degrees),
		Freq:   make(map[int]int),
	}
	if ds.Sorted == nil {
		ds.Sorted = []int{}
	}
	slices.Sort(ds.Sorted)
	for _, d := range ds.Sorted {
		ds.Freq[d]++
	}
	if len(degrees) == 0 {
		return ds
	}

	data := stats.LoadRawData(degrees)
	// errors only arise on empty input, excluded above
	ds.Mean, _ = stats.Mean(data)
	ds.StdDev, _ = stats.StandardDeviationPopulation(data)
	ds.Regular = len(ds.Freq) == 1

	return ds
}
