// SPDX-License-Identifier: MIT

package structure

// DefaultTol is the gap threshold, in inner-product units, used when callers
// have no better value.
const DefaultTol = 2e-3

// Pair is an unordered index pair i<j with its inner product.
type Pair struct {
	I, J int
	V    float64
}

// Clusters is the output of Cluster1D.
type Clusters struct {
	Centers []float64 // ascending
	Counts  []int     // members per cluster
	Widths  []float64 // max − min of the members
	Labels  []int     // cluster index per input value, in input order
}

// LayerSummary describes the distance layers of a configuration.
type LayerSummary struct {
	Centers   []float64 `json:"centers"`   // inner-product centers, ascending
	Distances []float64 `json:"distances"` // chordal distance √(2−2t) per center
	Counts    []int     `json:"counts"`
	K         int       `json:"k"`
	Tol       float64   `json:"tol"`
}

// Graph is an undirected simple graph on vertices 0..N−1.
type Graph struct {
	N       int      `json:"n"`
	Edges   [][2]int `json:"edges"` // i<j, lexicographic order
	Adj     [][]int  `json:"adj"`
	Degrees []int    `json:"degrees"`
}

// LayeredEdges partitions every pair by its nearest center.
type LayeredEdges struct {
	Centers      []float64  `json:"centers"`
	EdgesByLayer [][][2]int `json:"edges_by_layer"`
}

// Summary bundles the analysis of one configuration.
type Summary struct {
	N       int          `json:"n"`
	Tol     float64      `json:"tol"`
	Layer   LayerSummary `json:"layer"`
	Layers  LayeredEdges `json:"layers"`
	Contact Graph        `json:"contact"`
}

// DegreeStats summarises a degree sequence.
type DegreeStats struct {
	Sorted  []int       `json:"sorted"`
	Freq    map[int]int `json:"freq"`
	Mean    float64     `json:"mean"`
	StdDev  float64     `json:"std_dev"`
	Regular bool        `json:"regular"`
}

// Spectrum holds the Gram eigenvalues (descending) and the numerical rank.
type Spectrum struct {
	Eigenvalues []float64 `json:"eigenvalues"`
	Rank        int       `json:"rank"`
}
