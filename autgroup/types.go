// SPDX-License-Identifier: MIT

package autgroup

import (
	"context"
	"fmt"

	"github.com/katalvlaran/spherelab/structure"
)

// Request is the graph sent to the collaborator.
type Request struct {
	N     int      `json:"n"`
	Edges [][2]int `json:"edges"`
}

// Result is the collaborator's answer. Nil fields were reported as null.
//
// The group order is OrderMantissa·10^OrderExponent. Order holds the exact
// value only while it fits an int64 and is nil above that.
type Result struct {
	Order         *int64   `json:"order"`
	OrderMantissa *float64 `json:"order_mantissa,omitempty"`
	OrderExponent *int     `json:"order_exponent,omitempty"`
	NumGenerators *int     `json:"num_generators"`
	Orbits        []int    `json:"orbits"`
}

// Runner computes automorphism data for a graph.
type Runner interface {
	Run(ctx context.Context, req Request) (Result, error)
}

// FromGraph builds a request from a contact graph.
func FromGraph(g structure.Graph) Request {
	edges := g.Edges
	if edges == nil {
		edges = [][2]int{}
	}

	return Request{N: g.N, Edges: edges}
}

// Validate checks n ≥ 0 and 0 ≤ i,j < n for every edge. Self-loops are
// allowed; the collaborator drops them.
func (r Request) Validate() error {
	if r.N < 0 {
		return fmt.Errorf("%s: n=%d: %w", methodValidate, r.N, ErrBadRequest)
	}
	for k, e := range r.Edges {
		if e[0] < 0 || e[0] >= r.N || e[1] < 0 || e[1] >= r.N {
			return fmt.Errorf("%s: edge %d (%d,%d) with n=%d: %w", methodValidate, k, e[0], e[1], r.N, ErrBadRequest)
		}
	}

	return nil
}
