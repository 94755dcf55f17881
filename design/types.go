// SPDX-License-Identifier: MIT

package design

// Defaults used when callers have no better value.
const (
	DefaultKMax = 20
	DefaultTol  = 1e-6
)

// Report is the design analysis of one configuration.
type Report struct {
	Dim      int       `json:"dim"`
	N        int       `json:"n"`
	KMax     int       `json:"kmax"`
	Tol      float64   `json:"tol"`
	S        []float64 `json:"s"` // S[k−1] = s_k
	Strength int       `json:"strength"`
}
