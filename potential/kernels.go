// SPDX-License-Identifier: MIT

package potential

import "math"

// Eval implements Radial: f = r^(−s), f' = −s·r^(−s−1).
func (k Riesz) Eval(r float64) (f, fp float64) {
	rr := math.Max(r, Eps)
	return math.Pow(rr, -k.S), -k.S * math.Pow(rr, -k.S-1)
}

// Eval implements Radial: f = −ln r, f' = −1/r.
func (Log) Eval(r float64) (f, fp float64) {
	rr := math.Max(r, Eps)
	return -math.Log(rr), -1 / rr
}

// Eval implements Radial: f = −r^p, f' = −p·r^(p−1).
func (k Power) Eval(r float64) (f, fp float64) {
	rr := math.Max(r, Eps)
	return -math.Pow(rr, k.P), -k.P * math.Pow(rr, k.P-1)
}

// Value implements InnerProduct: |t|^p.
func (k PFrame) Value(t float64) float64 {
	return math.Pow(math.Abs(t), k.P)
}

// Coeff implements InnerProduct: p·max(|t|,EpsT)^(p−1)·sign(t), with
// sign(0) = +1.
func (k PFrame) Coeff(t float64) float64 {
	a := math.Max(math.Abs(t), EpsT)
	sgn := 1.0
	if t < 0 {
		sgn = -1
	}

	return k.P * math.Pow(a, k.P-1) * sgn
}
