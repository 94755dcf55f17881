// SPDX-License-Identifier: MIT

// Package autgroup asks an external process for the automorphism group of a
// contact graph.
//
// The collaborator speaks JSON over stdin/stdout:
//
//	in:  {"n": 12, "edges": [[0,1],[0,2],...]}
//	out: {"order": 120, "order_mantissa": 1.2, "order_exponent": 2,
//	      "num_generators": 3, "orbits": [0,0,...]}
//
// Any field of the output may be null. Orders above the int64 range come
// back with a null "order" and only the mantissa and exponent set. The reference collaborator is
// scripts/autgroup.py (pynauty). Retry and timeout policy belongs to the
// caller; ExecRunner only honours context cancellation.
package autgroup
