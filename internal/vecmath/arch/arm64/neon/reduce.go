//go:build arm64 && !purego

package neon

import "math"

// Sum returns the sum of all elements in x.
// Returns 0 for an empty slice.
// Unrolled to two independent accumulators, matching the two float64 lanes
// of a 128-bit NEON register.
func Sum(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}

	var s0, s1 float64
	i := 0
	for ; i+2 <= n; i += 2 {
		s0 += x[i]
		s1 += x[i+1]
	}
	if i < n {
		s0 += x[i]
	}
	return s0 + s1
}

// MaxAbs returns the maximum absolute value in x.
// Returns 0 for an empty slice.
// Unrolled to two independent lanes, matching a 128-bit NEON register.
func MaxAbs(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}

	var m0, m1 float64
	i := 0
	for ; i+2 <= n; i += 2 {
		if v := math.Abs(x[i]); v > m0 {
			m0 = v
		}
		if v := math.Abs(x[i+1]); v > m1 {
			m1 = v
		}
	}
	if i < n {
		if v := math.Abs(x[i]); v > m0 {
			m0 = v
		}
	}
	if m1 > m0 {
		return m1
	}
	return m0
}
