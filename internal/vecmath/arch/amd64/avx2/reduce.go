//go:build amd64 && !purego

package avx2

import "math"

// Sum returns the sum of all elements in x.
// Returns 0 for an empty slice.
// Unrolled to four independent accumulators, matching the four float64
// lanes of a 256-bit vector register.
func Sum(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}

	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
	}
	for ; i < n; i++ {
		s0 += x[i]
	}
	return (s0 + s1) + (s2 + s3)
}

// MaxAbs returns the maximum absolute value in x.
// Returns 0 for an empty slice.
// Unrolled to four independent lanes, matching a 256-bit vector register.
func MaxAbs(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}

	var m0, m1, m2, m3 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		if v := math.Abs(x[i]); v > m0 {
			m0 = v
		}
		if v := math.Abs(x[i+1]); v > m1 {
			m1 = v
		}
		if v := math.Abs(x[i+2]); v > m2 {
			m2 = v
		}
		if v := math.Abs(x[i+3]); v > m3 {
			m3 = v
		}
	}
	for ; i < n; i++ {
		if v := math.Abs(x[i]); v > m0 {
			m0 = v
		}
	}
	if m1 > m0 {
		m0 = m1
	}
	if m3 > m2 {
		m2 = m3
	}
	if m2 > m0 {
		return m2
	}
	return m0
}
