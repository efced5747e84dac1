package testutil

import "math/rand"

// Ascending returns [1, 2, ..., n] as float64 values. Partial sums of this
// sequence are exact in float64 for any n used in tests, which makes group
// results easy to state by hand.
func Ascending(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude) with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a sequence that is zero everywhere except for a single
// one at the given position. Its sum is exactly 1 under any grouping.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued sequence.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// SequentialSum returns the left-to-right sum of x. It is the reference
// against which parallel reductions are compared.
func SequentialSum(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}
	return s
}
