package reduce

import (
	"testing"

	"github.com/cwbudde/algo-reduce/internal/testutil"
	"github.com/cwbudde/algo-reduce/internal/vecmath"
	"github.com/cwbudde/algo-reduce/simt"
)

var benchSizes = []struct {
	name string
	size int
}{
	{"256", 256},
	{"1K", 1024},
	{"16K", 16384},
	{"256K", 262144},
}

func newBenchDevice(b *testing.B) *simt.Device {
	b.Helper()
	d, err := simt.New(simt.WithWidth(8), simt.WithMaxGroupSize(256))
	if err != nil {
		b.Fatalf("simt.New: %v", err)
	}
	return d
}

func BenchmarkSum(b *testing.B) {
	d := newBenchDevice(b)

	for _, m := range []Mode{ModeHybrid, ModeBarrier, ModeSimd, ModePointerJump} {
		for _, bs := range benchSizes {
			in := testutil.DeterministicNoise(1, 1.0, bs.size)

			b.Run(m.String()+"/"+bs.name, func(b *testing.B) {
				b.SetBytes(int64(bs.size * 8))
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := Sum(in, WithDevice(d), WithMode(m)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkVecmathSum is the host-side baseline: the same totals without a
// simulated device in the way.
func BenchmarkVecmathSum(b *testing.B) {
	for _, bs := range benchSizes {
		in := testutil.DeterministicNoise(1, 1.0, bs.size)

		b.Run(bs.name, func(b *testing.B) {
			b.SetBytes(int64(bs.size * 8))
			for i := 0; i < b.N; i++ {
				_ = vecmath.Sum(in)
			}
		})
	}
}

// BenchmarkPass times one dispatched pass without the host loop around it.
func BenchmarkPass(b *testing.B) {
	d := newBenchDevice(b)
	const n = 16384
	const groupSize = 256

	in := testutil.DeterministicNoise(1, 1.0, n)
	out := make([]float64, n/groupSize)

	cases := []struct {
		name string
		run  passFunc
	}{
		{"Barrier", BarrierPass},
		{"Hybrid", HybridPass},
		{"PointerJump", PointerJumpPass},
	}
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			b.SetBytes(n * 8)
			for i := 0; i < b.N; i++ {
				if _, err := tc.run(d, in, out, groupSize); err != nil {
					b.Fatal(err)
				}
			}
		})
	}

	// The fence-free pass is capped at the lockstep width, so it emits
	// more partial sums per pass.
	b.Run("SIMD", func(b *testing.B) {
		simdOut := make([]float64, n/d.Width())
		b.SetBytes(n * 8)
		for i := 0; i < b.N; i++ {
			if _, err := SimdPass(d, in, simdOut, d.Width()); err != nil {
				b.Fatal(err)
			}
		}
	})
}
