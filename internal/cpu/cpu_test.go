package cpu

import (
	"math/bits"
	"testing"
)

func TestLevelOrdering(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		want     SIMDLevel
	}{
		{"none", Features{}, SIMDNone},
		{"sse2 only", Features{HasSSE2: true}, SIMDSSE2},
		{"avx over sse2", Features{HasSSE2: true, HasAVX: true}, SIMDAVX},
		{"avx2 over avx", Features{HasSSE2: true, HasAVX: true, HasAVX2: true}, SIMDAVX2},
		{"avx512 wins", Features{HasSSE2: true, HasAVX: true, HasAVX2: true, HasAVX512: true}, SIMDAVX512},
		{"neon", Features{HasNEON: true}, SIMDNEON},
		{"force generic", Features{HasAVX2: true, ForceGeneric: true}, SIMDNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Level(tt.features); got != tt.want {
				t.Fatalf("Level(%+v) = %v, want %v", tt.features, got, tt.want)
			}
		})
	}
}

func TestFloat64Lanes(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		want     int
	}{
		{"scalar", Features{}, 1},
		{"sse2", Features{HasSSE2: true}, 2},
		{"avx", Features{HasSSE2: true, HasAVX: true}, 4},
		{"avx2", Features{HasSSE2: true, HasAVX: true, HasAVX2: true}, 4},
		{"avx512", Features{HasAVX512: true}, 8},
		{"neon", Features{HasNEON: true}, 2},
		{"forced generic", Features{HasAVX512: true, ForceGeneric: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Float64Lanes(tt.features)
			if got != tt.want {
				t.Fatalf("Float64Lanes(%+v) = %d, want %d", tt.features, got, tt.want)
			}
			if bits.OnesCount(uint(got)) != 1 {
				t.Fatalf("Float64Lanes(%+v) = %d, want a power of two", tt.features, got)
			}
		})
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"none always supported", Features{}, SIMDNone, true},
		{"sse2 on sse2", Features{HasSSE2: true}, SIMDSSE2, true},
		{"avx2 without avx2", Features{HasSSE2: true}, SIMDAVX2, false},
		{"avx2 on avx2", Features{HasSSE2: true, HasAVX2: true}, SIMDAVX2, true},
		{"avx512 on avx512", Features{HasAVX512: true}, SIMDAVX512, true},
		{"neon on neon", Features{HasNEON: true}, SIMDNEON, true},
		{"neon on amd64-ish features", Features{HasSSE2: true}, SIMDNEON, false},
		{"force generic blocks simd", Features{HasAVX2: true, ForceGeneric: true}, SIMDAVX2, false},
		{"force generic keeps scalar", Features{HasAVX2: true, ForceGeneric: true}, SIMDNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Fatalf("Supports(%+v, %v) = %v, want %v", tt.features, tt.level, got, tt.want)
			}
		})
	}
}

func TestForcedFeaturesOverrideDetection(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{HasAVX512: true, Architecture: "test"})
	if got := DetectFeatures(); !got.HasAVX512 || got.Architecture != "test" {
		t.Fatalf("DetectFeatures after SetForcedFeatures = %+v, want forced values", got)
	}

	ResetDetection()
	if got := DetectFeatures(); got.Architecture == "test" {
		t.Fatal("ResetDetection did not clear forced features")
	}
}

func TestDetectFeaturesStable(t *testing.T) {
	defer ResetDetection()
	ResetDetection()

	a := DetectFeatures()
	b := DetectFeatures()
	if a != b {
		t.Fatalf("repeated detection disagrees: %+v vs %+v", a, b)
	}
	if a.Architecture == "" {
		t.Fatal("Architecture not populated")
	}
}

func TestSIMDLevelString(t *testing.T) {
	levels := []SIMDLevel{SIMDNone, SIMDSSE2, SIMDAVX, SIMDAVX2, SIMDAVX512, SIMDNEON}
	seen := make(map[string]bool)
	for _, l := range levels {
		s := l.String()
		if s == "" || s == "Unknown" {
			t.Fatalf("level %d has no name", l)
		}
		if seen[s] {
			t.Fatalf("duplicate level name %q", s)
		}
		seen[s] = true
	}
	if got := SIMDLevel(99).String(); got != "Unknown" {
		t.Fatalf("out-of-range level String() = %q, want Unknown", got)
	}
}
