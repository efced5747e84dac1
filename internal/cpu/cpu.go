// Package cpu provides CPU feature detection for sizing the simulated
// device's lockstep execution width.
//
// This package detects SIMD instruction set extensions (SSE2, AVX2, NEON)
// available on the current processor and maps them to the number of float64
// lanes the widest vector unit executes per instruction.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"sync"
)

// SIMDLevel represents a SIMD instruction set extension level.
// Higher numeric values generally indicate more advanced SIMD capabilities,
// but levels are not strictly comparable across architectures (e.g., AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD capability (scalar execution).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64).
	SIMDSSE2

	// SIMDAVX indicates x86-64 AVX (Advanced Vector Extensions).
	SIMDAVX

	// SIMDAVX2 indicates x86-64 AVX2 (256-bit integer operations).
	SIMDAVX2

	// SIMDAVX512 indicates x86-64 AVX-512 (512-bit vectors).
	SIMDAVX512

	// SIMDNEON indicates ARM NEON / Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to lockstep width selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2   bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX    bool // Advanced Vector Extensions
	HasAVX2   bool // Advanced Vector Extensions 2
	HasAVX512 bool // Advanced Vector Extensions 512

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// Control flags
	ForceGeneric bool // Report scalar capability regardless of hardware (for testing)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// Level returns the most capable SIMD level the given features support.
func Level(f Features) SIMDLevel {
	if f.ForceGeneric {
		return SIMDNone
	}
	switch {
	case f.HasAVX512:
		return SIMDAVX512
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasAVX:
		return SIMDAVX
	case f.HasSSE2:
		return SIMDSSE2
	case f.HasNEON:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

// Float64Lanes returns the number of float64 values the widest vector unit
// described by f processes per instruction: 512-bit AVX-512 fits 8 lanes,
// 256-bit AVX/AVX2 fits 4, 128-bit SSE2/NEON fits 2, scalar hardware 1.
// The result is always a power of two.
func Float64Lanes(f Features) int {
	switch Level(f) {
	case SIMDAVX512:
		return 8
	case SIMDAVX2, SIMDAVX:
		return 4
	case SIMDSSE2, SIMDNEON:
		return 2
	default:
		return 1
	}
}

// Supports reports whether the given features satisfy the requested SIMD
// level. ForceGeneric restricts support to scalar execution.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}
