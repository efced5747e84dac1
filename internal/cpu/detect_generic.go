//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl is the fallback for other architectures.
//
// Returns a Features struct with all SIMD flags set to false,
// which maps to a scalar lockstep width of one lane.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
