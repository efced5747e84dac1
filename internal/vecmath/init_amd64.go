//go:build amd64 && !purego

package vecmath

// Pull in the implementations available on amd64. Each package registers
// itself in its init function; selection happens per call based on the
// detected CPU features.
import (
	_ "github.com/cwbudde/algo-reduce/internal/vecmath/arch/amd64/avx2"
	_ "github.com/cwbudde/algo-reduce/internal/vecmath/arch/amd64/sse2"
	_ "github.com/cwbudde/algo-reduce/internal/vecmath/arch/generic"
)
