//go:build arm64 && !purego

package vecmath

import (
	_ "github.com/cwbudde/algo-reduce/internal/vecmath/arch/arm64/neon"
	_ "github.com/cwbudde/algo-reduce/internal/vecmath/arch/generic"
)
