//go:build !amd64 && !arm64

package vecmath

import (
	_ "github.com/cwbudde/algo-reduce/internal/vecmath/arch/generic"
)
