package simt

// Buffer wraps a float64 slice with reuse-friendly semantics for staging
// pass results on the host side. Kernels and passes accept raw []float64;
// use Cells() to bridge.
type Buffer struct {
	cells []float64
}

// NewBuffer returns a zero-filled Buffer of the given length.
func NewBuffer(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{cells: make([]float64, length)}
}

// Cells returns the underlying slice.
func (b *Buffer) Cells() []float64 {
	return b.cells
}

// Len returns the current number of cells.
func (b *Buffer) Len() int {
	return len(b.cells)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.cells)
}

// Resize sets the length to n, reusing existing capacity when possible.
// New cells beyond the previous length are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.cells)
	if n <= cap(b.cells) {
		b.cells = b.cells[:n]
	} else {
		s := make([]float64, n)
		copy(s, b.cells)
		b.cells = s
	}
	// Zero any newly exposed cells that may have stale data from previous
	// use of the backing array.
	if n > oldLen {
		for i := oldLen; i < n; i++ {
			b.cells[i] = 0
		}
	}
}

// Zero sets all cells to 0.
func (b *Buffer) Zero() {
	for i := range b.cells {
		b.cells[i] = 0
	}
}
