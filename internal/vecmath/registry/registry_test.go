package registry

import (
	"testing"

	"github.com/cwbudde/algo-reduce/internal/cpu"
)

func TestOpRegistry_Register(t *testing.T) {
	// Create a fresh registry for testing
	reg := &OpRegistry{}

	// Register a generic implementation
	genericEntry := OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Sum: func(x []float64) float64 {
			return 0
		},
	}
	reg.Register(genericEntry)

	// Register an AVX2 implementation
	avx2Entry := OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Sum: func(x []float64) float64 {
			return 0
		},
	}
	reg.Register(avx2Entry)

	// Verify both entries were registered
	entries := reg.ListEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestOpRegistry_Lookup_Priority(t *testing.T) {
	// Create a fresh registry for testing
	reg := &OpRegistry{}

	// Register implementations in random order to test sorting
	reg.Register(OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
	})
	reg.Register(OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
	})
	reg.Register(OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
	})

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{
			name: "AVX2 available - select AVX2",
			features: cpu.Features{
				HasSSE2: true,
				HasAVX2: true,
			},
			want: "avx2",
		},
		{
			name: "SSE2 only - select SSE2",
			features: cpu.Features{
				HasSSE2: true,
				HasAVX2: false,
			},
			want: "sse2",
		},
		{
			name: "No SIMD - select generic",
			features: cpu.Features{
				HasSSE2: false,
				HasAVX2: false,
			},
			want: "generic",
		},
		{
			name: "ForceGeneric - select generic",
			features: cpu.Features{
				HasSSE2:      true,
				HasAVX2:      true,
				ForceGeneric: true,
			},
			want: "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, entry.Name)
			}
		})
	}
}

func TestOpRegistry_Lookup_ARM(t *testing.T) {
	reg := &OpRegistry{}

	// Register generic and NEON implementations
	reg.Register(OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
	})
	reg.Register(OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
	})

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{
			name: "NEON available - select NEON",
			features: cpu.Features{
				HasNEON: true,
			},
			want: "neon",
		},
		{
			name: "NEON unavailable - select generic",
			features: cpu.Features{
				HasNEON: false,
			},
			want: "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, entry.Name)
			}
		})
	}
}

func TestOpRegistry_Lookup_Empty(t *testing.T) {
	reg := &OpRegistry{}
	if entry := reg.Lookup(cpu.Features{}); entry != nil {
		t.Fatalf("Lookup on empty registry = %+v, want nil", entry)
	}
}

func TestOpRegistry_RegisterAfterLookup(t *testing.T) {
	reg := &OpRegistry{}

	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	if entry := reg.Lookup(cpu.Features{HasSSE2: true}); entry.Name != "generic" {
		t.Fatalf("expected %q, got %q", "generic", entry.Name)
	}

	// A late registration must re-trigger sorting.
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})
	if entry := reg.Lookup(cpu.Features{HasSSE2: true}); entry.Name != "sse2" {
		t.Fatalf("expected %q after late registration, got %q", "sse2", entry.Name)
	}
}

func TestOpRegistry_ListEntriesSorted(t *testing.T) {
	reg := &OpRegistry{}

	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})

	entries := reg.ListEntries()
	wantOrder := []string{"avx2", "sse2", "generic"}
	if len(entries) != len(wantOrder) {
		t.Fatalf("expected %d entries, got %d", len(wantOrder), len(entries))
	}
	for i, want := range wantOrder {
		if entries[i].Name != want {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Name, want)
		}
	}

	// The returned slice is a copy; mutating it must not affect the registry.
	entries[0].Name = "mutated"
	if again := reg.ListEntries(); again[0].Name != "avx2" {
		t.Errorf("registry affected by caller mutation: %q", again[0].Name)
	}
}

func TestOpRegistry_Reset(t *testing.T) {
	reg := &OpRegistry{}

	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Reset()

	if entries := reg.ListEntries(); len(entries) != 0 {
		t.Fatalf("expected empty registry after Reset, got %d entries", len(entries))
	}
}
