package simt

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/cwbudde/algo-reduce/internal/cpu"
)

var (
	// ErrInvalidWidth reports a lockstep width that is not a positive power of two.
	ErrInvalidWidth = errors.New("simt: lockstep width must be a positive power of two")

	// ErrInvalidMaxGroupSize reports a maximum group size that is not a positive power of two.
	ErrInvalidMaxGroupSize = errors.New("simt: max group size must be a positive power of two")

	// ErrInvalidParallelism reports a non-positive resident-group count.
	ErrInvalidParallelism = errors.New("simt: parallelism must be positive")

	// ErrWidthExceedsMaxGroup reports a lockstep width larger than the maximum group size.
	ErrWidthExceedsMaxGroup = errors.New("simt: lockstep width must not exceed max group size")
)

// DeviceConfig defines the capabilities of a simulated device.
type DeviceConfig struct {
	// Width is the lockstep execution width: the number of consecutive
	// lanes one unit drives from a single instruction stream.
	Width int

	// MaxGroupSize is the largest thread-group the device accepts.
	MaxGroupSize int

	// Parallelism is the number of groups resident (executing) at once.
	Parallelism int
}

// DeviceOption mutates a DeviceConfig.
type DeviceOption func(*DeviceConfig)

// DefaultDeviceConfig returns the configuration used when no options are
// given: a lockstep width matching the host CPU's float64 SIMD lanes, a
// maximum group size of 256 threads, and one resident group per logical CPU.
func DefaultDeviceConfig() DeviceConfig {
	return DeviceConfig{
		Width:        cpu.Float64Lanes(cpu.DetectFeatures()),
		MaxGroupSize: 256,
		Parallelism:  runtime.NumCPU(),
	}
}

// WithWidth sets the lockstep execution width.
func WithWidth(width int) DeviceOption {
	return func(cfg *DeviceConfig) {
		cfg.Width = width
	}
}

// WithMaxGroupSize sets the largest thread-group the device accepts.
func WithMaxGroupSize(size int) DeviceOption {
	return func(cfg *DeviceConfig) {
		cfg.MaxGroupSize = size
	}
}

// WithParallelism sets how many groups execute concurrently.
func WithParallelism(n int) DeviceOption {
	return func(cfg *DeviceConfig) {
		cfg.Parallelism = n
	}
}

// ApplyDeviceOptions applies zero or more options to the default config.
func ApplyDeviceOptions(opts ...DeviceOption) DeviceConfig {
	cfg := DefaultDeviceConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Validate reports the first capability constraint cfg violates, if any.
func (cfg DeviceConfig) Validate() error {
	if !isPowerOfTwo(cfg.Width) {
		return ErrInvalidWidth
	}
	if !isPowerOfTwo(cfg.MaxGroupSize) {
		return ErrInvalidMaxGroupSize
	}
	if cfg.Parallelism < 1 {
		return ErrInvalidParallelism
	}
	if cfg.Width > cfg.MaxGroupSize {
		return ErrWidthExceedsMaxGroup
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Device is a simulated accelerator. It is immutable after construction and
// safe for concurrent dispatches.
type Device struct {
	width        int
	maxGroupSize int
	parallelism  int

	locals sync.Pool // local-memory backings, reused across dispatches
}

// New constructs a device from the default configuration modified by opts.
func New(opts ...DeviceOption) (*Device, error) {
	cfg := ApplyDeviceOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Device{
		width:        cfg.Width,
		maxGroupSize: cfg.MaxGroupSize,
		parallelism:  cfg.Parallelism,
	}, nil
}

var (
	defaultDevice     *Device
	defaultDeviceOnce sync.Once
)

// Default returns the process-wide device built from detected CPU
// capabilities. The same instance is returned on every call.
func Default() *Device {
	defaultDeviceOnce.Do(func() {
		d, err := New()
		if err != nil {
			// DefaultDeviceConfig always yields power-of-two capabilities.
			panic(fmt.Sprintf("simt: default device: %v", err))
		}
		defaultDevice = d
	})
	return defaultDevice
}

// Width returns the lockstep execution width in lanes.
func (d *Device) Width() int { return d.width }

// MaxGroupSize returns the largest thread-group the device accepts.
func (d *Device) MaxGroupSize() int { return d.maxGroupSize }

// Parallelism returns how many groups execute concurrently.
func (d *Device) Parallelism() int { return d.parallelism }

// localBuffer is a pooled local-memory backing. Contents carry over from
// whichever group used it last; kernels treat local memory as uninitialized.
type localBuffer struct {
	words []uint64
}

// getLocal returns a local-memory buffer of n cells with unspecified
// contents, reusing a pooled backing when one is large enough.
func (d *Device) getLocal(n int) *localBuffer {
	if n == 0 {
		return nil
	}
	lb, _ := d.locals.Get().(*localBuffer)
	if lb == nil {
		lb = new(localBuffer)
	}
	if cap(lb.words) < n {
		lb.words = make([]uint64, n)
	} else {
		lb.words = lb.words[:n]
	}
	return lb
}

// putLocal recycles a local-memory buffer for later groups.
func (d *Device) putLocal(lb *localBuffer) {
	if lb != nil {
		d.locals.Put(lb)
	}
}
