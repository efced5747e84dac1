package reduce

import "github.com/cwbudde/algo-reduce/simt"

// SumConfig carries the host-side parameters of a Sum call.
type SumConfig struct {
	// Device runs the passes. Nil selects the process-wide default device.
	Device *simt.Device

	// Mode selects the synchronization discipline.
	Mode Mode

	// GroupSize overrides the derived group size when positive. It must be
	// a power of two of at least two lanes, within the mode's device cap.
	GroupSize int
}

// SumOption mutates a SumConfig.
type SumOption func(*SumConfig)

// DefaultSumConfig returns the configuration used when no options are
// given: the default device, hybrid mode, derived group sizes.
func DefaultSumConfig() SumConfig {
	return SumConfig{Mode: ModeHybrid}
}

// WithDevice selects the device the passes run on.
func WithDevice(d *simt.Device) SumOption {
	return func(cfg *SumConfig) {
		cfg.Device = d
	}
}

// WithMode selects the synchronization discipline.
func WithMode(m Mode) SumOption {
	return func(cfg *SumConfig) {
		cfg.Mode = m
	}
}

// WithGroupSize forces a specific group size instead of the derived one.
func WithGroupSize(size int) SumOption {
	return func(cfg *SumConfig) {
		cfg.GroupSize = size
	}
}

// ApplySumOptions applies zero or more options to the default config.
func ApplySumOptions(opts ...SumOption) SumConfig {
	cfg := DefaultSumConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
