package rembg

import "fmt"

// DefaultThreshold is the threshold used when none is set explicitly.
const DefaultThreshold = 0.5

// RemovalOptions controls how the raw probability map is turned into
// an alpha mask. The zero value is not useful; start from
// DefaultOptions.
type RemovalOptions struct {
	// Threshold in [0, 1]. In binary mode probabilities at or above it
	// become fully opaque and everything below fully transparent. In
	// soft mode it is advisory only; the full probability gradient is
	// kept so edges stay smooth.
	Threshold float64

	// Binary switches to a hard cutout with no semi-transparent
	// pixels.
	Binary bool
}

// DefaultOptions returns soft-edge options with DefaultThreshold.
func DefaultOptions() RemovalOptions {
	return RemovalOptions{Threshold: DefaultThreshold}
}

// WithThreshold returns a copy with the given threshold.
func (o RemovalOptions) WithThreshold(threshold float64) RemovalOptions {
	o.Threshold = threshold
	return o
}

// WithBinary returns a copy with binary mode set.
func (o RemovalOptions) WithBinary(binary bool) RemovalOptions {
	o.Binary = binary
	return o
}

// Validate reports ErrInvalidThreshold when the threshold is out of
// range.
func (o RemovalOptions) Validate() error {
	if o.Threshold < 0 || o.Threshold > 1 {
		return fmt.Errorf("%w: %g not in [0, 1]", ErrInvalidThreshold, o.Threshold)
	}
	return nil
}
