package rembg

import "errors"

var (
	// ErrInvalidImage is returned when the source image has a zero
	// width or height.
	ErrInvalidImage = errors.New("invalid image")

	// ErrInvalidThreshold is returned when RemovalOptions.Threshold is
	// outside [0, 1].
	ErrInvalidThreshold = errors.New("invalid threshold")

	// ErrModelOutputShapeMismatch is returned when the inference
	// engine produced an output whose shape cannot be squeezed into a
	// single 2D probability map.
	ErrModelOutputShapeMismatch = errors.New("model output shape mismatch")

	// ErrInference wraps opaque failures surfaced by the inference
	// engine. The pipeline does not retry.
	ErrInference = errors.New("inference failed")
)
