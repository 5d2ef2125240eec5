package rembg

import "image"

// RemovalResult holds the two outputs of a background removal call,
// both at the source image's resolution.
type RemovalResult struct {
	// Image is the source with the computed alpha channel applied.
	Image *image.NRGBA
	// Mask is the standalone grayscale alpha mask.
	Mask *image.Gray
}
