package rembg

import (
	"fmt"
	"image"
)

// Compose merges the source color channels with the alpha mask into an
// RGBA image, and returns the mask alongside it so callers can inspect
// or reuse it separately. The mask must match the source dimensions
// pixel for pixel; upstream resizing guarantees this inside the
// pipeline.
func Compose(src image.Image, mask *image.Gray) (*RemovalResult, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	mw, mh := mask.Bounds().Dx(), mask.Bounds().Dy()
	if w != mw || h != mh {
		return nil, fmt.Errorf("%w: mask %dx%d does not match source %dx%d",
			ErrInvalidImage, mw, mh, w, h)
	}

	rgba := toNRGBA(src)
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcRow := y * rgba.Stride
		dstRow := y * out.Stride
		maskRow := y * mask.Stride
		for x := 0; x < w; x++ {
			si := srcRow + x*4
			di := dstRow + x*4
			out.Pix[di] = rgba.Pix[si]
			out.Pix[di+1] = rgba.Pix[si+1]
			out.Pix[di+2] = rgba.Pix[si+2]
			out.Pix[di+3] = mask.Pix[maskRow+x]
		}
	}

	gray := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(gray.Pix[y*gray.Stride:y*gray.Stride+w], mask.Pix[y*mask.Stride:y*mask.Stride+w])
	}

	return &RemovalResult{Image: out, Mask: gray}, nil
}
