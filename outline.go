package rembg

import (
	"image"
	"math"
)

const (
	outlineAlphaInside = 16  // alpha at or above this counts as sticker
	outlineStroke      = 6.0 // full-strength outline width in pixels
	outlineFeather     = 1.5 // soft falloff beyond the stroke
)

// CleanStickerBorder draws a soft black outline outside the cutout and
// composites the sticker over it. The outline reaches outlineStroke
// pixels from the subject at full strength and fades out over
// outlineFeather more, which hides the ragged half-transparent fringe
// a soft mask leaves on outer arcs. The sticker's own RGB and alpha
// are kept intact.
func CleanStickerBorder(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	inside := make([]bool, w*h)
	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			inside[y*w+x] = img.Pix[row+x*4+3] >= outlineAlphaInside
		}
	}

	dist := chamferDistance(inside, w, h)

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := y * img.Stride
		outRow := y * out.Stride
		for x := 0; x < w; x++ {
			si := row + x*4
			di := outRow + x*4

			var outlineAlpha float64
			if !inside[y*w+x] {
				d := dist[y*w+x]
				a01 := 1.0
				if d > outlineStroke {
					a01 = 1.0 - smoothstep(outlineStroke, outlineStroke+outlineFeather, d)
				}
				a := math.Round(a01 * 255.0)
				// Kill tiny tails so no lone half-transparent pixel
				// survives outside the feather.
				if a < 3 {
					a = 0
				}
				outlineAlpha = a / 255.0
			}

			// Standard "over": sticker on top of the black outline.
			topAlpha := float64(img.Pix[si+3]) / 255.0
			outAlpha := topAlpha + outlineAlpha*(1.0-topAlpha)
			for c := 0; c < 3; c++ {
				var v float64
				if outAlpha > 0 {
					// Outline RGB is black, so only the top layer
					// contributes color.
					v = float64(img.Pix[si+c]) * topAlpha / outAlpha
				}
				out.Pix[di+c] = uint8(math.Round(v))
			}
			out.Pix[di+3] = uint8(math.Round(outAlpha * 255.0))
		}
	}
	return out
}

// chamferDistance approximates the L2 distance from every outside
// pixel to the nearest inside pixel using a two-pass 3x3 chamfer
// (orthogonal cost 1, diagonal cost sqrt 2). The round metric keeps
// arcs smooth where a chessboard norm would show corners.
func chamferDistance(inside []bool, w, h int) []float64 {
	const diag = math.Sqrt2

	dist := make([]float64, w*h)
	for i, in := range inside {
		if in {
			dist[i] = 0
		} else {
			dist[i] = math.Inf(1)
		}
	}

	relax := func(i int, neighbor float64) {
		if neighbor < dist[i] {
			dist[i] = neighbor
		}
	}

	// Forward pass: top-left to bottom-right.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if x > 0 {
				relax(i, dist[i-1]+1)
			}
			if y > 0 {
				relax(i, dist[i-w]+1)
				if x > 0 {
					relax(i, dist[i-w-1]+diag)
				}
				if x < w-1 {
					relax(i, dist[i-w+1]+diag)
				}
			}
		}
	}

	// Backward pass: bottom-right to top-left.
	for y := h - 1; y >= 0; y-- {
		for x := w - 1; x >= 0; x-- {
			i := y*w + x
			if x < w-1 {
				relax(i, dist[i+1]+1)
			}
			if y < h-1 {
				relax(i, dist[i+w]+1)
				if x < w-1 {
					relax(i, dist[i+w+1]+diag)
				}
				if x > 0 {
					relax(i, dist[i+w-1]+diag)
				}
			}
		}
	}

	return dist
}

func smoothstep(e0, e1, x float64) float64 {
	t := (x - e0) / (e1 - e0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}
