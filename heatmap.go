package rembg

import (
	"context"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

const heatmapGamma = 1.2

type colorStop struct {
	pos     float64
	r, g, b uint8
}

// Gradient from cold to hot: black, navy, blue, purple, red, orange,
// yellow, white.
var heatmapStops = []colorStop{
	{0.00, 0, 0, 0},
	{0.15, 0, 0, 64},
	{0.30, 0, 0, 255},
	{0.45, 128, 0, 192},
	{0.60, 255, 0, 0},
	{0.75, 255, 128, 0},
	{0.90, 255, 255, 0},
	{1.00, 255, 255, 255},
}

// VisualizeMask runs the model on img and renders the activated mask
// as a heatmap at the source resolution. Debugging aid for judging
// model and threshold choices.
func (r *Rembg) VisualizeMask(ctx context.Context, img image.Image) (*image.NRGBA, error) {
	b := img.Bounds()

	input, err := Prepare(img, r.model)
	if err != nil {
		return nil, err
	}
	raw, err := r.engine.Predict(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInference, err)
	}
	return Heatmap(raw, b.Dx(), b.Dy()), nil
}

// Heatmap renders the activated probability map as an opaque
// thermal-style visualization at (width, height), for inspecting what
// the model actually saw. Gamma > 1 hardens the picture slightly.
func Heatmap(raw *RawMap, width, height int) *image.NRGBA {
	// 256-level LUT over the gamma-corrected gradient.
	var lut [256][3]uint8
	for i := range lut {
		t := math.Pow(float64(i)/255.0, heatmapGamma)
		lut[i] = heatmapColor(t)
	}

	heat := image.NewNRGBA(image.Rect(0, 0, raw.Width, raw.Height))
	for y := 0; y < raw.Height; y++ {
		row := y * heat.Stride
		for x := 0; x < raw.Width; x++ {
			s := sigmoid(raw.Data[y*raw.Width+x])
			idx := int(math.Round(float64(s) * 255.0))
			if idx > 255 {
				idx = 255
			}
			c := lut[idx]
			i := row + x*4
			heat.Pix[i] = c[0]
			heat.Pix[i+1] = c[1]
			heat.Pix[i+2] = c[2]
			heat.Pix[i+3] = 255
		}
	}

	if width == raw.Width && height == raw.Height {
		return heat
	}

	// Visualization only, so a high-quality image-space scaler is fine
	// here; the mask itself always goes through resizePlane.
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), heat, heat.Bounds(), draw.Over, nil)
	return dst
}

func heatmapColor(t float64) [3]uint8 {
	if t <= 0 {
		s := heatmapStops[0]
		return [3]uint8{s.r, s.g, s.b}
	}
	for i := 1; i < len(heatmapStops); i++ {
		s0, s1 := heatmapStops[i-1], heatmapStops[i]
		if t <= s1.pos {
			local := 0.0
			if s1.pos > s0.pos {
				local = (t - s0.pos) / (s1.pos - s0.pos)
			}
			return [3]uint8{
				lerp8(s0.r, s1.r, local),
				lerp8(s0.g, s1.g, local),
				lerp8(s0.b, s1.b, local),
			}
		}
	}
	s := heatmapStops[len(heatmapStops)-1]
	return [3]uint8{s.r, s.g, s.b}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
