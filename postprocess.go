package rembg

import (
	"fmt"
	"image"
	"math"
)

// Finalize converts the raw model output into an alpha mask at the
// source image's resolution. Four ordered steps: sigmoid activation,
// bilinear resize back to (width, height), threshold policy, 8-bit
// clamp.
//
// In binary mode every output pixel is 0 or 255, split at
// opts.Threshold. In soft mode alpha is round(p*255); the threshold is
// validated but not applied, since a hard cutoff would destroy the
// soft edges that mode exists for.
func Finalize(raw *RawMap, width, height int, opts RemovalOptions) (*image.Gray, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: target is %dx%d", ErrInvalidImage, width, height)
	}

	probs := make([]float32, len(raw.Data))
	for i, v := range raw.Data {
		probs[i] = sigmoid(v)
	}

	resized := resizePlane(probs, raw.Width, raw.Height, width, height)

	mask := image.NewGray(image.Rect(0, 0, width, height))
	thr := float32(opts.Threshold)
	for i, p := range resized {
		if opts.Binary {
			if p >= thr {
				mask.Pix[i] = 255
			}
			continue
		}
		mask.Pix[i] = packAlpha(p)
	}
	return mask, nil
}

func sigmoid(x float32) float32 {
	return float32(1.0 / (1.0 + math.Exp(-float64(x))))
}

// packAlpha rounds a probability to an 8-bit alpha value, clamping so
// out-of-range floats cannot wrap.
func packAlpha(p float32) uint8 {
	a := math.Round(float64(p) * 255.0)
	if a < 0 {
		return 0
	}
	if a > 255 {
		return 255
	}
	return uint8(a)
}
