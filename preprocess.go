package rembg

import (
	"fmt"
	"image"
	"image/draw"
)

// Prepare converts a source image into the model's normalized,
// channel-planar input tensor. The image is stretched to the model
// input size regardless of aspect ratio; the network is trained on
// stretched inputs, so no letterboxing or cropping is applied.
func Prepare(img image.Image, cfg ModelConfig) (*Tensor, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: source is %dx%d", ErrInvalidImage, w, h)
	}

	src := toNRGBA(img)

	// Split the interleaved pixels into [0,1] channel planes at the
	// source resolution, then resize each plane down to the model size.
	planes := [3][]float32{}
	for c := range planes {
		planes[c] = make([]float32, w*h)
	}
	for y := 0; y < h; y++ {
		row := y * src.Stride
		for x := 0; x < w; x++ {
			i := row + x*4
			planes[0][y*w+x] = float32(src.Pix[i]) / 255.0
			planes[1][y*w+x] = float32(src.Pix[i+1]) / 255.0
			planes[2][y*w+x] = float32(src.Pix[i+2]) / 255.0
		}
	}

	tw, th := cfg.InputWidth, cfg.InputHeight
	t := &Tensor{
		Channels: 3,
		Height:   th,
		Width:    tw,
		Data:     make([]float32, 3*th*tw),
	}
	for c := 0; c < 3; c++ {
		resized := resizePlane(planes[c], w, h, tw, th)
		mean, std := cfg.Mean[c], cfg.Std[c]
		out := t.Data[c*th*tw : (c+1)*th*tw]
		for i, v := range resized {
			out[i] = (v - mean) / std
		}
	}
	return t, nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Bounds().Min == image.Pt(0, 0) {
		return nrgba
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
