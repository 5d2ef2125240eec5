package rembg

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func TestPrepareRejectsEmptyImage(t *testing.T) {
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, 0, 10),
		image.Rect(0, 0, 10, 0),
		image.Rect(0, 0, 0, 0),
	} {
		_, err := Prepare(image.NewNRGBA(r), U2Net())
		if !errors.Is(err, ErrInvalidImage) {
			t.Errorf("bounds %v: want ErrInvalidImage, got %v", r, err)
		}
	}
}

func TestPrepareShapeAndLayout(t *testing.T) {
	cfg := U2Net()
	img := image.NewNRGBA(image.Rect(0, 0, 13, 7))

	got, err := Prepare(img, cfg)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if got.Channels != 3 || got.Height != cfg.InputHeight || got.Width != cfg.InputWidth {
		t.Errorf("shape = (%d, %d, %d), want (3, %d, %d)",
			got.Channels, got.Height, got.Width, cfg.InputHeight, cfg.InputWidth)
	}
	if len(got.Data) != 3*cfg.InputHeight*cfg.InputWidth {
		t.Errorf("data length = %d", len(got.Data))
	}
}

func TestPrepareNormalization(t *testing.T) {
	cfg := U2Net()

	// A uniform image resizes to itself, so every plane must hold the
	// normalized constant for its channel.
	img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			img.Set(x, y, color.NRGBA{R: 255, G: 128, B: 0, A: 255})
		}
	}

	got, err := Prepare(img, cfg)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	plane := cfg.InputHeight * cfg.InputWidth
	wants := [3]float32{
		(1.0 - cfg.Mean[0]) / cfg.Std[0],
		(128.0/255.0 - cfg.Mean[1]) / cfg.Std[1],
		(0.0 - cfg.Mean[2]) / cfg.Std[2],
	}
	for c := 0; c < 3; c++ {
		for _, i := range []int{0, plane / 2, plane - 1} {
			v := got.Data[c*plane+i]
			if math.Abs(float64(v-wants[c])) > 1e-5 {
				t.Errorf("channel %d index %d: want %v, got %v", c, i, wants[c], v)
			}
		}
	}
}

func TestTensorShape(t *testing.T) {
	tensor := &Tensor{Channels: 3, Height: 320, Width: 320}
	shape := tensor.Shape()
	want := []int64{1, 3, 320, 320}
	for i := range want {
		if shape[i] != want[i] {
			t.Fatalf("shape = %v, want %v", shape, want)
		}
	}
}
