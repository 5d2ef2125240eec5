package rembg

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestComposeCopiesColorAndAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.Set(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 90), B: 200, A: 255})
		}
	}
	mask := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range mask.Pix {
		mask.Pix[i] = uint8(i * 30)
	}

	result, err := Compose(src, mask)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	if result.Image.Bounds() != src.Bounds() || result.Mask.Bounds() != src.Bounds() {
		t.Fatalf("output bounds %v / %v, want %v", result.Image.Bounds(), result.Mask.Bounds(), src.Bounds())
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			got := result.Image.NRGBAAt(x, y)
			want := src.NRGBAAt(x, y)
			if got.R != want.R || got.G != want.G || got.B != want.B {
				t.Errorf("(%d,%d): RGB changed: %v -> %v", x, y, want, got)
			}
			if got.A != mask.GrayAt(x, y).Y {
				t.Errorf("(%d,%d): alpha = %d, want %d", x, y, got.A, mask.GrayAt(x, y).Y)
			}
			if result.Mask.GrayAt(x, y) != mask.GrayAt(x, y) {
				t.Errorf("(%d,%d): mask copy differs", x, y)
			}
		}
	}

	// The returned mask is an independent copy.
	result.Mask.Pix[0] = 99
	if mask.Pix[0] == 99 {
		t.Error("Compose aliases the input mask")
	}
}

func TestComposeSizeMismatch(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	mask := image.NewGray(image.Rect(0, 0, 3, 4))
	if _, err := Compose(src, mask); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("want ErrInvalidImage, got %v", err)
	}
}
