package util

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"
)

// DownloadImage fetches and decodes an image from an http(s) URL.
func DownloadImage(url string) (image.Image, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	imgData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(imgData))
	return img, err
}

// OpenImage decodes a local image file.
func OpenImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	img, _, err := image.Decode(file)
	return img, err
}

// SaveImage encodes img to path based on its extension. PNG keeps the
// alpha channel; JPEG cannot carry one, so the image is flattened onto
// white first and encoded at the given quality (1-100).
func SaveImage(img image.Image, path string, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(f, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, FlattenOnWhite(img), &jpeg.Options{Quality: quality})
	default:
		return fmt.Errorf("unsupported image format: %s", filepath.Ext(path))
	}
}

// FlattenOnWhite blends the image over a white background, discarding
// transparency.
func FlattenOnWhite(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	src := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(src.Pix); i += 4 {
		a := float64(src.Pix[i+3]) / 255.0
		out.Pix[i] = uint8(float64(src.Pix[i])*a + 255.0*(1.0-a))
		out.Pix[i+1] = uint8(float64(src.Pix[i+1])*a + 255.0*(1.0-a))
		out.Pix[i+2] = uint8(float64(src.Pix[i+2])*a + 255.0*(1.0-a))
		out.Pix[i+3] = 255
	}
	return out
}

// FitWithin downscales the image so its longest edge is at most
// maxSize, keeping the aspect ratio. Images already within the limit
// are returned unchanged.
func FitWithin(img image.Image, maxSize int) image.Image {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	longest := max(w, h)

	if maxSize <= 0 || longest <= maxSize {
		return img
	}

	scale := float64(maxSize) / float64(longest)
	newW := uint(float64(w) * scale)
	newH := uint(float64(h) * scale)
	return resize.Resize(newW, newH, img, resize.Lanczos3)
}

// WhiteMask renders a grayscale mask as a white RGBA image whose alpha
// channel carries the mask values, so image viewers show the cutout
// shape directly.
func WhiteMask(mask *image.Gray) *image.NRGBA {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := y * out.Stride
		for x := 0; x < w; x++ {
			i := row + x*4
			out.Pix[i] = 255
			out.Pix[i+1] = 255
			out.Pix[i+2] = 255
			out.Pix[i+3] = mask.Pix[y*mask.Stride+x]
		}
	}
	return out
}

// MaskPath derives the companion mask filename for an output path:
// out/result.png -> out/result_mask.png.
func MaskPath(output string) string {
	ext := filepath.Ext(output)
	stem := strings.TrimSuffix(filepath.Base(output), ext)
	if ext == "" {
		ext = ".png"
	}
	return filepath.Join(filepath.Dir(output), stem+"_mask"+ext)
}
