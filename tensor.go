package rembg

import "fmt"

// Tensor is a channel-major float32 array, the model's input layout:
// Data[c*H*W + y*W + x].
type Tensor struct {
	Channels int
	Height   int
	Width    int
	Data     []float32
}

// Shape returns the tensor shape with a leading batch dimension of 1,
// as expected by ONNX-style runtimes.
func (t *Tensor) Shape() []int64 {
	return []int64{1, int64(t.Channels), int64(t.Height), int64(t.Width)}
}

// RawMap is the un-activated 2D model output (logits), row-major:
// Data[y*W + x].
type RawMap struct {
	Height int
	Width  int
	Data   []float32
}

// NewRawMap builds a RawMap from a runtime output of the given shape.
// Leading dimensions of size 1 (batch, channel) are squeezed away, so
// (H, W), (1, H, W) and (1, 1, H, W) are all accepted. Any other shape
// is an ErrModelOutputShapeMismatch.
func NewRawMap(shape []int64, data []float32) (*RawMap, error) {
	dims := shape
	for len(dims) > 2 && dims[0] == 1 {
		dims = dims[1:]
	}
	if len(dims) != 2 || dims[0] <= 0 || dims[1] <= 0 {
		return nil, fmt.Errorf("%w: got shape %v", ErrModelOutputShapeMismatch, shape)
	}

	h, w := int(dims[0]), int(dims[1])
	if len(data) != h*w {
		return nil, fmt.Errorf("%w: shape %v wants %d values, got %d",
			ErrModelOutputShapeMismatch, shape, h*w, len(data))
	}

	return &RawMap{Height: h, Width: w, Data: data}, nil
}
