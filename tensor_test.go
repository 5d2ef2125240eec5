package rembg

import (
	"errors"
	"testing"
)

func TestNewRawMapSqueezesLeadingOnes(t *testing.T) {
	data := make([]float32, 6)
	for _, shape := range [][]int64{
		{2, 3},
		{1, 2, 3},
		{1, 1, 2, 3},
	} {
		raw, err := NewRawMap(shape, data)
		if err != nil {
			t.Fatalf("shape %v: %v", shape, err)
		}
		if raw.Height != 2 || raw.Width != 3 {
			t.Errorf("shape %v: got %dx%d, want 2x3", shape, raw.Width, raw.Height)
		}
	}
}

func TestNewRawMapRejectsBadShapes(t *testing.T) {
	for _, c := range []struct {
		shape []int64
		n     int
	}{
		{[]int64{2, 2, 3}, 12},   // real extra dimension, not a batch
		{[]int64{6}, 6},          // 1D
		{[]int64{0, 3}, 0},       // empty axis
		{[]int64{1, 1, 2, 3}, 5}, // data length mismatch
	} {
		_, err := NewRawMap(c.shape, make([]float32, c.n))
		if !errors.Is(err, ErrModelOutputShapeMismatch) {
			t.Errorf("shape %v: want ErrModelOutputShapeMismatch, got %v", c.shape, err)
		}
	}
}
