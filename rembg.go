package rembg

import (
	"context"
	"fmt"
	"image"
)

// Engine runs the loaded segmentation network on a prepared input
// tensor. Implementations live in the engine package; a raw output may
// carry extra leading 1-sized dimensions, which the pipeline squeezes.
//
// The engine is the only long-lived collaborator: load it once and
// share it across calls. Implementations must either be reentrant or
// serialize their own inference calls.
type Engine interface {
	Predict(ctx context.Context, input *Tensor) (*RawMap, error)
}

// Rembg binds a loaded engine to a model configuration and exposes the
// full removal pipeline. Safe for concurrent use; every call works on
// its own transient buffers.
type Rembg struct {
	engine Engine
	model  ModelConfig
}

// New creates a remover around a loaded engine.
func New(engine Engine, model ModelConfig) *Rembg {
	return &Rembg{engine: engine, model: model}
}

// Model returns the model configuration the remover was built with.
func (r *Rembg) Model() ModelConfig {
	return r.model
}

// RemoveBackground runs preprocess, inference, postprocess and
// compositing on a single image. Both outputs have exactly the source
// image's dimensions.
func (r *Rembg) RemoveBackground(ctx context.Context, img image.Image, opts RemovalOptions) (*RemovalResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	input, err := Prepare(img, r.model)
	if err != nil {
		return nil, err
	}

	raw, err := r.engine.Predict(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInference, err)
	}
	if raw.Width != r.model.InputWidth || raw.Height != r.model.InputHeight {
		return nil, fmt.Errorf("%w: got %dx%d, model produces %dx%d",
			ErrModelOutputShapeMismatch, raw.Width, raw.Height,
			r.model.InputWidth, r.model.InputHeight)
	}

	mask, err := Finalize(raw, w, h, opts)
	if err != nil {
		return nil, err
	}

	return Compose(img, mask)
}
