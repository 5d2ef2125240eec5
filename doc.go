// Package rembg removes the background from still images using a
// pretrained saliency segmentation network.
//
// The package owns the deterministic numeric pipeline around the
// network: resizing and normalizing the source image into the model's
// input tensor, and turning the raw model output back into an alpha
// mask and a composited RGBA image. Running the network itself is
// delegated to an Engine implementation (see the engine package).
package rembg
