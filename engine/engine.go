// Package engine provides inference backends for the rembg pipeline:
// a local ONNX Runtime session and a remote HTTP inference service.
package engine

import "github.com/chaos-io/rembg"

// Engine is a closeable inference backend. The pipeline itself only
// needs rembg.Engine; hosts use Close to release the session when the
// application shuts down.
type Engine interface {
	rembg.Engine
	Close() error
}
