package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/chaos-io/rembg"
)

// ONNXConfig configures a local ONNX Runtime session.
type ONNXConfig struct {
	// ModelPath points at the .onnx model file.
	ModelPath string
	// LibraryPath optionally overrides the onnxruntime shared library
	// location. Empty uses the platform default.
	LibraryPath string
	// IntraOpThreads caps intra-op parallelism; 0 lets the runtime
	// decide.
	IntraOpThreads int
}

// ONNX runs the model in-process through ONNX Runtime. The session is
// loaded once and reused across calls; Run is not reentrant, so
// Predict serializes inference with a mutex.
type ONNX struct {
	mu         sync.Mutex
	session    *ort.DynamicAdvancedSession
	inputName  string
	outputName string
}

var (
	ortInitOnce sync.Once
	ortInitErr  error
)

// The onnxruntime environment is process-global and initialized at
// most once; the shared library path must be set before that.
func initRuntime(libraryPath string) error {
	ortInitOnce.Do(func() {
		if libraryPath != "" {
			ort.SetSharedLibraryPath(libraryPath)
		}
		ortInitErr = ort.InitializeEnvironment()
	})
	return ortInitErr
}

// NewONNX loads the model file and creates an inference session.
func NewONNX(cfg ONNXConfig) (*ONNX, error) {
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, fmt.Errorf("model not found: %w", err)
	}
	if err := initRuntime(cfg.LibraryPath); err != nil {
		return nil, fmt.Errorf("initialize onnxruntime: %w", err)
	}

	inputs, outputs, err := ort.GetInputOutputInfo(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("inspect model: %w", err)
	}
	if len(inputs) == 0 || len(outputs) == 0 {
		return nil, fmt.Errorf("model %s declares no inputs or outputs", cfg.ModelPath)
	}

	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("new session options: %w", err)
	}
	defer func() {
		_ = options.Destroy()
	}()
	if cfg.IntraOpThreads > 0 {
		if err := options.SetIntraOpNumThreads(cfg.IntraOpThreads); err != nil {
			return nil, fmt.Errorf("set intra-op threads: %w", err)
		}
	}

	// U2-Net style models emit several side outputs; only the first
	// (the fused saliency map) is requested.
	inputName := inputs[0].Name
	outputName := outputs[0].Name
	session, err := ort.NewDynamicAdvancedSession(cfg.ModelPath,
		[]string{inputName}, []string{outputName}, options)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	slog.Info("loaded onnx model", "path", cfg.ModelPath, "input", inputName, "output", outputName)

	return &ONNX{
		session:    session,
		inputName:  inputName,
		outputName: outputName,
	}, nil
}

func (o *ONNX) Predict(ctx context.Context, input *rembg.Tensor) (*rembg.RawMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tensor, err := ort.NewTensor(ort.NewShape(input.Shape()...), input.Data)
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}
	defer func() {
		_ = tensor.Destroy()
	}()

	outputs := []ort.Value{nil}
	o.mu.Lock()
	err = o.session.Run([]ort.Value{tensor}, outputs)
	o.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("run session: %w", err)
	}

	out, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, fmt.Errorf("output %s is not a float32 tensor", o.outputName)
	}
	defer func() {
		_ = out.Destroy()
	}()

	// The runtime owns the output buffer; copy before Destroy frees it.
	data := make([]float32, len(out.GetData()))
	copy(data, out.GetData())

	return rembg.NewRawMap(out.GetShape(), data)
}

// Close releases the session. The process-global runtime environment
// stays up for other engines.
func (o *ONNX) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.session.Destroy()
}
