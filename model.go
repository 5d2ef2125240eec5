package rembg

// ModelConfig describes the numeric contract of a pretrained
// segmentation model: the fixed input size and the per-channel
// statistics used to normalize pixels. Different model variants expect
// different statistics, so these are configuration rather than
// constants baked into the preprocessor.
type ModelConfig struct {
	Name        string
	InputWidth  int
	InputHeight int

	// Mean and Std are applied per RGB channel as (v/255 - mean) / std.
	Mean [3]float32
	Std  [3]float32
}

// U2Net returns the configuration for the standard u2net.onnx model:
// 320x320 inputs normalized with ImageNet statistics.
func U2Net() ModelConfig {
	return ModelConfig{
		Name:        "u2net",
		InputWidth:  320,
		InputHeight: 320,
		Mean:        [3]float32{0.485, 0.456, 0.406},
		Std:         [3]float32{0.229, 0.224, 0.225},
	}
}

// U2NetP returns the configuration for the lightweight u2netp variant.
// It shares the input contract with U2Net; only the weights differ.
func U2NetP() ModelConfig {
	cfg := U2Net()
	cfg.Name = "u2netp"
	return cfg
}
