package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chaos-io/rembg"
	"github.com/chaos-io/rembg/engine"
)

// engineFlags selects and configures the inference backend shared by
// the remove and serve commands.
type engineFlags struct {
	model   string
	remote  string
	ortLib  string
	threads int
}

func (f *engineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.model, "model", "m", "u2net.onnx", "path to the ONNX model file")
	cmd.Flags().StringVar(&f.remote, "remote", "", "base URL of a remote inference service (overrides --model)")
	cmd.Flags().StringVar(&f.ortLib, "ort-lib", "", "path to the onnxruntime shared library")
	cmd.Flags().IntVar(&f.threads, "threads", 4, "intra-op threads for local inference")
}

// build returns the engine and the matching model configuration. The
// u2netp preset is picked by model filename; both variants share the
// same numeric contract.
func (f *engineFlags) build() (engine.Engine, rembg.ModelConfig, error) {
	cfg := rembg.U2Net()
	if strings.Contains(filepath.Base(f.model), "u2netp") {
		cfg = rembg.U2NetP()
	}

	if f.remote != "" {
		return engine.NewRemote(f.remote), cfg, nil
	}

	eng, err := engine.NewONNX(engine.ONNXConfig{
		ModelPath:      f.model,
		LibraryPath:    f.ortLib,
		IntraOpThreads: f.threads,
	})
	if err != nil {
		return nil, cfg, err
	}
	return eng, cfg, nil
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:           "rembg",
		Short:         "Remove image backgrounds with a pretrained saliency model",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newRemoveCmd(), newServeCmd(), newVersionCmd())
	return cmd
}
