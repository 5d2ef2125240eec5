package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chaos-io/rembg"
	"github.com/chaos-io/rembg/server"
)

func newServeCmd() *cobra.Command {
	var (
		eng       engineFlags
		addr      string
		outputDir string
		resultTTL time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve background removal over HTTP",
		Long: `Serve loads the model once and exposes it at POST /api/remove.

The endpoint accepts a multipart "image" field plus optional
"threshold", "binary" and "format" (png, jpeg, mask) fields.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, model, err := eng.build()
			if err != nil {
				return err
			}
			defer func() {
				_ = backend.Close()
			}()

			if outputDir != "" {
				if err := os.MkdirAll(outputDir, 0o755); err != nil {
					return err
				}
			}

			srv := server.New(rembg.New(backend, model), server.Config{
				Addr:      addr,
				OutputDir: outputDir,
				ResultTTL: resultTTL,
			})
			return srv.Run()
		},
	}

	eng.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":8188", "listen address")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "persist results into this directory")
	cmd.Flags().DurationVar(&resultTTL, "result-ttl", time.Hour, "how long persisted results are kept")

	return cmd
}
