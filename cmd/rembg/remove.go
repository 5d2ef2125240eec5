package main

import (
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chaos-io/rembg"
	"github.com/chaos-io/rembg/util"
)

func newRemoveCmd() *cobra.Command {
	var (
		eng         engineFlags
		input       string
		output      string
		threshold   float64
		binary      bool
		saveMask    bool
		quality     int
		maxSize     int
		cleanBorder bool
		heatmap     string
	)

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the background from a single image",
		Long: `Remove loads an image (local path or http(s) URL), runs the
segmentation model, and writes the cutout as RGBA.

Examples:
  # Soft edges, default threshold
  rembg remove -i photo.jpg -o cutout.png

  # Hard cutout with a stricter threshold
  rembg remove -i photo.jpg -o cutout.png -t 0.7 -b

  # Also keep the grayscale mask next to the output
  rembg remove -i photo.jpg -o cutout.png --save-mask`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer util.Trace("remove")()

			var img image.Image
			var err error
			if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
				img, err = util.DownloadImage(input)
			} else {
				img, err = util.OpenImage(input)
			}
			if err != nil {
				return fmt.Errorf("load image: %w", err)
			}
			img = util.FitWithin(img, maxSize)

			backend, model, err := eng.build()
			if err != nil {
				return err
			}
			defer func() {
				_ = backend.Close()
			}()

			remover := rembg.New(backend, model)
			opts := rembg.DefaultOptions().WithThreshold(threshold).WithBinary(binary)

			result, err := remover.RemoveBackground(cmd.Context(), img, opts)
			if err != nil {
				return err
			}

			out := result.Image
			if cleanBorder {
				out = rembg.CleanStickerBorder(out)
			}
			if err := util.SaveImage(out, output, quality); err != nil {
				return fmt.Errorf("save result: %w", err)
			}
			slog.Info("saved result", "path", output)

			if saveMask {
				maskPath := util.MaskPath(output)
				if err := util.SaveImage(util.WhiteMask(result.Mask), maskPath, quality); err != nil {
					return fmt.Errorf("save mask: %w", err)
				}
				slog.Info("saved mask", "path", maskPath)
			}

			if heatmap != "" {
				vis, err := remover.VisualizeMask(cmd.Context(), img)
				if err != nil {
					return fmt.Errorf("render heatmap: %w", err)
				}
				if err := util.SaveImage(vis, heatmap, quality); err != nil {
					return fmt.Errorf("save heatmap: %w", err)
				}
				slog.Info("saved heatmap", "path", heatmap)
			}
			return nil
		},
	}

	eng.register(cmd)
	cmd.Flags().StringVarP(&input, "input", "i", "", "input image path or URL")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image path (.png, .jpg)")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", rembg.DefaultThreshold, "mask threshold in [0, 1]")
	cmd.Flags().BoolVarP(&binary, "binary", "b", false, "hard cutout without semi-transparency")
	cmd.Flags().BoolVarP(&saveMask, "save-mask", "s", false, "save the mask alongside the output")
	cmd.Flags().IntVarP(&quality, "quality", "q", 95, "JPEG quality (1-100)")
	cmd.Flags().IntVar(&maxSize, "max-size", 0, "downscale inputs whose longest edge exceeds this (0 disables)")
	cmd.Flags().BoolVar(&cleanBorder, "clean-border", false, "draw a soft black outline around the cutout")
	cmd.Flags().StringVar(&heatmap, "heatmap", "", "also save a mask heatmap to this path")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
