package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"portfolio.dev/internal/background"
	"portfolio.dev/internal/services"
)

var (
	renderFrames int
	renderEvery  int
	renderSeed   uint64
	renderWidth  int
	renderHeight int
)

var renderCmd = &cobra.Command{
	Use:   "render <output-dir>",
	Short: "Write PNG frames of the animated background",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir := args[0]
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if renderEvery < 1 {
			renderEvery = 1
		}

		bg := services.NewBackgroundService(cfg.Background, logger.Named("background"))
		width, height := bg.ClampSize(renderWidth, renderHeight)
		seed := bg.Seed(renderSeed)

		surface := background.NewRasterSurface(width, height)
		engine := background.NewEngine(bg.Population(), background.NewRNG(seed), width, height)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Rendering %d frames at %dx%d (seed %d)...\n", renderFrames, width, height, seed)

		written := 0
		for i := 1; i <= renderFrames; i++ {
			engine.Tick(surface)
			if i%renderEvery != 0 {
				continue
			}

			filename := fmt.Sprintf("frame_%04d.png", i)
			if err := writePNG(filepath.Join(outputDir, filename), surface); err != nil {
				return err
			}
			written++
			fmt.Fprintf(out, "  Created %s (%d shooting stars)\n", filename, len(engine.Population().Shooting))
		}

		fmt.Fprintf(out, "Done! %d files\n", written)
		return nil
	},
}

func writePNG(path string, surface *background.RasterSurface) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := surface.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

func init() {
	renderCmd.Flags().IntVar(&renderFrames, "frames", 60, "Number of ticks to simulate")
	renderCmd.Flags().IntVar(&renderEvery, "every", 10, "Write every Nth frame")
	renderCmd.Flags().Uint64Var(&renderSeed, "seed", 0, "Random seed (0 uses the configured seed or the clock)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Frame width (default from config)")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "Frame height (default from config)")
}
