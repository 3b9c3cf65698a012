package cmd

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkadlec/pagegrid/internal/config"
	"github.com/mkadlec/pagegrid/internal/layout"
)

// addCanvasFlags registers the canvas geometry flags shared by the commands
// that run the packer.
func addCanvasFlags(cmd *cobra.Command) {
	cmd.Flags().IntSlice("canvas", []int{1920, 1080}, "Canvas width and height in pixels")
	cmd.Flags().String("preset", "", "Named canvas preset (overrides --canvas)")
	cmd.Flags().String("layout", "horizontal", "Layout mode: horizontal (rows) or vertical (columns)")
	cmd.Flags().Int("splits", 3, "Bands per page: rows for horizontal, columns for vertical")
	cmd.Flags().Int("gap", 0, "Gap between images in pixels")
	cmd.Flags().Int("max-size", 0, "Maximum image extent along the fill direction (0 = unlimited)")
	cmd.Flags().IntSlice("bg", []int{255, 255, 255}, "Canvas background color as R,G,B values 0-255")
	cmd.Flags().Float64("tolerance", layout.DefaultFitTolerance,
		"Fraction of its ideal size an image may be squeezed to and still join a band")
}

// specFromFlags builds and validates the CanvasSpec for one invocation.
func specFromFlags(cmd *cobra.Command, cfg *config.Config) (layout.CanvasSpec, error) {
	var spec layout.CanvasSpec

	canvas := mustGetIntSlice(cmd, "canvas")
	if len(canvas) != 2 {
		return spec, fmt.Errorf("--canvas needs exactly two values, got %d", len(canvas))
	}
	spec.Width, spec.Height = canvas[0], canvas[1]

	if name := mustGetString(cmd, "preset"); name != "" {
		preset, ok := cfg.Preset(name)
		if !ok {
			return spec, fmt.Errorf("unknown preset %q (available: %s)",
				name, strings.Join(cfg.PresetNames(), ", "))
		}
		spec.Width, spec.Height = preset.Width, preset.Height
	}

	mode, err := layout.ParseLayoutMode(mustGetString(cmd, "layout"))
	if err != nil {
		return spec, err
	}
	spec.Mode = mode

	spec.Splits = mustGetInt(cmd, "splits")
	spec.Gap = mustGetInt(cmd, "gap")
	spec.MaxSize = mustGetInt(cmd, "max-size")
	spec.Tolerance = mustGetFloat64(cmd, "tolerance")

	bg := mustGetIntSlice(cmd, "bg")
	if len(bg) != 3 {
		return spec, fmt.Errorf("--bg needs exactly three values, got %d", len(bg))
	}
	for _, v := range bg {
		if v < 0 || v > 255 {
			return spec, fmt.Errorf("background color values must be 0-255, got %d", v)
		}
	}
	spec.Background = color.RGBA{R: uint8(bg[0]), G: uint8(bg[1]), B: uint8(bg[2]), A: 255}

	if err := spec.Validate(); err != nil {
		return spec, err
	}
	if spec.Degenerate() {
		fmt.Println("Warning: gap leaves no usable canvas space; images will be squeezed into place")
	}
	return spec, nil
}
