package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkadlec/pagegrid/internal/config"
	"github.com/mkadlec/pagegrid/internal/layout"
	"github.com/mkadlec/pagegrid/internal/source"
)

var probeCmd = &cobra.Command{
	Use:   "probe <video>",
	Short: "Print video info and the frame budget",
	Long: `Probe a video file with ffprobe and print its dimensions, frame count
and duration, along with how many frames would be extracted to fill the
requested pages under the given canvas settings.`,
	Args: cobra.ExactArgs(1),
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
	addCanvasFlags(probeCmd)

	probeCmd.Flags().Int("pages", 1, "Number of pages to fill with frames")
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	spec, err := specFromFlags(cmd, cfg)
	if err != nil {
		return err
	}

	info, err := source.ProbeVideo(cfg.FFprobe, args[0])
	if err != nil {
		return err
	}

	pages := mustGetInt(cmd, "pages")
	count := layout.EstimateFrameCount(info.Width, info.Height, spec, pages)

	fmt.Printf("Video: %s\n", args[0])
	fmt.Printf("  Dimensions: %dx%d\n", info.Width, info.Height)
	fmt.Printf("  Frames:     %d\n", info.Frames)
	fmt.Printf("  FPS:        %.2f\n", info.FPS)
	fmt.Printf("  Duration:   %.2fs\n", info.Duration)
	fmt.Printf("Frame budget for %d page(s): %d\n", pages, count)
	if info.Frames > 0 && count > info.Frames {
		fmt.Printf("Warning: budget exceeds available frames; extraction would be capped at %d\n", info.Frames)
	}
	return nil
}
