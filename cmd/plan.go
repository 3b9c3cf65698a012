package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkadlec/pagegrid/internal/config"
	"github.com/mkadlec/pagegrid/internal/layout"
	"github.com/mkadlec/pagegrid/internal/source"
	"github.com/mkadlec/pagegrid/internal/writer"
)

var planCmd = &cobra.Command{
	Use:   "plan <input>",
	Short: "Preview the page layout without rendering",
	Long: `Compute the packing plan for a directory of images or a video file and
print the resulting manifest to stdout. No pages are rendered and no files
are written. For video input the plan is simulated from the first frame's
dimensions without extracting any frames.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
	addCanvasFlags(planCmd)

	planCmd.Flags().String("format", "jpg", "Page file format used in manifest names: jpg or png")
	planCmd.Flags().Int("pages", 1, "For video input: number of pages to fill with frames")
}

func runPlan(cmd *cobra.Command, args []string) error {
	input := args[0]
	cfg := config.Load()

	spec, err := specFromFlags(cmd, cfg)
	if err != nil {
		return err
	}
	format, err := writer.ParseFormat(mustGetString(cmd, "format"))
	if err != nil {
		return err
	}

	descs, err := planDescriptors(input, spec, cfg, mustGetInt(cmd, "pages"))
	if err != nil {
		return err
	}

	plan := layout.Pack(descs, spec)
	fmt.Printf("%d images on %d pages:\n", plan.ImageCount(), len(plan.Pages))
	for _, rec := range layout.ManifestRecords(plan, format) {
		fmt.Println(rec.Line())
	}
	return nil
}

// planDescriptors returns the descriptor sequence a generate run would see,
// without touching pixel data. Video frames are simulated from the first
// frame's dimensions, since the budgeter sizes every frame alike anyway.
func planDescriptors(input string, spec layout.CanvasSpec, cfg *config.Config, pages int) ([]layout.ImageDescriptor, error) {
	stat, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("cannot read input path: %w", err)
	}

	if stat.IsDir() {
		set, err := source.ScanDirectory(input)
		if err != nil {
			return nil, err
		}
		return set.Descriptors(), nil
	}

	info, err := source.ProbeVideo(cfg.FFprobe, input)
	if err != nil {
		return nil, err
	}
	count := layout.EstimateFrameCount(info.Width, info.Height, spec, pages)
	if info.Frames > 0 && count > info.Frames {
		count = info.Frames
	}

	descs := make([]layout.ImageDescriptor, count)
	for i := range descs {
		descs[i] = layout.ImageDescriptor{
			Index:      i,
			Identifier: fmt.Sprintf("frame_%03d.jpg", i),
			Width:      info.Width,
			Height:     info.Height,
		}
	}
	return descs, nil
}
