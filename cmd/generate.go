package cmd

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mkadlec/pagegrid/internal/compose"
	"github.com/mkadlec/pagegrid/internal/config"
	"github.com/mkadlec/pagegrid/internal/layout"
	"github.com/mkadlec/pagegrid/internal/source"
	"github.com/mkadlec/pagegrid/internal/writer"
)

var generateCmd = &cobra.Command{
	Use:   "generate <input>",
	Short: "Generate collage pages from images or a video",
	Long: `Generate canvas pages from a directory of images or from a video file.
Directory inputs are taken in filename order; video inputs are probed first
and exactly enough frames are extracted to fill the requested pages.
Pages are written as page_NNN files plus an image_layout.txt manifest.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addCanvasFlags(generateCmd)

	generateCmd.Flags().StringP("output", "o", "", "Output directory (default from PAGEGRID_OUTPUT or image_pages)")
	generateCmd.Flags().String("format", "jpg", "Page file format: jpg or png")
	generateCmd.Flags().Int("quality", 0, "JPEG quality 1-100 (default from PAGEGRID_QUALITY or 95)")
	generateCmd.Flags().Int("workers", 0, "Parallel page renders (default from PAGEGRID_WORKERS or 4)")
	generateCmd.Flags().Int("pages", 1, "For video input: number of pages to fill with frames")
	generateCmd.Flags().Bool("keep-frames", false, "For video input: keep the extracted frame files")
}

func runGenerate(cmd *cobra.Command, args []string) error {
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

	outputDir := mustGetString(cmd, "output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	quality := mustGetInt(cmd, "quality")
	if quality == 0 {
		quality = cfg.Quality
	}
	workers := mustGetInt(cmd, "workers")
	if workers == 0 {
		workers = cfg.Workers
	}

	set, cleanup, err := loadInput(input, spec, cfg,
		mustGetInt(cmd, "pages"), mustGetBool(cmd, "keep-frames"))
	if err != nil {
		return err
	}
	defer cleanup()
	fmt.Printf("Loaded %d images\n", set.Len())

	plan := layout.Pack(set.Descriptors(), spec)
	if len(plan.Pages) == 0 {
		fmt.Println("Nothing to do: no pages produced")
		return nil
	}
	fmt.Printf("Packed %d images onto %d pages\n", plan.ImageCount(), len(plan.Pages))

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	err = compose.RenderAll(plan, set, workers, func(pageIndex int, img *image.RGBA) error {
		_, err := writer.SavePage(outputDir, pageIndex, format, quality, img)
		return err
	})
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	manifestPath, err := writer.WriteManifest(outputDir, layout.ManifestRecords(plan, format))
	if err != nil {
		return err
	}
	fmt.Printf("Layout information written to: %s\n", manifestPath)
	fmt.Println("Done!")
	return nil
}

// loadInput builds the ordered image set from a directory or a video file.
// The returned cleanup removes extracted video frames unless keepFrames is
// set; for directories it is a no-op.
func loadInput(input string, spec layout.CanvasSpec, cfg *config.Config, pages int, keepFrames bool) (*source.Set, func(), error) {
	noop := func() {}

	stat, err := os.Stat(input)
	if err != nil {
		return nil, noop, fmt.Errorf("cannot read input path: %w", err)
	}

	if stat.IsDir() {
		fmt.Printf("Loading images from %s...\n", input)
		set, err := source.ScanDirectory(input)
		return set, noop, err
	}

	info, err := source.ProbeVideo(cfg.FFprobe, input)
	if err != nil {
		return nil, noop, err
	}
	fmt.Printf("Video: %dx%d, %d frames, %.2f fps\n", info.Width, info.Height, info.Frames, info.FPS)

	count := layout.EstimateFrameCount(info.Width, info.Height, spec, pages)
	if info.Frames > 0 && count > info.Frames {
		fmt.Printf("Warning: video has only %d frames, need %d for %d pages\n", info.Frames, count, pages)
		count = info.Frames
	}
	fmt.Printf("Extracting %d frames...\n", count)

	frameDir := filepath.Join(os.TempDir(), "pagegrid-"+uuid.NewString())
	set, err := source.ExtractFrames(cfg.FFmpeg, input, info, count, frameDir)
	if err != nil {
		os.RemoveAll(frameDir)
		return nil, noop, err
	}

	if keepFrames {
		fmt.Printf("Extracted frames kept in %s\n", frameDir)
		return set, noop, nil
	}
	return set, func() { os.RemoveAll(frameDir) }, nil
}
