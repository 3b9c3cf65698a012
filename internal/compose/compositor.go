// Package compose paints placement plans onto pixel canvases.
package compose

import (
	"fmt"
	"image"
	stddraw "image/draw"
	"sync"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/image/draw"

	"github.com/mkadlec/pagegrid/internal/layout"
)

// Loader supplies decoded pixel data for a placed image by its global index.
type Loader interface {
	Load(index int) (image.Image, error)
}

// SaveFunc persists one rendered page. Each page gets exactly one call;
// calls may arrive from different goroutines but never twice for the same
// page index.
type SaveFunc func(pageIndex int, img *image.RGBA) error

// Render composes a single page: a background-filled canvas with every
// slot's crop window scaled into its placement rectangle. Pages share no
// mutable state, so independent pages can be rendered concurrently.
func Render(page layout.Page, spec layout.CanvasSpec, src Loader) (*image.RGBA, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height))
	stddraw.Draw(canvas, canvas.Bounds(), image.NewUniform(spec.Background), image.Point{}, stddraw.Src)

	for _, slot := range page.Slots() {
		img, err := src.Load(slot.Image.Index)
		if err != nil {
			return nil, fmt.Errorf("failed to load image %d (%s): %w",
				slot.Image.Index, slot.Image.Identifier, err)
		}
		dst := image.Rect(slot.X, slot.Y, slot.X+slot.Width, slot.Y+slot.Height)
		crop := slot.Crop.Add(img.Bounds().Min)
		draw.CatmullRom.Scale(canvas, dst, img, crop, draw.Src, nil)
	}
	return canvas, nil
}

// RenderAll renders every page of the plan and hands each to save. workers
// caps the number of pages composed concurrently; values below 1 run
// sequentially. The first error wins; remaining pages may still be in
// flight when it is reported, but every started page finishes.
func RenderAll(plan layout.Plan, src Loader, workers int, save SaveFunc) error {
	if len(plan.Pages) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}

	bar := progressbar.NewOptions(len(plan.Pages),
		progressbar.OptionSetDescription("Rendering pages"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("pages"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	semaphore := make(chan struct{}, workers)
	errChan := make(chan error, len(plan.Pages))
	var wg sync.WaitGroup

	for _, page := range plan.Pages {
		wg.Add(1)
		go func(page layout.Page) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			img, err := Render(page, plan.Spec, src)
			if err == nil {
				err = save(page.Index, img)
			}
			if err != nil {
				errChan <- fmt.Errorf("page %d: %w", page.Index, err)
			}
			_ = bar.Add(1)
		}(page)
	}

	wg.Wait()
	close(errChan)
	_ = bar.Finish()
	fmt.Println()

	return <-errChan
}
