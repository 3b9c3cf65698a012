// Package layout computes how an ordered sequence of images flows into
// rows or columns on fixed-size canvas pages. Placement order always equals
// input order; the packer never reorders, skips, or drops an image.
package layout

import (
	"fmt"
	"image"
	"image/color"
)

// LayoutMode selects the direction in which a band fills with images.
type LayoutMode string

const (
	// Horizontal fills left-to-right rows stacked top to bottom.
	Horizontal LayoutMode = "horizontal"
	// Vertical fills top-to-bottom columns placed left to right.
	Vertical LayoutMode = "vertical"
)

// ParseLayoutMode converts a CLI string into a LayoutMode.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch LayoutMode(s) {
	case Horizontal, Vertical:
		return LayoutMode(s), nil
	}
	return "", fmt.Errorf("unknown layout mode %q (supported: horizontal, vertical)", s)
}

// DefaultFitTolerance is the fraction of its ideal extent an image may be
// squeezed to and still be accepted into the current band.
const DefaultFitTolerance = 0.8

// CanvasSpec describes one packing run. It is immutable for the whole run.
type CanvasSpec struct {
	Width      int
	Height     int
	Gap        int        // pixels between images and between bands
	Splits     int        // bands per page (rows for horizontal, columns for vertical)
	Mode       LayoutMode
	MaxSize    int        // optional cap on the along-axis extent of an image, 0 = unset
	Background color.RGBA
	Tolerance  float64 // 0 means DefaultFitTolerance
}

// Validate reports the first configuration error, or nil. Callers are
// expected to validate before packing; the packer itself never errors.
func (s CanvasSpec) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.Splits < 1 {
		return fmt.Errorf("splits must be at least 1, got %d", s.Splits)
	}
	if s.Gap < 0 {
		return fmt.Errorf("gap cannot be negative, got %d", s.Gap)
	}
	if s.MaxSize < 0 {
		return fmt.Errorf("max size cannot be negative, got %d", s.MaxSize)
	}
	if s.Mode != Horizontal && s.Mode != Vertical {
		return fmt.Errorf("unknown layout mode %q", s.Mode)
	}
	if s.Tolerance < 0 || s.Tolerance > 1 {
		return fmt.Errorf("fit tolerance must be within [0, 1], got %g", s.Tolerance)
	}
	return nil
}

// Degenerate reports whether the geometry leaves no usable space for a band,
// e.g. the gap consumes the whole canvas. Packing still makes progress in
// that case (forced placement), but callers should warn the user.
func (s CanvasSpec) Degenerate() bool {
	return s.BandCrossExtent() <= 0 || s.alongExtent() <= s.Gap
}

// alongExtent is the canvas size along the fill direction of a band:
// width for horizontal rows, height for vertical columns.
func (s CanvasSpec) alongExtent() int {
	if s.Mode == Vertical {
		return s.Height
	}
	return s.Width
}

// crossExtent is the canvas size perpendicular to the fill direction.
func (s CanvasSpec) crossExtent() int {
	if s.Mode == Vertical {
		return s.Width
	}
	return s.Height
}

// BandCrossExtent returns the fixed cross-axis size of every band: the
// canvas cross extent minus inter-band gaps, divided evenly across splits.
// A row's height in horizontal mode, a column's width in vertical mode.
func (s CanvasSpec) BandCrossExtent() int {
	return (s.crossExtent() - (s.Splits-1)*s.Gap) / s.Splits
}

func (s CanvasSpec) tolerance() float64 {
	if s.Tolerance == 0 {
		return DefaultFitTolerance
	}
	return s.Tolerance
}

// ImageDescriptor identifies one source image and its natural pixel size.
// Index is assigned in the final input ordering and is the single source of
// truth for placement order.
type ImageDescriptor struct {
	Index      int
	Identifier string
	Width      int
	Height     int
}

func (d ImageDescriptor) alongNatural(mode LayoutMode) int {
	if mode == Vertical {
		return d.Height
	}
	return d.Width
}

func (d ImageDescriptor) crossNatural(mode LayoutMode) int {
	if mode == Vertical {
		return d.Width
	}
	return d.Height
}

// Slot is one occupied rectangle within a band. X/Y/Width/Height are page
// coordinates of the painted area; Crop is the visible window within the
// source image in source pixels (the full image when nothing is cropped).
type Slot struct {
	Image  ImageDescriptor
	X      int
	Y      int
	Width  int
	Height int
	Crop   image.Rectangle
}

// Band is a row (horizontal mode) or column (vertical mode) of slots
// sharing the fixed cross-axis extent.
type Band struct {
	Index       int // position within its page
	CrossOffset int // page offset perpendicular to the fill direction
	CrossExtent int
	Used        int // consumed extent along the fill direction, without trailing gap
	Slots       []Slot
}

// Page is one output canvas holding at most Splits bands.
type Page struct {
	Index int
	Bands []Band
}

// Slots returns the page's slots across all bands in placement order.
func (p Page) Slots() []Slot {
	var out []Slot
	for _, b := range p.Bands {
		out = append(out, b.Slots...)
	}
	return out
}

// Plan is the full packing result, the sole artifact consumed by the
// compositor and the manifest writer.
type Plan struct {
	Spec  CanvasSpec
	Pages []Page
}

// ImageCount returns the total number of placed images.
func (p Plan) ImageCount() int {
	n := 0
	for _, page := range p.Pages {
		for _, band := range page.Bands {
			n += len(band.Slots)
		}
	}
	return n
}

// roundDiv divides two positive integers rounding half up.
func roundDiv(num, den int) int {
	if den == 0 {
		return 0
	}
	return (2*num + den) / (2 * den)
}
