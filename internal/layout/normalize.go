package layout

import "image"

// NormalizedImage is the rendered size of one image inside a band, plus the
// visible window of the source. Cross is always the band's fixed cross
// extent; only the along extent and the crop window vary.
type NormalizedImage struct {
	Desc  ImageDescriptor
	Along int // rendered extent along the band's fill direction
	Cross int // rendered extent perpendicular to it, equals the band extent
	Ideal int // unclamped aspect-preserving along extent
	Crop  image.Rectangle
}

// IdealAlong returns the along-axis extent an image would render at to
// exactly fill crossExtent while preserving aspect ratio, rounded half up.
func IdealAlong(desc ImageDescriptor, crossExtent int, mode LayoutMode) int {
	return roundDiv(desc.alongNatural(mode)*crossExtent, desc.crossNatural(mode))
}

// Normalize computes the final rendered size of desc inside a band of the
// given cross extent. alongLimit caps the along-axis extent (pass 0 or a
// negative value for unconstrained); when the cap bites, the visible window
// is center-cropped along the fill direction so the aspect ratio of what
// remains is preserved. Pure function: identical inputs yield identical
// results.
func Normalize(desc ImageDescriptor, crossExtent, alongLimit int, mode LayoutMode) NormalizedImage {
	ideal := IdealAlong(desc, crossExtent, mode)
	if ideal < 1 {
		ideal = 1
	}

	along := ideal
	if alongLimit > 0 && along > alongLimit {
		along = alongLimit
	}
	if along < 1 {
		along = 1
	}

	crop := image.Rect(0, 0, desc.Width, desc.Height)
	if along < ideal {
		// Keep the centered fraction of the source that survives the clamp.
		natural := desc.alongNatural(mode)
		visible := roundDiv(natural*along, ideal)
		if visible < 1 {
			visible = 1
		}
		offset := (natural - visible) / 2
		if mode == Vertical {
			crop = image.Rect(0, offset, desc.Width, offset+visible)
		} else {
			crop = image.Rect(offset, 0, offset+visible, desc.Height)
		}
	}

	return NormalizedImage{
		Desc:  desc,
		Along: along,
		Cross: crossExtent,
		Ideal: ideal,
		Crop:  crop,
	}
}
