package layout

// EstimateFrameCount estimates how many frames must be extracted from a
// video to fill the requested number of pages, using the first frame's
// dimensions as representative for every frame. pages below 1 is treated
// as 1. The result is always at least 1.
func EstimateFrameCount(frameWidth, frameHeight int, spec CanvasSpec, pages int) int {
	if pages < 1 {
		pages = 1
	}

	bandCross := spec.BandCrossExtent()
	if bandCross < 1 {
		bandCross = 1
	}

	desc := ImageDescriptor{Width: frameWidth, Height: frameHeight}
	ideal := IdealAlong(desc, bandCross, spec.Mode)
	if ideal < 1 {
		ideal = 1
	}

	perBand := spec.alongExtent() / (ideal + spec.Gap)
	if perBand < 1 {
		perBand = 1
	}

	return perBand * spec.Splits * pages
}
