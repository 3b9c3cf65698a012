package layout

import "math"

// Pack arranges descriptors onto pages, strictly in input order with no
// lookahead. Every descriptor is placed exactly once: an image that cannot
// fit anywhere still occupies a band alone rather than being skipped.
// An empty input yields an empty plan.
func Pack(descs []ImageDescriptor, spec CanvasSpec) Plan {
	p := newPacker(spec)
	for _, d := range descs {
		p.place(d)
	}
	p.finish()
	return Plan{Spec: spec, Pages: p.pages}
}

type packer struct {
	spec      CanvasSpec
	along     int // canvas extent along the band fill direction
	bandCross int
	tol       float64

	pages []Page
	page  Page
	band  Band
}

func newPacker(spec CanvasSpec) *packer {
	bandCross := spec.BandCrossExtent()
	if bandCross < 1 {
		// Degenerate geometry (gap swallows the canvas). Clamp so every
		// image still gets a nonzero band and packing terminates.
		bandCross = 1
	}
	return &packer{
		spec:      spec,
		along:     spec.alongExtent(),
		bandCross: bandCross,
		tol:       spec.tolerance(),
		band:      Band{CrossExtent: bandCross},
	}
}

// available returns the remaining along-axis space in the current band,
// accounting for the gap that would precede the next image.
func (p *packer) available() int {
	if len(p.band.Slots) == 0 {
		return p.along
	}
	return p.along - p.band.Used - p.spec.Gap
}

// place finds a band for one image, closing bands and pages as needed.
func (p *packer) place(d ImageDescriptor) {
	for {
		ideal := IdealAlong(d, p.bandCross, p.spec.Mode)
		if ideal < 1 {
			ideal = 1
		}
		needed := ideal
		if p.spec.MaxSize > 0 && needed > p.spec.MaxSize {
			needed = p.spec.MaxSize
		}

		avail := p.available()
		if len(p.band.Slots) == 0 {
			// A fresh band always takes the image. When even the full band
			// is too narrow the image is squeezed (center-cropped) to
			// whatever is there: order is preserved over cosmetic fit.
			p.placeSlot(d, needed, avail)
			return
		}

		minAccept := int(math.Ceil(p.tol * float64(needed)))
		if minAccept < 1 {
			minAccept = 1
		}
		if avail >= minAccept {
			p.placeSlot(d, needed, avail)
			return
		}
		p.closeBand()
	}
}

// placeSlot appends the image to the current band, rendered at the smaller
// of its needed extent and the available space.
func (p *packer) placeSlot(d ImageDescriptor, needed, avail int) {
	limit := needed
	if avail > 0 && avail < limit {
		limit = avail
	}
	norm := Normalize(d, p.bandCross, limit, p.spec.Mode)

	alongOffset := p.band.Used
	if len(p.band.Slots) > 0 {
		alongOffset += p.spec.Gap
	}

	slot := Slot{Image: d, Crop: norm.Crop}
	if p.spec.Mode == Vertical {
		slot.X = p.band.CrossOffset
		slot.Y = alongOffset
		slot.Width = norm.Cross
		slot.Height = norm.Along
	} else {
		slot.X = alongOffset
		slot.Y = p.band.CrossOffset
		slot.Width = norm.Along
		slot.Height = norm.Cross
	}

	p.band.Slots = append(p.band.Slots, slot)
	p.band.Used = alongOffset + norm.Along
}

// closeBand finalizes the current band and opens the next one, starting a
// new page when the band cap is reached. A page is never reopened.
func (p *packer) closeBand() {
	if len(p.band.Slots) > 0 {
		p.page.Bands = append(p.page.Bands, p.band)
	}
	next := p.band.Index + 1
	if next >= p.spec.Splits {
		p.closePage()
		next = 0
	}
	p.band = Band{
		Index:       next,
		CrossOffset: next * (p.bandCross + p.spec.Gap),
		CrossExtent: p.bandCross,
	}
}

func (p *packer) closePage() {
	if len(p.page.Bands) > 0 {
		p.page.Index = len(p.pages)
		p.pages = append(p.pages, p.page)
	}
	p.page = Page{}
}

// finish flushes the trailing partial band and page once input is exhausted.
func (p *packer) finish() {
	if len(p.band.Slots) > 0 {
		p.page.Bands = append(p.page.Bands, p.band)
		p.band = Band{}
	}
	p.closePage()
}
