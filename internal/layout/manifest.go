package layout

import (
	"fmt"
	"strings"
)

// ImageRef identifies one placed image within a manifest record.
type ImageRef struct {
	Index      int    `json:"index"`
	Identifier string `json:"identifier"`
}

// PageRecord lists the images composed onto one output page, in placement
// order across all of the page's bands.
type PageRecord struct {
	File   string     `json:"file"`
	Images []ImageRef `json:"images"`
}

// PageFileName returns the output filename for a page: zero-padded 3-digit
// index, sequential from 0.
func PageFileName(index int, format string) string {
	return fmt.Sprintf("page_%03d.%s", index, format)
}

// ManifestRecords is a pure transformation of a plan into per-page manifest
// records; no pixel data is touched.
func ManifestRecords(plan Plan, format string) []PageRecord {
	records := make([]PageRecord, 0, len(plan.Pages))
	for _, page := range plan.Pages {
		rec := PageRecord{File: PageFileName(page.Index, format)}
		for _, slot := range page.Slots() {
			rec.Images = append(rec.Images, ImageRef{
				Index:      slot.Image.Index,
				Identifier: slot.Image.Identifier,
			})
		}
		records = append(records, rec)
	}
	return records
}

// Line renders one manifest record in the layout file format:
// "page_000.jpg: [0] first.jpg, [1] second.jpg".
func (r PageRecord) Line() string {
	parts := make([]string, len(r.Images))
	for i, img := range r.Images {
		parts[i] = fmt.Sprintf("[%d] %s", img.Index, img.Identifier)
	}
	return fmt.Sprintf("%s: %s", r.File, strings.Join(parts, ", "))
}
