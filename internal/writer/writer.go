// Package writer persists rendered pages and the layout manifest.
package writer

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkadlec/pagegrid/internal/layout"
)

// ManifestFileName is the layout manifest written next to the pages.
const ManifestFileName = "image_layout.txt"

// Formats supported for page output.
const (
	FormatJPEG = "jpg"
	FormatPNG  = "png"
)

// ParseFormat validates an output format flag value.
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(s) {
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	}
	return "", fmt.Errorf("unsupported output format %q (supported: jpg, png)", s)
}

// SavePage encodes one rendered page into dir under its canonical
// page_NNN filename and returns the file path. quality applies to JPEG
// output only.
func SavePage(dir string, pageIndex int, format string, quality int, img image.Image) (string, error) {
	path := filepath.Join(dir, layout.PageFileName(pageIndex, format))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case FormatPNG:
		err = png.Encode(f, img)
	default:
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: quality})
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return path, nil
}

// WriteManifest writes the per-page layout records to image_layout.txt in
// dir, one line per page in page order.
func WriteManifest(dir string, records []layout.PageRecord) (string, error) {
	path := filepath.Join(dir, ManifestFileName)

	var sb strings.Builder
	for _, rec := range records {
		sb.WriteString(rec.Line())
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return path, nil
}

// ReadManifest parses an image_layout.txt file back into page records, for
// the preview server. Lines that do not match the manifest format are
// skipped.
func ReadManifest(dir string) ([]layout.PageRecord, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var records []layout.PageRecord
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		file, rest, ok := strings.Cut(line, ": ")
		if !ok || !strings.HasPrefix(file, "page_") {
			continue
		}
		rec := layout.PageRecord{File: file}
		for _, part := range strings.Split(rest, ", ") {
			var ref layout.ImageRef
			if _, err := fmt.Sscanf(part, "[%d]", &ref.Index); err != nil {
				continue
			}
			if _, ident, ok := strings.Cut(part, "] "); ok {
				ref.Identifier = ident
			}
			rec.Images = append(rec.Images, ref)
		}
		records = append(records, rec)
	}
	return records, nil
}
