// Package source supplies ordered image descriptor sequences to the layout
// core, from a directory of image files or from video frames extracted with
// ffmpeg. The core never sees a file that failed to decode.
package source

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mkadlec/pagegrid/internal/layout"
)

// supportedExtensions lists the image formats the scanner picks up.
// Decoders for all of them are registered via the blank imports above.
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// Set is an ordered, probed collection of source images. Descriptor order is
// fixed at scan time; pixel data is loaded lazily per image so a large input
// directory does not exhaust file handles or memory up front.
type Set struct {
	items []item
}

type item struct {
	path string
	desc layout.ImageDescriptor
}

// ScanDirectory builds a Set from the image files in dir, ordered by
// filename with numeric collation so frame_2 sorts before frame_10. Files
// that cannot be decoded are skipped with a warning. Returns an error when
// the directory is unreadable or contains no usable images.
func ScanDirectory(dir string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}

	c := collate.New(language.Und, collate.Numeric)
	sort.Slice(names, func(i, j int) bool {
		return c.CompareString(names[i], names[j]) < 0
	})

	set := &Set{}
	for _, name := range names {
		path := filepath.Join(dir, name)
		w, h, err := probeDimensions(path)
		if err != nil {
			fmt.Printf("Warning: skipping %s: %v\n", name, err)
			continue
		}
		set.items = append(set.items, item{
			path: path,
			desc: layout.ImageDescriptor{
				Index:      len(set.items),
				Identifier: name,
				Width:      w,
				Height:     h,
			},
		})
	}

	if len(set.items) == 0 {
		return nil, fmt.Errorf("no images found in %s", dir)
	}
	return set, nil
}

// probeDimensions reads an image header without decoding pixel data.
func probeDimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}
	return cfg.Width, cfg.Height, nil
}

// Len returns the number of images in the set.
func (s *Set) Len() int {
	return len(s.items)
}

// Descriptors returns the ordered descriptor sequence for the layout core.
func (s *Set) Descriptors() []layout.ImageDescriptor {
	descs := make([]layout.ImageDescriptor, len(s.items))
	for i, it := range s.items {
		descs[i] = it.desc
	}
	return descs
}

// Load decodes the full pixel data for the image at the given global index.
func (s *Set) Load(index int) (image.Image, error) {
	if index < 0 || index >= len(s.items) {
		return nil, fmt.Errorf("image index %d out of range", index)
	}
	it := s.items[index]

	f, err := os.Open(it.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", it.path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", it.path, err)
	}
	return img, nil
}
