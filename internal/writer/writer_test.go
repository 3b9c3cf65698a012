package writer

import (
	"image"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mkadlec/pagegrid/internal/layout"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"jpg", FormatJPEG, false},
		{"jpeg", FormatJPEG, false},
		{"JPG", FormatJPEG, false},
		{"png", FormatPNG, false},
		{"webp", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSavePage(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))

	for _, format := range []string{FormatJPEG, FormatPNG} {
		path, err := SavePage(dir, 3, format, 95, img)
		if err != nil {
			t.Fatalf("SavePage(%s) error = %v", format, err)
		}
		if filepath.Base(path) != "page_003."+format {
			t.Errorf("filename = %s, want page_003.%s", filepath.Base(path), format)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		cfg, name, err := image.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("decoding saved %s page: %v", format, err)
		}
		if cfg.Width != 20 || cfg.Height != 10 {
			t.Errorf("saved page is %dx%d, want 20x10", cfg.Width, cfg.Height)
		}
		wantName := map[string]string{FormatJPEG: "jpeg", FormatPNG: "png"}[format]
		if name != wantName {
			t.Errorf("saved page decoded as %s, want %s", name, wantName)
		}
	}
}

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	records := []layout.PageRecord{
		{
			File: "page_000.jpg",
			Images: []layout.ImageRef{
				{Index: 0, Identifier: "a.jpg"},
				{Index: 1, Identifier: "b.png"},
			},
		},
		{
			File: "page_001.jpg",
			Images: []layout.ImageRef{
				{Index: 2, Identifier: "frame_002.jpg"},
			},
		},
	}

	path, err := WriteManifest(dir, records)
	if err != nil {
		t.Fatalf("WriteManifest() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "page_000.jpg: [0] a.jpg, [1] b.png\npage_001.jpg: [2] frame_002.jpg\n"
	if string(data) != want {
		t.Errorf("manifest content = %q, want %q", string(data), want)
	}

	parsed, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("ReadManifest() error = %v", err)
	}
	if !reflect.DeepEqual(parsed, records) {
		t.Errorf("round trip = %+v, want %+v", parsed, records)
	}
}

func TestReadManifestMissing(t *testing.T) {
	if _, err := ReadManifest(t.TempDir()); err == nil {
		t.Error("expected error for missing manifest")
	}
}
