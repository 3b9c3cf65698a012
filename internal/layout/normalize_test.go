package layout

import (
	"image"
	"testing"
)

func TestIdealAlong(t *testing.T) {
	tests := []struct {
		name     string
		desc     ImageDescriptor
		cross    int
		mode     LayoutMode
		expected int
	}{
		{
			name:     "square image horizontal",
			desc:     ImageDescriptor{Width: 100, Height: 100},
			cross:    150,
			mode:     Horizontal,
			expected: 150,
		},
		{
			name:     "wide image horizontal",
			desc:     ImageDescriptor{Width: 200, Height: 100},
			cross:    100,
			mode:     Horizontal,
			expected: 200,
		},
		{
			name: "rounds half up",
			// 3:2 aspect at cross 3 gives width 4.5, which rounds to 5.
			desc:     ImageDescriptor{Width: 3, Height: 2},
			cross:    3,
			mode:     Horizontal,
			expected: 5,
		},
		{
			name: "rounds down below half",
			// 100:30 aspect at cross 1 gives 0.3, which rounds to 0.
			desc:     ImageDescriptor{Width: 100, Height: 300},
			cross:    1,
			mode:     Horizontal,
			expected: 0,
		},
		{
			name: "vertical mode uses height as along axis",
			// Column width 100 scales a 100x200 portrait to height 200.
			desc:     ImageDescriptor{Width: 100, Height: 200},
			cross:    100,
			mode:     Vertical,
			expected: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IdealAlong(tt.desc, tt.cross, tt.mode)
			if got != tt.expected {
				t.Errorf("IdealAlong() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestNormalizeUnconstrained(t *testing.T) {
	desc := ImageDescriptor{Width: 200, Height: 100}
	norm := Normalize(desc, 100, 0, Horizontal)

	if norm.Along != 200 || norm.Cross != 100 {
		t.Errorf("render size = %dx%d, want 200x100", norm.Along, norm.Cross)
	}
	if norm.Crop != image.Rect(0, 0, 200, 100) {
		t.Errorf("crop = %v, want full image", norm.Crop)
	}
}

func TestNormalizeCenterCrop(t *testing.T) {
	tests := []struct {
		name      string
		desc      ImageDescriptor
		cross     int
		limit     int
		mode      LayoutMode
		wantAlong int
		wantCrop  image.Rectangle
	}{
		{
			name: "horizontal clamp crops width from center",
			// Ideal 200 clamped to 150: visible 150/200 of 200px = 150px,
			// centered at offset 25.
			desc:      ImageDescriptor{Width: 200, Height: 100},
			cross:     100,
			limit:     150,
			mode:      Horizontal,
			wantAlong: 150,
			wantCrop:  image.Rect(25, 0, 175, 100),
		},
		{
			name: "vertical clamp crops height from center",
			// Ideal height 200 clamped to 100: crop window y 50..150.
			desc:      ImageDescriptor{Width: 100, Height: 200},
			cross:     100,
			limit:     100,
			mode:      Vertical,
			wantAlong: 100,
			wantCrop:  image.Rect(0, 50, 100, 150),
		},
		{
			name: "limit above ideal leaves image untouched",
			desc:      ImageDescriptor{Width: 100, Height: 100},
			cross:     100,
			limit:     500,
			mode:      Horizontal,
			wantAlong: 100,
			wantCrop:  image.Rect(0, 0, 100, 100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			norm := Normalize(tt.desc, tt.cross, tt.limit, tt.mode)
			if norm.Along != tt.wantAlong {
				t.Errorf("Along = %d, want %d", norm.Along, tt.wantAlong)
			}
			if norm.Cross != tt.cross {
				t.Errorf("Cross = %d, want %d", norm.Cross, tt.cross)
			}
			if norm.Crop != tt.wantCrop {
				t.Errorf("Crop = %v, want %v", norm.Crop, tt.wantCrop)
			}
		})
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	desc := ImageDescriptor{Index: 3, Identifier: "x.jpg", Width: 1234, Height: 567}
	a := Normalize(desc, 310, 400, Horizontal)
	b := Normalize(desc, 310, 400, Horizontal)
	if a != b {
		t.Errorf("Normalize is not deterministic: %+v vs %+v", a, b)
	}
}
