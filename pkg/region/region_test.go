package region

import (
	"image"
	"image/color"
	"testing"
)

// createTestImage creates an image whose pixels encode their own coordinates
func createTestImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	return img
}

func TestRegionCenter(t *testing.T) {
	region := Region{X: 10, Y: 20, Width: 100, Height: 80}

	centerX, centerY := region.Center()
	if centerX != 60 || centerY != 60 {
		t.Errorf("Expected center (60, 60), got (%d, %d)", centerX, centerY)
	}
}

func TestRegionArea(t *testing.T) {
	region := Region{X: 10, Y: 20, Width: 100, Height: 80}

	if area := region.Area(); area != 8000 {
		t.Errorf("Expected area 8000, got %d", area)
	}
}

func TestCenterCrop(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          Region
	}{
		{"square 200", 200, 200, Region{X: 34, Y: 34, Width: 132, Height: 132}},
		{"capped at 100", 1000, 800, Region{X: 400, Y: 300, Width: 200, Height: 200}},
		{"portrait", 90, 300, Region{X: 15, Y: 120, Width: 60, Height: 60}},
		{"tiny uses half of min side", 2, 2, Region{X: 0, Y: 0, Width: 2, Height: 2}},
		{"odd tiny", 5, 2, Region{X: 1, Y: 0, Width: 2, Height: 2}},
		{"single pixel falls back", 1, 1, Region{X: 0, Y: 0, Width: 1, Height: 1, Fallback: true}},
		{"thin strip falls back", 100, 1, Region{X: 0, Y: 0, Width: 100, Height: 1, Fallback: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CenterCrop(tt.width, tt.height)
			if got != tt.want {
				t.Errorf("CenterCrop(%d, %d) = %+v, want %+v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestCenterCropStaysInBounds(t *testing.T) {
	for w := 1; w <= 40; w++ {
		for h := 1; h <= 40; h++ {
			r := CenterCrop(w, h)
			if r.Area() <= 0 {
				t.Fatalf("%dx%d: empty crop %+v", w, h, r)
			}
			if r.X < 0 || r.Y < 0 || r.X+r.Width > w || r.Y+r.Height > h {
				t.Fatalf("%dx%d: crop %+v exceeds image", w, h, r)
			}
		}
	}
}

func TestNewWithConfig(t *testing.T) {
	e := NewWithConfig(Config{MaxHalfSize: 10, Divisor: 2})

	r := e.CenterCrop(200, 200)
	if r.Width != 20 || r.Height != 20 {
		t.Errorf("Expected 20x20 crop, got %dx%d", r.Width, r.Height)
	}

	// zero values fall back to defaults
	e = NewWithConfig(Config{})
	if e.config.MaxHalfSize != DefaultMaxHalfSize || e.config.Divisor != DefaultDivisor {
		t.Errorf("Expected defaults, got %+v", e.config)
	}
}

func TestExtract(t *testing.T) {
	img := createTestImage(200, 200)

	crop, r := Extract(img)
	bounds := crop.Bounds()
	if bounds.Dx() != r.Width || bounds.Dy() != r.Height {
		t.Errorf("Crop size %dx%d does not match region %dx%d", bounds.Dx(), bounds.Dy(), r.Width, r.Height)
	}

	if got := crop.NRGBAAt(0, 0); got.R != uint8(r.X) || got.G != uint8(r.Y) {
		t.Errorf("Crop origin should be source pixel (%d, %d), got %v", r.X, r.Y, got)
	}
}

func TestExtractOffsetBounds(t *testing.T) {
	img := createTestImage(300, 300).SubImage(image.Rect(50, 50, 250, 250))

	crop, r := Extract(img)
	if r.X != 34 || r.Y != 34 {
		t.Fatalf("Expected region relative to sub-image, got %+v", r)
	}
	if got := crop.NRGBAAt(0, 0); got.R != 84 || got.G != 84 {
		t.Errorf("Expected source pixel (84, 84), got %v", got)
	}
}

func BenchmarkExtract(b *testing.B) {
	img := createTestImage(1920, 1080)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Extract(img)
	}
}
