package region

import (
	"image"

	"github.com/disintegration/imaging"
)

// Default crop parameters. The half size is capped at MaxHalfSize pixels and at
// one Divisor-th of each image dimension.
const (
	DefaultMaxHalfSize = 100
	DefaultDivisor     = 3
)

// Region represents a rectangular region of interest
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`

	// Fallback is set when the computed crop was empty and the whole image is used instead
	Fallback bool `json:"fallback"`
}

// Center returns the center point of the region
func (r Region) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Area returns the area of the region
func (r Region) Area() int {
	return r.Width * r.Height
}

// Rect returns the region as an image.Rectangle
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Extractor computes the center crop most likely to contain skin
type Extractor struct {
	config Config
}

// Config holds configuration for region extraction
type Config struct {
	MaxHalfSize int
	Divisor     int
}

// New creates a new Extractor with default configuration
func New() *Extractor {
	return &Extractor{
		config: Config{
			MaxHalfSize: DefaultMaxHalfSize,
			Divisor:     DefaultDivisor,
		},
	}
}

// NewWithConfig creates a new Extractor with custom configuration
func NewWithConfig(config Config) *Extractor {
	if config.MaxHalfSize <= 0 {
		config.MaxHalfSize = DefaultMaxHalfSize
	}
	if config.Divisor <= 0 {
		config.Divisor = DefaultDivisor
	}
	return &Extractor{config: config}
}

// CenterCrop computes a square crop centered on a width x height image.
// The result is clamped to the image and never empty for a non-empty image.
func (e *Extractor) CenterCrop(width, height int) Region {
	half := minInt(e.config.MaxHalfSize, minInt(height/e.config.Divisor, width/e.config.Divisor))
	if half <= 0 {
		half = minInt(height, width) / 2
	}

	cx, cy := width/2, height/2

	yStart := maxInt(0, cy-half)
	yEnd := minInt(height, cy+half)
	xStart := maxInt(0, cx-half)
	xEnd := minInt(width, cx+half)

	if xEnd <= xStart || yEnd <= yStart {
		return Region{X: 0, Y: 0, Width: width, Height: height, Fallback: true}
	}

	return Region{
		X:      xStart,
		Y:      yStart,
		Width:  xEnd - xStart,
		Height: yEnd - yStart,
	}
}

// Extract crops img to its center region
func (e *Extractor) Extract(img image.Image) (*image.NRGBA, Region) {
	bounds := img.Bounds()
	r := e.CenterCrop(bounds.Dx(), bounds.Dy())
	rect := r.Rect().Add(bounds.Min)
	return imaging.Crop(img, rect), r
}

// CenterCrop computes the default center crop for a width x height image
func CenterCrop(width, height int) Region {
	return New().CenterCrop(width, height)
}

// Extract crops img to its default center region
func Extract(img image.Image) (*image.NRGBA, Region) {
	return New().Extract(img)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
