package loader

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrFileNotFound is returned when the input path does not name an existing file
	ErrFileNotFound = errors.New("file not found")
	// ErrDecode is returned when the input exists but is not a readable image
	ErrDecode = errors.New("could not decode image")
)

// Loader reads image files and normalises them for the detection pipeline
type Loader struct {
	config Config
}

// Config holds configuration for the image loader
type Config struct {
	SupportedFormats []string
	MinImageSize     int
	AutoOrient       bool
}

// DefaultFormats are the formats the decoder registry can read
var DefaultFormats = []string{"jpeg", "png", "gif", "bmp", "tiff", "webp"}

// New creates a new Loader with default configuration
func New() *Loader {
	return &Loader{
		config: Config{
			SupportedFormats: DefaultFormats,
			MinImageSize:     1,
			AutoOrient:       true,
		},
	}
}

// NewWithConfig creates a new Loader with custom configuration
func NewWithConfig(config Config) *Loader {
	return &Loader{config: config}
}

// LoadImage loads an image from file and converts it to RGB order
func (l *Loader) LoadImage(path string) (*image.NRGBA, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, err := l.LoadImageFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// LoadImageFromReader loads an image from an io.Reader and converts it to RGB order
func (l *Loader) LoadImageFromReader(reader io.Reader) (*image.NRGBA, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	img, err := l.decode(data)
	if err != nil {
		return nil, err
	}

	if err := l.ValidateImage(img); err != nil {
		return nil, err
	}

	return Normalize(img), nil
}

// decode tries the registered decoders first and falls back to libwebp,
// which also reads the extended WebP variants x/image cannot.
func (l *Loader) decode(data []byte) (image.Image, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err == nil {
		if !l.isFormatSupported(format) {
			return nil, fmt.Errorf("%w: unsupported image format: %s", ErrDecode, format)
		}
		img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(l.config.AutoOrient))
		if err == nil {
			return img, nil
		}
		if format != "webp" {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	}

	if l.isFormatSupported("webp") {
		if img, err := webp.Decode(bytes.NewReader(data)); err == nil {
			return img, nil
		}
	}

	return nil, fmt.Errorf("%w: unknown or unsupported format", ErrDecode)
}

// Normalize converts any decoded image to NRGBA with its origin at (0,0).
// This is the one place channel order is fixed; every later stage reads R, G, B in that order.
func Normalize(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// GetImageInfo returns basic information about an image
func GetImageInfo(img image.Image) ImageInfo {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	info := ImageInfo{
		Width:  width,
		Height: height,
		Area:   width * height,
	}
	if height > 0 {
		info.AspectRatio = float64(width) / float64(height)
	}
	return info
}

// ImageInfo contains basic image metadata
type ImageInfo struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspect_ratio"`
	Area        int     `json:"area"`
}

func (l *Loader) isFormatSupported(format string) bool {
	for _, supported := range l.config.SupportedFormats {
		if strings.EqualFold(format, supported) {
			return true
		}
		if strings.EqualFold(supported, "jpg") && strings.EqualFold(format, "jpeg") {
			return true
		}
	}
	return false
}

// ValidateImage checks that an image is not empty and meets the minimum size
func (l *Loader) ValidateImage(img image.Image) error {
	bounds := img.Bounds()
	if bounds.Empty() {
		return fmt.Errorf("%w: image is empty", ErrDecode)
	}
	minSize := l.config.MinImageSize
	if minSize < 1 {
		minSize = 1
	}
	if bounds.Dx() < minSize || bounds.Dy() < minSize {
		return fmt.Errorf("%w: image too small: %dx%d (minimum: %d)",
			ErrDecode, bounds.Dx(), bounds.Dy(), minSize)
	}
	return nil
}
