// Package fixture writes solid-colour reference images for exercising the detector.
package fixture

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/menta2k/skintone/pkg/types"
)

// Fixture is a named solid colour
type Fixture struct {
	Name  string
	Color types.RGB
}

// Standard returns the three reference skin colours
func Standard() []Fixture {
	return []Fixture{
		{Name: "fair_skin_test", Color: types.RGB{R: 220, G: 190, B: 170}},
		{Name: "medium_skin_test", Color: types.RGB{R: 180, G: 140, B: 120}},
		{Name: "dark_skin_test", Color: types.RGB{R: 100, G: 80, B: 70}},
	}
}

// Solid creates a width x height image filled with c
func Solid(width, height int, c types.RGB) *image.NRGBA {
	return imaging.New(width, height, c.NRGBA())
}

// SaveOptions controls the encoding of saved fixtures
type SaveOptions struct {
	Format   string
	Quality  int
	Lossless bool
}

// DefaultSaveOptions writes lossless PNG so the stored colour is exact
func DefaultSaveOptions() SaveOptions {
	return SaveOptions{Format: "png", Quality: 95, Lossless: true}
}

// Save writes img to path in the requested format
func Save(img image.Image, path string, opts SaveOptions) error {
	switch strings.ToLower(opts.Format) {
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		if err := webp.Encode(f, img, &webp.Options{Lossless: opts.Lossless, Quality: float32(opts.Quality)}); err != nil {
			return fmt.Errorf("failed to encode webp: %w", err)
		}
		return nil
	case "png":
		return imaging.Save(img, path)
	case "jpg", "jpeg":
		return imaging.Save(img, path, imaging.JPEGQuality(opts.Quality))
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}
