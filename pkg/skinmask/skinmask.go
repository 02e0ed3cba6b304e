package skinmask

import (
	"image"

	"github.com/menta2k/skintone/pkg/types"
)

// Bounds is an inclusive per-channel range in R, G, B order
type Bounds struct {
	Lower [3]uint8 `json:"lower"`
	Upper [3]uint8 `json:"upper"`
}

// DefaultBounds keeps pixels with G >= 20 and B >= 70. Red is unconstrained.
var DefaultBounds = Bounds{
	Lower: [3]uint8{0, 20, 70},
	Upper: [3]uint8{255, 255, 255},
}

// Contains reports whether the colour lies inside the bounds
func (b Bounds) Contains(r, g, bl uint8) bool {
	return r >= b.Lower[0] && r <= b.Upper[0] &&
		g >= b.Lower[1] && g <= b.Upper[1] &&
		bl >= b.Lower[2] && bl <= b.Upper[2]
}

// Filter isolates candidate skin pixels in a region
type Filter struct {
	bounds Bounds
}

// New creates a Filter with the default skin bounds
func New() *Filter {
	return &Filter{bounds: DefaultBounds}
}

// NewWithBounds creates a Filter with custom bounds
func NewWithBounds(bounds Bounds) *Filter {
	return &Filter{bounds: bounds}
}

// Bounds returns the bounds used by the filter
func (f *Filter) Bounds() Bounds {
	return f.bounds
}

// Apply returns a copy of img where every pixel outside the bounds is zeroed
func (f *Filter) Apply(img *image.NRGBA) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	w, h := bounds.Dx(), bounds.Dy()

	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+w*4]
		dst := out.Pix[y*out.Stride : y*out.Stride+w*4]
		for i := 0; i < len(src); i += 4 {
			if f.bounds.Contains(src[i], src[i+1], src[i+2]) {
				copy(dst[i:i+4], src[i:i+4])
			}
		}
	}

	return out
}

// Pixels returns the skin candidates of img as a flat pixel set.
// Zeroed pixels are dropped after masking; if nothing is left the full unmasked
// region is returned and fallback is true.
func (f *Filter) Pixels(img *image.NRGBA) (pixels []types.RGB, fallback bool) {
	masked := Flatten(f.Apply(img))

	pixels = masked[:0]
	for _, p := range masked {
		if !p.HasZeroChannel() {
			pixels = append(pixels, p)
		}
	}

	if len(pixels) == 0 {
		return Flatten(img), true
	}
	return pixels, false
}

// Flatten lists every pixel of img in row-major order
func Flatten(img *image.NRGBA) []types.RGB {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]types.RGB, 0, w*h)

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for i := 0; i < len(row); i += 4 {
			pixels = append(pixels, types.RGB{R: int(row[i]), G: int(row[i+1]), B: int(row[i+2])})
		}
	}

	return pixels
}
