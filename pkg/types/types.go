package types

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel colour in red-green-blue order
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Average returns the mean of the three channels
func (c RGB) Average() float64 {
	return float64(c.R+c.G+c.B) / 3
}

// HasZeroChannel reports whether any channel is zero.
// Masked-out pixels are zeroed, so this is how they are recognised after flattening.
func (c RGB) HasZeroChannel() bool {
	return c.R == 0 || c.G == 0 || c.B == 0
}

// Hex formats the colour as #rrggbb
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// Colorful converts to a go-colorful colour with channels in [0,1]
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(clamp8(c.R)) / 255,
		G: float64(clamp8(c.G)) / 255,
		B: float64(clamp8(c.B)) / 255,
	}
}

// NRGBA returns an opaque color.NRGBA
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(clamp8(c.R)), G: uint8(clamp8(c.G)), B: uint8(clamp8(c.B)), A: 255}
}

// ParseHex parses a #rrggbb string
func ParseHex(s string) (RGB, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, err
	}
	r, g, b := col.RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
