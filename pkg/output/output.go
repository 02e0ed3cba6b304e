// Package output writes and reads the one-line detector result:
//
//	<skin tone>,<r>,<g>,<b>,<#rrggbb>
//
// The line has no header and a fixed field order; it is the only thing the
// detector prints on success.
package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jszwec/csvutil"

	"github.com/menta2k/skintone/pkg/tone"
	"github.com/menta2k/skintone/pkg/types"
)

// Header names the fields of a result line in order
var Header = []string{"skin_tone", "r", "g", "b", "hex"}

type line struct {
	Tone string `csv:"skin_tone"`
	R    int    `csv:"r"`
	G    int    `csv:"g"`
	B    int    `csv:"b"`
	Hex  string `csv:"hex"`
}

// Write emits one result line terminated by a newline
func Write(w io.Writer, c tone.Category, rgb types.RGB) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	enc.AutoHeader = false

	if err := enc.Encode(line{Tone: c.String(), R: rgb.R, G: rgb.G, B: rgb.B, Hex: rgb.Hex()}); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// Format returns the result line without the trailing newline
func Format(c tone.Category, rgb types.RGB) string {
	var sb strings.Builder
	// strings.Builder never fails to write
	_ = Write(&sb, c, rgb)
	return strings.TrimSuffix(sb.String(), "\n")
}

// Parse reads a result line back. The tone must be one of the six categories
// and the hex field must agree with the numeric channels.
func Parse(s string) (tone.Category, types.RGB, error) {
	r := csv.NewReader(strings.NewReader(strings.TrimSpace(s)))
	r.FieldsPerRecord = len(Header)

	dec, err := csvutil.NewDecoder(r, Header...)
	if err != nil {
		return "", types.RGB{}, fmt.Errorf("failed to read result line: %w", err)
	}

	var l line
	if err := dec.Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return "", types.RGB{}, errors.New("empty result line")
		}
		return "", types.RGB{}, fmt.Errorf("failed to parse result line: %w", err)
	}

	c, err := tone.Parse(l.Tone)
	if err != nil {
		return "", types.RGB{}, err
	}

	rgb := types.RGB{R: l.R, G: l.G, B: l.B}
	hex, err := types.ParseHex(l.Hex)
	if err != nil {
		return "", types.RGB{}, fmt.Errorf("invalid hex colour %q: %w", l.Hex, err)
	}
	if hex != rgb {
		return "", types.RGB{}, fmt.Errorf("hex %s does not match %d,%d,%d", l.Hex, l.R, l.G, l.B)
	}

	return c, rgb, nil
}
