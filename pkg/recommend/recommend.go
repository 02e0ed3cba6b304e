// Package recommend holds the clothing colour advice for each skin tone.
//
// Presentation layers that only receive the tone name from the detector output
// look the advice up here with LookupName.
package recommend

import "github.com/menta2k/skintone/pkg/tone"

// Record is the advice shown for one skin tone
type Record struct {
	Description   string `json:"description"`
	ColorsToWear  string `json:"colors_to_wear"`
	ColorsToAvoid string `json:"colors_to_avoid"`
	Neutrals      string `json:"neutrals"`
}

var table = map[tone.Category]Record{
	tone.VeryFair: {
		Description:   "Your skin has a porcelain or ivory appearance with cool undertones.",
		ColorsToWear:  "Deep blues, emerald greens, ruby reds, and rich purples enhance your complexion.",
		ColorsToAvoid: "Pale yellows, oranges, and beige can wash you out.",
		Neutrals:      "Navy, charcoal gray, and pure white work well as neutrals.",
	},
	tone.Fair: {
		Description:   "Your skin has a light appearance with either cool or warm undertones.",
		ColorsToWear:  "Jewel tones like sapphire blue, emerald green, and ruby red. Pastels also work well.",
		ColorsToAvoid: "Orange-based colors and very bright yellows may overwhelm your complexion.",
		Neutrals:      "Light gray, navy, and soft white are excellent neutral choices.",
	},
	tone.Medium: {
		Description:   "Your skin has a balanced tone that's neither too light nor too dark.",
		ColorsToWear:  "Most colors complement your skin tone well. Earth tones, warm reds, and olive greens are particularly flattering.",
		ColorsToAvoid: "Very pale colors might not create enough contrast with your skin.",
		Neutrals:      "Khaki, camel, and all shades of gray work well.",
	},
	tone.Olive: {
		Description:   "Your skin has a greenish-yellow undertone that tans easily.",
		ColorsToWear:  "Rich, warm colors like coral, terracotta, and mustard yellow. Deep purples and forest greens also work well.",
		ColorsToAvoid: "Neon colors and pastel pinks may clash with your undertones.",
		Neutrals:      "Cream, camel, and chocolate brown are excellent neutrals.",
	},
	tone.Brown: {
		Description:   "Your skin has a rich brown tone with warm undertones.",
		ColorsToWear:  "Bright, vibrant colors like cobalt blue, fuchsia, and emerald green. Warm earth tones also look great.",
		ColorsToAvoid: "Muddy browns that are too close to your skin tone may not create enough contrast.",
		Neutrals:      "White, cream, and navy create beautiful contrast.",
	},
	tone.Dark: {
		Description:   "Your skin has a deep, rich tone with warm or neutral undertones.",
		ColorsToWear:  "Bold, bright colors like royal blue, hot pink, and bright orange create beautiful contrast.",
		ColorsToAvoid: "Dark browns that are too close to your skin tone may not provide enough contrast.",
		Neutrals:      "White and light beige create striking contrast, while dark navy adds depth.",
	},
}

// Fallback is returned by LookupName for names outside the six categories
var Fallback = Record{
	Description:   "Your unique skin tone works well with a variety of colors.",
	ColorsToWear:  "Experiment with both warm and cool tones to find what you feel most confident in.",
	ColorsToAvoid: "Colors that are too similar to your skin tone may not provide enough contrast.",
	Neutrals:      "Classic neutrals like black, white, and navy are universally flattering.",
}

// Lookup returns the advice for a category
func Lookup(c tone.Category) Record {
	if r, ok := table[c]; ok {
		return r
	}
	return Fallback
}

// LookupName returns the advice for a tone name as printed by the detector.
// Unknown names get Fallback and false.
func LookupName(name string) (Record, bool) {
	c, err := tone.Parse(name)
	if err != nil {
		return Fallback, false
	}
	return table[c], true
}

// Table returns a copy of the full advice table
func Table() map[tone.Category]Record {
	out := make(map[tone.Category]Record, len(table))
	for c, r := range table {
		out[c] = r
	}
	return out
}
