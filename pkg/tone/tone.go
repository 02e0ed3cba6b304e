package tone

import (
	"fmt"

	"github.com/menta2k/skintone/pkg/types"
)

// Category is one of the six named skin tones
type Category string

// Skin tone categories, lightest first
const (
	VeryFair Category = "Very Fair"
	Fair     Category = "Fair"
	Medium   Category = "Medium"
	Olive    Category = "Olive"
	Brown    Category = "Brown"
	Dark     Category = "Dark"
)

// ladder maps lower average bounds (exclusive) to categories, evaluated top-down
var ladder = []struct {
	above    float64
	category Category
}{
	{220, VeryFair},
	{190, Fair},
	{160, Medium},
	{120, Olive},
	{90, Brown},
}

// All returns every category, lightest first
func All() []Category {
	return []Category{VeryFair, Fair, Medium, Olive, Brown, Dark}
}

// String returns the category name
func (c Category) String() string {
	return string(c)
}

// Valid reports whether c is one of the six categories
func (c Category) Valid() bool {
	for _, known := range All() {
		if c == known {
			return true
		}
	}
	return false
}

// Parse maps a category name back to its Category
func Parse(name string) (Category, error) {
	c := Category(name)
	if !c.Valid() {
		return "", fmt.Errorf("unknown skin tone %q", name)
	}
	return c, nil
}

// Classify maps a colour to a category by the average of its channels
func Classify(c types.RGB) Category {
	return ClassifyAverage(c.Average())
}

// ClassifyAverage maps an average channel intensity to a category.
// Comparisons are strict, so a value on a boundary falls into the darker bracket.
func ClassifyAverage(avg float64) Category {
	for _, step := range ladder {
		if avg > step.above {
			return step.category
		}
	}
	return Dark
}
