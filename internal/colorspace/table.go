// Package colorspace holds the static table of recognized color spaces:
// component arity and per-component numeric ranges. Pure data, no behavior
// beyond lookups.
package colorspace

import "sort"

// Range bounds one component. Unbounded components (Lab-like a/b, chroma)
// are never range-checked.
type Range struct {
	Min       float64
	Max       float64
	Unbounded bool
}

// Space describes one color space. HueIndex marks the component that carries
// a hue angle; hue uses the half-open range [0, 360), so the nominal Max of
// that column is exclusive. HueIndex is -1 when no component is a hue.
type Space struct {
	Name       string
	Components int
	Ranges     []Range
	HueIndex   int
}

func unit() []Range {
	return []Range{{Min: 0, Max: 1}, {Min: 0, Max: 1}, {Min: 0, Max: 1}}
}

var spaces = map[string]Space{
	"srgb":         {Name: "srgb", Components: 3, Ranges: unit(), HueIndex: -1},
	"srgb-linear":  {Name: "srgb-linear", Components: 3, Ranges: unit(), HueIndex: -1},
	"display-p3":   {Name: "display-p3", Components: 3, Ranges: unit(), HueIndex: -1},
	"a98-rgb":      {Name: "a98-rgb", Components: 3, Ranges: unit(), HueIndex: -1},
	"prophoto-rgb": {Name: "prophoto-rgb", Components: 3, Ranges: unit(), HueIndex: -1},
	"rec2020":      {Name: "rec2020", Components: 3, Ranges: unit(), HueIndex: -1},
	"xyz-d65":      {Name: "xyz-d65", Components: 3, Ranges: unit(), HueIndex: -1},
	"xyz-d50":      {Name: "xyz-d50", Components: 3, Ranges: unit(), HueIndex: -1},
	"hsl": {
		Name:       "hsl",
		Components: 3,
		Ranges:     []Range{{Min: 0, Max: 360}, {Min: 0, Max: 100}, {Min: 0, Max: 100}},
		HueIndex:   0,
	},
	"hwb": {
		Name:       "hwb",
		Components: 3,
		Ranges:     []Range{{Min: 0, Max: 360}, {Min: 0, Max: 100}, {Min: 0, Max: 100}},
		HueIndex:   0,
	},
	"lab": {
		Name:       "lab",
		Components: 3,
		Ranges:     []Range{{Min: 0, Max: 100}, {Unbounded: true}, {Unbounded: true}},
		HueIndex:   -1,
	},
	"lch": {
		Name:       "lch",
		Components: 3,
		Ranges:     []Range{{Min: 0, Max: 100}, {Unbounded: true}, {Min: 0, Max: 360}},
		HueIndex:   2,
	},
	"oklab": {
		Name:       "oklab",
		Components: 3,
		Ranges:     []Range{{Min: 0, Max: 1}, {Unbounded: true}, {Unbounded: true}},
		HueIndex:   -1,
	},
	"oklch": {
		Name:       "oklch",
		Components: 3,
		Ranges:     []Range{{Min: 0, Max: 1}, {Unbounded: true}, {Min: 0, Max: 360}},
		HueIndex:   2,
	},
}

// Lookup returns the space named name.
func Lookup(name string) (Space, bool) {
	s, ok := spaces[name]
	return s, ok
}

// SupportedNames returns all space identifiers, sorted, for error messages.
func SupportedNames() []string {
	names := make([]string, 0, len(spaces))
	for name := range spaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
