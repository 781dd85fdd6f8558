// Package colormap provides named color schemes mapping normalized
// values to colors.
package colormap

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colormap maps a normalized index in [0, 1] to a color.
type Colormap interface {
	// Name returns the registry name of the colormap.
	Name() string
	// At returns the color at position t. Inputs outside [0, 1] are
	// clamped to the endpoints.
	At(t float64) color.RGBA
	// AtIndex returns the i-th anchor color (wraps around).
	AtIndex(i int) color.RGBA
}

// Linear is a gradient colormap that interpolates linearly between
// evenly spaced color stops.
type Linear struct {
	name  string
	stops []color.RGBA
}

// NewLinear creates a gradient colormap from ordered color stops.
// It panics if fewer than two stops are given.
func NewLinear(name string, stops []color.RGBA) Linear {
	if len(stops) < 2 {
		panic("colormap: Linear requires at least two stops")
	}
	return Linear{name: name, stops: stops}
}

// NewLinearHex creates a gradient colormap from hex color strings
// (e.g. "#ffffe5"). It panics on malformed input; stop tables are
// compile-time data.
func NewLinearHex(name string, hexes ...string) Linear {
	stops := make([]color.RGBA, len(hexes))
	for i, h := range hexes {
		stops[i] = mustHex(h)
	}
	return NewLinear(name, stops)
}

// Name returns the colormap name.
func (c Linear) Name() string { return c.name }

// At returns the color at position t (0-1).
func (c Linear) At(t float64) color.RGBA {
	if t <= 0 {
		return c.stops[0]
	}
	if t >= 1 {
		return c.stops[len(c.stops)-1]
	}

	idx := t * float64(len(c.stops)-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= len(c.stops) {
		upper = len(c.stops) - 1
	}

	frac := idx - float64(lower)
	return lerp(c.stops[lower], c.stops[upper], frac)
}

// AtIndex returns the i-th stop color (wraps around).
func (c Linear) AtIndex(i int) color.RGBA {
	return c.stops[abs(i)%len(c.stops)]
}

// Categorical is a discrete palette of distinct colors.
type Categorical struct {
	name   string
	colors []color.RGBA
}

// NewCategorical creates a discrete palette. It panics if no colors
// are given.
func NewCategorical(name string, colors []color.RGBA) Categorical {
	if len(colors) == 0 {
		panic("colormap: Categorical requires at least one color")
	}
	return Categorical{name: name, colors: colors}
}

// Name returns the palette name.
func (c Categorical) Name() string { return c.name }

// At returns the bucket color containing position t.
func (c Categorical) At(t float64) color.RGBA {
	if t <= 0 {
		return c.colors[0]
	}
	idx := int(t * float64(len(c.colors)))
	if idx >= len(c.colors) {
		idx = len(c.colors) - 1
	}
	return c.colors[idx]
}

// AtIndex returns the i-th color (wraps around).
func (c Categorical) AtIndex(i int) color.RGBA {
	return c.colors[abs(i)%len(c.colors)]
}

func lerp(c1, c2 color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c1.R) + t*(float64(c2.R)-float64(c1.R))),
		G: uint8(float64(c1.G) + t*(float64(c2.G)-float64(c1.G))),
		B: uint8(float64(c1.B) + t*(float64(c2.B)-float64(c1.B))),
		A: uint8(float64(c1.A) + t*(float64(c2.A)-float64(c1.A))),
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func mustHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("colormap: bad hex color " + s + ": " + err.Error())
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Hex returns the #rrggbb representation of a color, useful for JSON
// payloads and legends.
func Hex(c color.RGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
