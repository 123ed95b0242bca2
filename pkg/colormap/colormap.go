// Package colormap provides the named color palettes used to shade
// heatmap cells.
//
// A [Colormap] interpolates between a fixed sequence of color stops in
// Lab space, which keeps perceived brightness changing evenly across the
// scale. Palettes are looked up by name with [Parse]; appending "_r" to a
// name selects the reversed palette, mirroring the matplotlib convention
// the palette names come from.
package colormap

import (
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/thoellrich/july/pkg/errors"
)

// Colormap maps a normalized value in [0, 1] to a color.
type Colormap struct {
	name  string
	stops []colorful.Color
}

// Name returns the palette name, including a "_r" suffix for reversed
// palettes.
func (m Colormap) Name() string {
	return m.name
}

// At returns the color at position t. Values outside [0, 1] are clamped.
func (m Colormap) At(t float64) colorful.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	segments := len(m.stops) - 1
	pos := t * float64(segments)
	i := int(pos)
	if i >= segments {
		return m.stops[segments]
	}
	frac := pos - float64(i)
	if frac == 0 {
		return m.stops[i]
	}
	return m.stops[i].BlendLab(m.stops[i+1], frac).Clamped()
}

// Hex returns the color at position t as a "#rrggbb" string.
func (m Colormap) Hex(t float64) string {
	return m.At(t).Hex()
}

// Reversed returns the palette with its stop order inverted. Reversing
// twice restores the original palette and name.
func (m Colormap) Reversed() Colormap {
	stops := make([]colorful.Color, len(m.stops))
	for i, s := range m.stops {
		stops[len(stops)-1-i] = s
	}
	name := m.name + reversedSuffix
	if base, ok := strings.CutSuffix(m.name, reversedSuffix); ok {
		name = base
	}
	return Colormap{name: name, stops: stops}
}

const reversedSuffix = "_r"

// Parse looks up a palette by name, case-insensitively. A "_r" suffix
// selects the reversed variant. Unknown names yield an INVALID_PALETTE
// error listing the available palettes.
func Parse(name string) (Colormap, error) {
	base, reversed := strings.CutSuffix(name, reversedSuffix)

	for canonical, stops := range palettes {
		if strings.EqualFold(canonical, base) {
			m := Colormap{name: canonical, stops: stops}
			if reversed {
				return m.Reversed(), nil
			}
			return m, nil
		}
	}
	return Colormap{}, errors.New(errors.ErrCodeInvalidPalette,
		"unknown palette %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Names returns the canonical palette names, sorted.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the default palette, Greens.
func Default() Colormap {
	return Colormap{name: defaultPalette, stops: palettes[defaultPalette]}
}
