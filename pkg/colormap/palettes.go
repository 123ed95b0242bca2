package colormap

import colorful "github.com/lucasb-eyer/go-colorful"

const defaultPalette = "Greens"

// palettes holds the color stops per palette, light to dark (or low to
// high for the perceptual maps). Stop values follow the matplotlib
// palettes of the same name; GitHub matches the contribution graph.
var palettes = map[string][]colorful.Color{
	"Greens":  stops("#f7fcf5", "#c7e9c0", "#74c476", "#238b45", "#00441b"),
	"Blues":   stops("#f7fbff", "#c6dbef", "#6baed6", "#2171b5", "#08306b"),
	"Reds":    stops("#fff5f0", "#fcbba1", "#fb6a4a", "#cb181d", "#67000d"),
	"Purples": stops("#fcfbfd", "#dadaeb", "#9e9ac8", "#6a51a3", "#3f007d"),
	"Oranges": stops("#fff5eb", "#fdd0a2", "#fd8d3c", "#d94801", "#7f2704"),
	"Greys":   stops("#ffffff", "#d9d9d9", "#969696", "#525252", "#000000"),
	"Viridis": stops("#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"),
	"Plasma":  stops("#0d0887", "#7e03a8", "#cc4778", "#f89540", "#f0f921"),
	"GitHub":  stops("#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"),
}

// stops parses hex color literals. Palette definitions are package
// constants, so a malformed literal is a programming error.
func stops(hexes ...string) []colorful.Color {
	colors := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("colormap: bad palette stop " + h)
		}
		colors[i] = c
	}
	return colors
}
