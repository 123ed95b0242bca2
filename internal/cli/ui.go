package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan = lipgloss.Color("36")  // Teal - primary headings
	colorGray = lipgloss.Color("245") // Gray - secondary text
)

var (
	// styleTitle for section headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleDim for secondary text such as palette hints.
	styleDim = lipgloss.NewStyle().Foreground(colorGray)
)

// swatch renders a horizontal strip of colored blocks, one per hex
// color.
func swatch(hexes []string) string {
	var s string
	for _, hex := range hexes {
		s += lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
	}
	return s
}
