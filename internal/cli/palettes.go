package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoellrich/july/pkg/colormap"
)

// newPalettesCmd creates the palettes command, which lists the available
// color palettes with a color swatch per entry.
func newPalettesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List available color palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render("Palettes"))
			for _, name := range colormap.Names() {
				cmap, err := colormap.Parse(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %-10s %s\n", name, swatch(sampleHexes(cmap)))
			}
			fmt.Fprintln(out, styleDim.Render("Append _r to a name for the reversed palette."))
			return nil
		},
	}
}

// sampleHexes samples cmap at evenly spaced positions for swatch display.
func sampleHexes(cmap colormap.Colormap) []string {
	const samples = 8
	hexes := make([]string, samples)
	for i := range hexes {
		hexes[i] = cmap.Hex(float64(i) / (samples - 1))
	}
	return hexes
}
