package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoellrich/july/pkg/colormap"
	"github.com/thoellrich/july/pkg/errors"
	"github.com/thoellrich/july/pkg/render"
	"github.com/thoellrich/july/pkg/render/heatmap"
)

const (
	formatSVG = "svg" // native output format
	formatPNG = "png" // via rsvg-convert
	formatPDF = "pdf" // via rsvg-convert

	defaultPNGScale = 2.0 // 2x resolution
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output          string   // output file path (or base path for multiple formats)
	formats         []string // output formats: "svg", "png", "pdf"
	configPath      string   // optional TOML config file
	palette         string   // color palette name
	title           string   // title text
	flip            bool     // weeks horizontal instead of vertical
	dayLabels       bool     // overlay day-of-month numbers
	noWeekdayLabels bool     // suppress the default weekday letters
	monthLabels     bool     // month abbreviations along the week axis
	yearLabels      bool     // rotated year annotations
	monthOutline    bool     // boundary line around each month
	legend          bool     // color scale beside the plot
	cmin, cmax      float64  // explicit color range
	rangeSet        bool     // whether cmin/cmax were both given
	scale           float64  // PNG scale factor
}

// newRenderCmd creates the render command for generating heatmaps.
//
// Default settings:
//   - palette: Greens
//   - format: svg
//   - weekday labels on, all other overlays off
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		palette: colormap.Default().Name(),
		scale:   defaultPNGScale,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a calendar heatmap from a data file",
		Long: `Render a calendar heatmap from a data file.

The data file holds one value per calendar day, as date,value rows in CSV
or as a YAML list of {date, value} entries. Dates use the YYYY-MM-DD
format and may arrive in any order; each distinct ISO week becomes one
grid row (or column with --flip).

Defaults can be placed in a july.toml config file; command-line flags
always take precedence.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}

			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			applyConfig(cmd, cfg, &opts)

			minSet, maxSet := cmd.Flags().Changed("min"), cmd.Flags().Changed("max")
			if minSet != maxSet {
				return errors.New(errors.ErrCodeInvalidInput,
					"--min and --max must be given together")
			}
			opts.rangeSet = minSet && maxSet

			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file with render defaults")
	cmd.Flags().StringVarP(&opts.palette, "palette", "p", opts.palette, "color palette (see 'july palettes')")
	cmd.Flags().StringVar(&opts.title, "title", "", "title drawn above the grid")
	cmd.Flags().BoolVar(&opts.flip, "flip", false, "lay weeks out horizontally")
	cmd.Flags().BoolVar(&opts.dayLabels, "day-labels", false, "overlay day-of-month numbers")
	cmd.Flags().BoolVar(&opts.noWeekdayLabels, "no-weekday-labels", false, "hide weekday letters")
	cmd.Flags().BoolVar(&opts.monthLabels, "month-labels", false, "show month abbreviations")
	cmd.Flags().BoolVar(&opts.yearLabels, "year-labels", false, "show year annotations")
	cmd.Flags().BoolVar(&opts.monthOutline, "month-outline", false, "outline each month's cells")
	cmd.Flags().BoolVar(&opts.legend, "legend", false, "attach a color scale")
	cmd.Flags().Float64Var(&opts.cmin, "min", 0, "value mapped to the light palette end")
	cmd.Flags().Float64Var(&opts.cmax, "max", 0, "value mapped to the dark palette end")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")

	return cmd
}

// applyConfig copies config values into opts for every flag the user did
// not set explicitly.
func applyConfig(cmd *cobra.Command, cfg *Config, opts *renderOpts) {
	if cfg == nil {
		return
	}
	r := cfg.Render
	changed := cmd.Flags().Changed

	if !changed("palette") && r.Palette != "" {
		opts.palette = r.Palette
	}
	if !changed("title") && r.Title != "" {
		opts.title = r.Title
	}
	if !changed("flip") && r.Flip {
		opts.flip = true
	}
	if !changed("day-labels") && r.DayLabels {
		opts.dayLabels = true
	}
	if !changed("no-weekday-labels") && r.WeekdayLabels != nil {
		opts.noWeekdayLabels = !*r.WeekdayLabels
	}
	if !changed("month-labels") && r.MonthLabels {
		opts.monthLabels = true
	}
	if !changed("year-labels") && r.YearLabels {
		opts.yearLabels = true
	}
	if !changed("month-outline") && r.MonthOutline {
		opts.monthOutline = true
	}
	if !changed("legend") && r.Legend {
		opts.legend = true
	}
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	formats := strings.Split(s, ",")
	for i, f := range formats {
		formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	return formats
}

// validateFormats checks that every requested format is supported.
func validateFormats(formats []string) error {
	for _, f := range formats {
		switch f {
		case formatSVG, formatPNG, formatPDF:
		default:
			return errors.New(errors.ErrCodeInvalidFormat,
				"unsupported format %q (expected svg, png, or pdf)", f)
		}
	}
	return nil
}

// buildOptions translates CLI flags into heatmap render options.
func buildOptions(opts *renderOpts, cmap colormap.Colormap) []heatmap.Option {
	heatOpts := []heatmap.Option{heatmap.WithColormap(cmap)}
	if opts.title != "" {
		heatOpts = append(heatOpts, heatmap.WithTitle(opts.title))
	}
	if opts.flip {
		heatOpts = append(heatOpts, heatmap.WithFlip())
	}
	if opts.dayLabels {
		heatOpts = append(heatOpts, heatmap.WithDayLabels())
	}
	if opts.noWeekdayLabels {
		heatOpts = append(heatOpts, heatmap.WithoutWeekdayLabels())
	}
	if opts.monthLabels {
		heatOpts = append(heatOpts, heatmap.WithMonthLabels())
	}
	if opts.yearLabels {
		heatOpts = append(heatOpts, heatmap.WithYearLabels())
	}
	if opts.monthOutline {
		heatOpts = append(heatOpts, heatmap.WithMonthOutlines())
	}
	if opts.legend {
		heatOpts = append(heatOpts, heatmap.WithLegend())
	}
	if opts.rangeSet {
		heatOpts = append(heatOpts, heatmap.WithColorRange(opts.cmin, opts.cmax))
	}
	return heatOpts
}

// runRender loads the data file, renders the heatmap, and writes one
// output file per requested format.
func runRender(ctx context.Context, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	dates, values, err := loadData(path)
	if err != nil {
		return err
	}
	logger.Debugf("loaded %d data points from %s", len(dates), path)

	cmap, err := colormap.Parse(opts.palette)
	if err != nil {
		return err
	}

	fig, err := heatmap.Render(dates, values, buildOptions(opts, cmap)...)
	if err != nil {
		return err
	}
	svg := fig.SVG()

	for _, format := range opts.formats {
		out := outputPath(path, opts.output, format, len(opts.formats))

		var data []byte
		switch format {
		case formatSVG:
			data = svg
		case formatPNG:
			data, err = render.ToPNG(svg, opts.scale)
		case formatPDF:
			data, err = render.ToPDF(svg)
		}
		if err != nil {
			return err
		}

		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}
		logger.Infof("wrote %s", out)
	}

	prog.done(fmt.Sprintf("Rendered %d days", len(dates)))
	return nil
}

// outputPath picks the output file name for one format. An explicit
// --output with a matching extension is used as-is for single-format
// runs; otherwise the format extension is appended to the base path,
// which defaults to the input path without its extension.
func outputPath(input, output, format string, formatCount int) string {
	if output != "" {
		if formatCount == 1 && strings.EqualFold(filepath.Ext(output), "."+format) {
			return output
		}
		return output + "." + format
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}
