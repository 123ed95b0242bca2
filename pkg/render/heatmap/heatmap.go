package heatmap

import (
	"fmt"
	"time"

	"github.com/thoellrich/july/pkg/calendar"
	"github.com/thoellrich/july/pkg/colormap"
	"github.com/thoellrich/july/pkg/errors"
)

const (
	cellSize    = 40.0 // cell edge length in pixels
	basePad     = 20.0 // padding around the drawn content
	weekdayPad  = 24.0 // lane reserved for weekday letters
	monthPad    = 28.0 // lane reserved for month abbreviations
	yearPad     = 30.0 // lane reserved for rotated year annotations
	titlePad    = 44.0 // band reserved for the title
	legendPad   = 70.0 // band reserved for the color scale
	legendWidth = 14.0 // color scale bar width
	legendGap   = 16.0 // gap between plot and color scale

	fontFamily   = "monospace"
	textColor    = "#333333"
	cellStroke   = "#ffffff"
	outlineColor = "#000000"
)

// Option configures a Render call.
type Option func(*config)

type config struct {
	title         string
	cmap          colormap.Colormap
	cmapSet       bool
	minVal        float64
	maxVal        float64
	rangeSet      bool
	flip          bool
	dayLabels     bool
	weekdayLabels bool
	monthLabels   bool
	yearLabels    bool
	outlines      bool
	legend        bool
	fig           *Figure
}

// WithTitle sets the title drawn above the grid.
func WithTitle(title string) Option { return func(c *config) { c.title = title } }

// WithColormap selects the palette used to shade cells. The default is
// the Greens palette.
func WithColormap(m colormap.Colormap) Option {
	return func(c *config) { c.cmap = m; c.cmapSet = true }
}

// WithColorRange fixes the values mapped to the palette endpoints instead
// of deriving them from the data.
func WithColorRange(minVal, maxVal float64) Option {
	return func(c *config) { c.minVal = minVal; c.maxVal = maxVal; c.rangeSet = true }
}

// WithFlip transposes the grid: weeks run horizontally and weekdays
// vertically.
func WithFlip() Option { return func(c *config) { c.flip = true } }

// WithDayLabels overlays the day-of-month number on every inhabited cell.
func WithDayLabels() Option { return func(c *config) { c.dayLabels = true } }

// WithoutWeekdayLabels suppresses the weekday letters, which are drawn by
// default.
func WithoutWeekdayLabels() Option { return func(c *config) { c.weekdayLabels = false } }

// WithMonthLabels draws a month abbreviation beside each month's weeks.
func WithMonthLabels() Option { return func(c *config) { c.monthLabels = true } }

// WithYearLabels draws rotated year annotations outside the grid.
func WithYearLabels() Option { return func(c *config) { c.yearLabels = true } }

// WithMonthOutlines traces a boundary line around each month's cells.
func WithMonthOutlines() Option { return func(c *config) { c.outlines = true } }

// WithLegend attaches a color scale beside the grid.
func WithLegend() Option { return func(c *config) { c.legend = true } }

// OnFigure draws onto an existing figure instead of creating one. The
// figure keeps its dimensions; the caller is responsible for making it
// large enough.
func OnFigure(f *Figure) Option { return func(c *config) { c.fig = f } }

// Render draws a calendar heatmap of the given dated values and returns
// the figure for further composition or serialization.
//
// Cells are laid out by [calendar.DateGrid] and shaded by the configured
// palette over [min, max], where the range defaults to the extremes of the
// supplied values. Overlays are applied per option, and any error (length
// mismatch, month outline preconditions) aborts the render before the
// figure is touched.
func Render(dates []time.Time, values []float64, opts ...Option) (*Figure, error) {
	cfg := config{weekdayLabels: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.cmapSet {
		cfg.cmap = colormap.Default()
	}

	grid, err := calendar.DateGrid(dates, values, cfg.flip)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no dates to render")
	}

	vmin, vmax := cfg.minVal, cfg.maxVal
	if !cfg.rangeSet {
		vmin, vmax = valueRange(values)
	}

	// Trace outlines before drawing anything, so precondition failures
	// leave a caller-supplied figure untouched.
	var outlines [][]calendar.Point
	if cfg.outlines {
		for _, month := range distinctMonths(dates) {
			outline, err := calendar.MonthOutline(dates, cfg.flip, month)
			if err != nil {
				return nil, err
			}
			outlines = append(outlines, outline)
		}
	}

	geom := newGeometry(&cfg, grid.Rows(), grid.Cols())
	fig := cfg.fig
	if fig == nil {
		fig = NewFigure(geom.figWidth, geom.figHeight)
	}

	drawCells(fig, geom, grid, cfg.cmap, vmin, vmax)
	if cfg.dayLabels {
		drawDayLabels(fig, geom, dates, cfg.flip)
	}
	if cfg.weekdayLabels {
		drawWeekdayLabels(fig, geom, calendar.WeekdayLabels(cfg.flip))
	}
	if cfg.monthLabels {
		drawMonthLabels(fig, geom, calendar.MonthLabels(dates, cfg.flip))
	}
	if cfg.yearLabels {
		drawYearLabels(fig, geom, calendar.YearLabels(dates), cfg.flip)
	}
	for _, outline := range outlines {
		drawOutline(fig, geom, outline)
	}
	if cfg.legend {
		drawLegend(fig, geom, cfg.cmap, vmin, vmax)
	}
	if cfg.title != "" {
		drawTitle(fig, geom, cfg.title)
	}
	return fig, nil
}

// valueRange returns the minimum and maximum of vs. Empty cells never
// appear in vs, so no filtering is needed.
func valueRange(vs []float64) (lo, hi float64) {
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// normalize maps v to [0, 1] over the color range. A degenerate range
// shades every cell with the palette midpoint.
func normalize(v, vmin, vmax float64) float64 {
	if vmax == vmin {
		return 0.5
	}
	return (v - vmin) / (vmax - vmin)
}

// distinctMonths returns the months present in dates, in order of first
// appearance.
func distinctMonths(dates []time.Time) []time.Month {
	seen := make(map[time.Month]struct{})
	var months []time.Month
	for _, d := range dates {
		if _, ok := seen[d.Month()]; ok {
			continue
		}
		seen[d.Month()] = struct{}{}
		months = append(months, d.Month())
	}
	return months
}

// formatScaleValue renders a color range endpoint for the legend.
func formatScaleValue(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
