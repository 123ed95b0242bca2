// Package pkg provides the core libraries for july calendar heatmaps.
//
// # Overview
//
// july turns a series of dated values into a calendar heatmap where each
// day is a colored cell in a week-by-weekday grid, in the style of the
// GitHub contribution graph. The pkg directory is organized into five
// areas:
//
//  1. [calendar] - Grid construction, axis labels, and month outlines
//  2. [colormap] - Named color palettes with perceptual interpolation
//  3. [render/heatmap] - SVG figure assembly for the heatmap itself
//  4. [render] - Format conversion (SVG to PDF/PNG)
//  5. [errors] - Structured errors with machine-readable codes
//
// # Architecture
//
// The typical data flow through july:
//
//	Dates + Values
//	         ↓
//	    [calendar] package (grid, labels, outlines)
//	         ↓
//	    [colormap] package (value → color)
//	         ↓
//	    [render/heatmap] package (SVG assembly)
//	         ↓
//	    SVG/PDF/PNG output
//
// # Quick Start
//
// Render a heatmap from a slice of dates and values:
//
//	import (
//	    "os"
//
//	    "github.com/thoellrich/july/pkg/colormap"
//	    "github.com/thoellrich/july/pkg/render/heatmap"
//	)
//
//	fig, _ := heatmap.Render(dates, values,
//	    heatmap.WithColormap(colormap.Default()),
//	    heatmap.WithMonthLabels(),
//	    heatmap.WithYearLabels(),
//	    heatmap.WithLegend(),
//	)
//	os.WriteFile("activity.svg", fig.SVG(), 0o644)
//
// # Main Packages
//
// [calendar] - Places dates on an ISO-week grid. [calendar.DateGrid]
// builds the week-by-weekday grid, [calendar.MonthLabels] and
// [calendar.YearLabels] compute axis tick positions, and
// [calendar.MonthOutline] traces the boundary polygon around a month's
// cells.
//
// [colormap] - Named palettes (Greens, Viridis, GitHub, ...) with
// Lab-space interpolation between stops. Supports reversed variants via
// a "_r" suffix.
//
// [render/heatmap] - Composes the figure: cells, day numbers, weekday
// and month labels, year labels, month outlines, a color legend, and a
// title. Options follow the functional-options pattern.
//
// [render] - Converts SVG output to PDF or PNG via rsvg-convert.
//
// [errors] - Error type carrying a code, message, and wrapped cause.
// Codes such as SHAPE_MISMATCH and NONCONTIGUOUS_MONTH let callers
// distinguish bad input from internal failures.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/calendar/...    # Specific package
//	go test -run Example          # Examples only
//
// [calendar]: https://pkg.go.dev/github.com/thoellrich/july/pkg/calendar
// [colormap]: https://pkg.go.dev/github.com/thoellrich/july/pkg/colormap
// [render]: https://pkg.go.dev/github.com/thoellrich/july/pkg/render
// [render/heatmap]: https://pkg.go.dev/github.com/thoellrich/july/pkg/render/heatmap
// [errors]: https://pkg.go.dev/github.com/thoellrich/july/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/thoellrich/july/pkg/buildinfo
package pkg
