// Package heatmap renders calendar heatmaps: daily values shaded on a
// week-by-weekday grid.
//
// # Overview
//
// [Render] is the single entry point. It builds the grid with
// [github.com/thoellrich/july/pkg/calendar], shades cells through a
// [github.com/thoellrich/july/pkg/colormap] palette, and applies the
// overlays selected by options:
//
//	fig, err := heatmap.Render(dates, values,
//	    heatmap.WithTitle("Activity 2024"),
//	    heatmap.WithMonthLabels(),
//	    heatmap.WithLegend(),
//	)
//	svg := fig.SVG()
//
// Weekday letters are drawn by default; every other overlay is opt-in.
// [WithFlip] lays weeks out horizontally, which suits year-long spans.
//
// # Figures
//
// Rendering targets a [Figure], a small SVG surface that can also be drawn
// on directly. Pass an existing figure with [OnFigure] to compose further;
// otherwise Render creates one sized to the grid and the enabled overlays.
//
// Errors abort rendering before any drawing happens, so a figure handed in
// via [OnFigure] is never left half-drawn.
package heatmap
