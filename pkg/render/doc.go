// Package render provides output handling for july's visualizations.
//
// # Overview
//
// Heatmaps are produced as SVG by the [heatmap] subpackage. This package
// adds generic format conversion on top:
//
//   - [ToPDF] and [ToPNG] convert any SVG to PDF or PNG
//
// Conversion shells out to the external rsvg-convert tool (from librsvg),
// so those formats are only available when it is installed. The SVG path
// has no external requirements.
//
//	fig, err := heatmap.Render(dates, values, heatmap.WithLegend())
//	svg := fig.SVG()
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// [heatmap]: github.com/thoellrich/july/pkg/render/heatmap
package render
