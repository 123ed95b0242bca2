package heatmap

import (
	"strconv"
	"time"

	"github.com/thoellrich/july/pkg/calendar"
	"github.com/thoellrich/july/pkg/colormap"
)

// geometry fixes the pixel placement of the plot area within the figure.
// Margins grow for each enabled overlay so labels never collide with the
// grid or each other.
type geometry struct {
	plotX, plotY float64
	plotW, plotH float64
	figWidth     float64
	figHeight    float64
	titleY       float64
	monthLabels  bool
}

func newGeometry(cfg *config, rows, cols int) geometry {
	g := geometry{
		plotW:       float64(cols) * cellSize,
		plotH:       float64(rows) * cellSize,
		monthLabels: cfg.monthLabels,
	}

	left, top, right, bottom := basePad, basePad, basePad, basePad
	if cfg.title != "" {
		g.titleY = top + 24
		top += titlePad
	}
	if cfg.flip {
		if cfg.yearLabels {
			top += yearPad
		}
		if cfg.weekdayLabels {
			left += weekdayPad
		}
		if cfg.monthLabels {
			bottom += monthPad
		}
	} else {
		if cfg.weekdayLabels {
			top += weekdayPad
		}
		if cfg.yearLabels {
			left += yearPad
		}
		if cfg.monthLabels {
			left += monthPad
		}
	}
	if cfg.legend {
		right += legendPad
	}

	g.plotX, g.plotY = left, top
	g.figWidth = left + g.plotW + right
	g.figHeight = top + g.plotH + bottom
	return g
}

// cellOrigin returns the top-left pixel corner of the cell at (row, col).
func (g geometry) cellOrigin(row, col int) (x, y float64) {
	return g.plotX + float64(col)*cellSize, g.plotY + float64(row)*cellSize
}

func drawCells(fig *Figure, g geometry, grid *calendar.Grid[float64], cmap colormap.Colormap, vmin, vmax float64) {
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			v, ok := grid.At(r, c).Value()
			if !ok {
				continue
			}
			x, y := g.cellOrigin(r, c)
			fig.Rect(x, y, cellSize, cellSize, cmap.Hex(normalize(v, vmin, vmax)), cellStroke, 0.5)
		}
	}
}

func drawDayLabels(fig *Figure, g geometry, dates []time.Time, flip bool) {
	for _, l := range calendar.DayLabels(dates, flip) {
		x, y := g.cellOrigin(l.Row, l.Col)
		fig.Text(x+cellSize/2, y+cellSize/2+4, strconv.Itoa(l.Day), TextStyle{Size: 11})
	}
}

func drawWeekdayLabels(fig *Figure, g geometry, ticks calendar.AxisTicks) {
	for _, t := range ticks.Ticks {
		if ticks.Axis == calendar.AxisX {
			// Above the grid, centered on the weekday lane.
			fig.Text(g.plotX+t.Position*cellSize, g.plotY-8, t.Text, TextStyle{Size: 12})
		} else {
			fig.Text(g.plotX-10, g.plotY+t.Position*cellSize+4, t.Text,
				TextStyle{Size: 12, Anchor: "end"})
		}
	}
}

func drawMonthLabels(fig *Figure, g geometry, ticks calendar.AxisTicks) {
	for _, t := range ticks.Ticks {
		if ticks.Axis == calendar.AxisY {
			// Left of the grid, reading bottom to top.
			fig.Text(g.plotX-12, g.plotY+t.Position*cellSize, t.Text,
				TextStyle{Size: 14, Rotate: -90})
		} else {
			fig.Text(g.plotX+t.Position*cellSize, g.plotY+g.plotH+18, t.Text,
				TextStyle{Size: 14})
		}
	}
}

func drawYearLabels(fig *Figure, g geometry, ticks []calendar.Tick, flip bool) {
	for _, t := range ticks {
		if flip {
			// The week axis is horizontal; annotate above the grid.
			fig.Text(g.plotX+t.Position*cellSize, g.plotY-10, t.Text, TextStyle{Size: 16})
			continue
		}
		x := g.plotX - 16
		if g.monthLabels {
			x -= monthPad
		}
		fig.Text(x, g.plotY+t.Position*cellSize, t.Text, TextStyle{Size: 16, Rotate: -90})
	}
}

func drawOutline(fig *Figure, g geometry, outline []calendar.Point) {
	points := make([][2]float64, len(outline))
	for i, p := range outline {
		points[i] = [2]float64{
			g.plotX + float64(p.X)*cellSize,
			g.plotY + float64(p.Y)*cellSize,
		}
	}
	fig.Polyline(points, outlineColor, 2)
}

// drawLegend attaches the color scale to the right of the plot. It runs
// after every overlay that changes the plot extent, so the bar always
// aligns with the final grid placement.
func drawLegend(fig *Figure, g geometry, cmap colormap.Colormap, vmin, vmax float64) {
	const stopCount = 5
	stops := make([]GradientStop, stopCount)
	for i := range stops {
		offset := float64(i) / (stopCount - 1)
		// The maximum sits at the top of the bar.
		stops[i] = GradientStop{Offset: offset, Color: cmap.Hex(1 - offset)}
	}
	id := fig.VerticalGradient(stops)

	x := g.plotX + g.plotW + legendGap
	fig.Rect(x, g.plotY, legendWidth, g.plotH, "url(#"+id+")", "", 0)
	fig.Text(x+legendWidth+6, g.plotY+9, formatScaleValue(vmax),
		TextStyle{Size: 10, Anchor: "start"})
	fig.Text(x+legendWidth+6, g.plotY+g.plotH, formatScaleValue(vmin),
		TextStyle{Size: 10, Anchor: "start"})
}

func drawTitle(fig *Figure, g geometry, title string) {
	fig.Text(g.plotX+g.plotW/2, g.titleY, title, TextStyle{Size: 18})
}
