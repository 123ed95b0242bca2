package calendar

import (
	"time"

	"github.com/thoellrich/july/pkg/errors"
)

// Point is a lattice point in cell-corner coordinates: the corner shared
// by cells (X-1, Y-1) and (X, Y) in grid units.
type Point struct {
	X, Y int
}

// MonthOutline traces the closed staircase polygon separating the cells of
// month from the rest of the grid built from dates. The returned loop has
// nine points with the first repeated as the last, ready to be drawn as a
// single continuous line.
//
// The polygon hugs the occupied region under the assumption that a month's
// cells fill complete weekday rows except possibly the first and last.
// That holds for any real Gregorian month, but requires the month's cells
// to form one contiguous block in row-major (week, weekday) order:
// an absent mid-month date yields a NONCONTIGUOUS_MONTH error, and a month
// with no cells at all yields EMPTY_MONTH.
//
// Coordinates follow the grid orientation selected by flip.
func MonthOutline(dates []time.Time, flip bool, month time.Month) ([]Point, error) {
	// Trace on the untransposed grid; flipped output just swaps axes.
	grid, err := DateGrid(dates, dates, false)
	if err != nil {
		return nil, err
	}

	var coords []Point
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			d, ok := grid.At(y, x).Value()
			if ok && d.Month() == month {
				coords = append(coords, Point{X: x, Y: y})
			}
		}
	}

	if len(coords) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyMonth, "no cells for month %s", month)
	}
	if err := checkContiguous(coords, month); err != nil {
		return nil, err
	}

	first, last := coords[0], coords[len(coords)-1]
	minY, maxY := first.Y, last.Y

	outline := []Point{
		first,                  // upper-left corner of the first cell
		{weekdayCount, minY},   // across to the right grid edge
		{weekdayCount, maxY},   // down the right edge
		{last.X + 1, maxY},     // left to just past the last cell
		{last.X + 1, maxY + 1}, // down along the last cell
		{0, maxY + 1},          // across to the left grid edge
		{0, first.Y + 1},       // up to just below the first row
		{first.X, first.Y + 1}, // right to under the first cell
		first,                  // close the loop
	}

	if flip {
		for i, p := range outline {
			outline[i] = Point{X: p.Y, Y: p.X}
		}
	}
	return outline, nil
}

// checkContiguous verifies that coords, already in row-major order, occupy
// consecutive scan positions of a 7-wide grid.
func checkContiguous(coords []Point, month time.Month) error {
	prev := coords[0].Y*weekdayCount + coords[0].X
	for _, p := range coords[1:] {
		pos := p.Y*weekdayCount + p.X
		if pos != prev+1 {
			return errors.New(errors.ErrCodeNonContiguousMonth,
				"cells for month %s do not form a contiguous block", month)
		}
		prev = pos
	}
	return nil
}
