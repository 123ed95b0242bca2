package calendar

import (
	"sort"
	"time"

	"github.com/thoellrich/july/pkg/errors"
)

// weekdayCount is the fixed length of the weekday axis.
const weekdayCount = 7

// Cell holds the value for one day slot, or marks the slot uninhabited.
// The zero value is an empty cell.
type Cell[T any] struct {
	val T
	set bool
}

// Filled returns a cell holding v.
func Filled[T any](v T) Cell[T] {
	return Cell[T]{val: v, set: true}
}

// Value returns the stored value and whether the cell is inhabited.
func (c Cell[T]) Value() (T, bool) {
	return c.val, c.set
}

// Empty reports whether the cell holds no value.
func (c Cell[T]) Empty() bool {
	return !c.set
}

// Grid is a 2-D arrangement of cells with one calendar day per cell.
// In the default orientation rows are ISO weeks and columns are ISO
// weekdays (Monday first); transposed grids swap the two.
type Grid[T any] struct {
	cells [][]Cell[T]
}

func newGrid[T any](rows, cols int) *Grid[T] {
	cells := make([][]Cell[T], rows)
	for i := range cells {
		cells[i] = make([]Cell[T], cols)
	}
	return &Grid[T]{cells: cells}
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int {
	return len(g.cells)
}

// Cols returns the number of columns, or 0 for a rowless grid.
func (g *Grid[T]) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// At returns the cell at (row, col).
func (g *Grid[T]) At(row, col int) Cell[T] {
	return g.cells[row][col]
}

// Transpose returns a new grid with rows and columns swapped.
func (g *Grid[T]) Transpose() *Grid[T] {
	t := newGrid[T](g.Cols(), g.Rows())
	for r := range g.cells {
		for c := range g.cells[r] {
			t.cells[c][r] = g.cells[r][c]
		}
	}
	return t
}

// isoWeek identifies one ISO-8601 week. Ordering is by year, then week.
type isoWeek struct {
	year, week int
}

func (w isoWeek) before(o isoWeek) bool {
	if w.year != o.year {
		return w.year < o.year
	}
	return w.week < o.week
}

// isoWeekOf returns the (ISO year, ISO week) pair for t.
func isoWeekOf(t time.Time) isoWeek {
	y, w := t.ISOWeek()
	return isoWeek{year: y, week: w}
}

// isoWeekday returns the ISO weekday of t, 1=Monday..7=Sunday.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}

// uniqueWeeks returns the distinct (ISO year, ISO week) pairs among dates,
// sorted ascending.
func uniqueWeeks(dates []time.Time) []isoWeek {
	seen := make(map[isoWeek]struct{}, len(dates))
	var weeks []isoWeek
	for _, d := range dates {
		w := isoWeekOf(d)
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].before(weeks[j]) })
	return weeks
}

// DateGrid arranges values into a week-by-weekday grid keyed by dates.
// The week axis has one slot per distinct (ISO year, ISO week) pair in the
// input, ordered ascending; the weekday axis always has 7 slots. Dates may
// arrive in any order. Two dates mapping to the same cell overwrite each
// other; avoiding collisions is the caller's responsibility.
//
// With flip set the result is transposed (weeks as columns).
//
// Returns a SHAPE_MISMATCH error when dates and values differ in length.
func DateGrid[T any](dates []time.Time, values []T, flip bool) (*Grid[T], error) {
	if len(dates) != len(values) {
		return nil, errors.New(errors.ErrCodeShapeMismatch,
			"got %d dates and %d values", len(dates), len(values))
	}

	weeks := uniqueWeeks(dates)
	index := make(map[isoWeek]int, len(weeks))
	for i, w := range weeks {
		index[w] = i
	}

	grid := newGrid[T](len(weeks), weekdayCount)
	for i, d := range dates {
		row := index[isoWeekOf(d)]
		col := isoWeekday(d) - 1
		grid.cells[row][col] = Filled(values[i])
	}

	if flip {
		return grid.Transpose(), nil
	}
	return grid, nil
}

// WeekCount returns the number of distinct (ISO year, ISO week) pairs
// among dates, which is the length of the grid's week axis.
func WeekCount(dates []time.Time) int {
	return len(uniqueWeeks(dates))
}
