// Package calendar maps dated values onto week-by-weekday grids.
//
// # Overview
//
// This package contains the layout arithmetic behind july's heatmaps. It
// provides:
//
//   - Grid construction from (date, value) sequences ([DateGrid])
//   - Label placement for days, weekdays, months, and years
//   - Month boundary outlines ([MonthOutline])
//
// # Grid Construction
//
// [DateGrid] places each date at the cell addressed by its ISO week (row)
// and ISO weekday (column). Rows are allocated for exactly the distinct
// (ISO year, ISO week) pairs present in the input, sorted ascending, so a
// grid never carries leading or trailing blank weeks. The flip argument
// transposes the result for horizontal layouts.
//
//	grid, err := calendar.DateGrid(dates, values, false)
//
// Cells are tagged: [Cell.Value] reports both the stored value and whether
// the cell is inhabited, so empty cells need no sentinel value.
//
// # Labels
//
// [DayLabels], [WeekdayLabels], [MonthLabels], and [YearLabels] compute
// positions in grid coordinates (cell units, origin at the top-left
// corner). Month and year labels sit at the midpoint of the group's
// occupied span along the week axis.
//
// # Month Outlines
//
// [MonthOutline] traces the staircase polygon separating one month's cells
// from the rest of the grid. The month's cells must form one contiguous
// row-major block; violations are reported as errors rather than tolerated.
package calendar
