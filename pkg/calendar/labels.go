package calendar

import (
	"sort"
	"strconv"
	"time"
)

// Axis selects which plot axis a set of ticks belongs to.
type Axis int

const (
	// AxisX is the horizontal axis.
	AxisX Axis = iota
	// AxisY is the vertical axis.
	AxisY
)

// Tick is one label at a position measured in cell units along an axis.
// Positions are continuous: lane midpoints fall at half-cell offsets and
// span midpoints need not align with any cell.
type Tick struct {
	Position float64
	Text     string
}

// AxisTicks bundles ticks with the axis they belong to.
type AxisTicks struct {
	Axis  Axis
	Ticks []Tick
}

// DayLabel is a day-of-month number centered in one grid cell.
type DayLabel struct {
	Row, Col int
	Day      int
}

// weekdayLetters are the one-letter weekday abbreviations, Monday first.
var weekdayLetters = [weekdayCount]string{"M", "T", "W", "T", "F", "S", "S"}

// DayLabels returns a day-of-month label for every inhabited cell of the
// grid built from dates. Empty cells produce no label.
func DayLabels(dates []time.Time, flip bool) []DayLabel {
	days := make([]int, len(dates))
	for i, d := range dates {
		days[i] = d.Day()
	}
	// Lengths match by construction, so DateGrid cannot fail here.
	grid, _ := DateGrid(dates, days, flip)

	var labels []DayLabel
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			if day, ok := grid.At(r, c).Value(); ok {
				labels = append(labels, DayLabel{Row: r, Col: c, Day: day})
			}
		}
	}
	return labels
}

// WeekdayLabels returns the seven abbreviated weekday names at the
// midpoint of each weekday lane. The lanes run along the x axis in the
// default orientation and along the y axis when flipped.
func WeekdayLabels(flip bool) AxisTicks {
	ticks := make([]Tick, weekdayCount)
	for i, letter := range weekdayLetters {
		ticks[i] = Tick{Position: float64(i) + 0.5, Text: letter}
	}
	axis := AxisX
	if flip {
		axis = AxisY
	}
	return AxisTicks{Axis: axis, Ticks: ticks}
}

// yearMonth identifies one calendar month of a specific year.
type yearMonth struct {
	year  int
	month time.Month
}

// MonthLabels returns a three-letter month abbreviation per distinct
// (year, month) pair in dates, positioned at the midpoint of the group's
// occupied span along the week axis: (min + max + 1) / 2 over occupied
// week indices. Groups with non-contiguous spans still use the global
// min and max, so a fragmented span yields an approximate position.
//
// The week axis is vertical by default and horizontal when flipped.
func MonthLabels(dates []time.Time, flip bool) AxisTicks {
	keys := make([]yearMonth, len(dates))
	seen := make(map[yearMonth]struct{})
	var groups []yearMonth
	for i, d := range dates {
		ym := yearMonth{year: d.Year(), month: d.Month()}
		keys[i] = ym
		if _, ok := seen[ym]; !ok {
			seen[ym] = struct{}{}
			groups = append(groups, ym)
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].year != groups[j].year {
			return groups[i].year < groups[j].year
		}
		return groups[i].month < groups[j].month
	})

	grid, _ := DateGrid(dates, keys, false)

	ticks := make([]Tick, 0, len(groups))
	for _, ym := range groups {
		lo, hi, ok := weekSpan(grid, ym)
		if !ok {
			continue
		}
		ticks = append(ticks, Tick{
			Position: midpoint(lo, hi),
			Text:     ym.month.String()[:3],
		})
	}

	axis := AxisY
	if flip {
		axis = AxisX
	}
	return AxisTicks{Axis: axis, Ticks: ticks}
}

// YearLabels returns a label per distinct year in dates, positioned with
// the same occupied-span midpoint rule as MonthLabels. The renderer draws
// these as rotated annotations outside the grid.
func YearLabels(dates []time.Time) []Tick {
	keys := make([]int, len(dates))
	seen := make(map[int]struct{})
	var years []int
	for i, d := range dates {
		y := d.Year()
		keys[i] = y
		if _, ok := seen[y]; !ok {
			seen[y] = struct{}{}
			years = append(years, y)
		}
	}
	sort.Ints(years)

	grid, _ := DateGrid(dates, keys, false)

	ticks := make([]Tick, 0, len(years))
	for _, y := range years {
		lo, hi, ok := weekSpan(grid, y)
		if !ok {
			continue
		}
		ticks = append(ticks, Tick{Position: midpoint(lo, hi), Text: strconv.Itoa(y)})
	}
	return ticks
}

// weekSpan returns the minimum and maximum week index (row of an
// untransposed grid) holding a cell equal to key.
func weekSpan[K comparable](grid *Grid[K], key K) (lo, hi int, found bool) {
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			v, ok := grid.At(r, c).Value()
			if !ok || v != key {
				continue
			}
			if !found {
				lo, hi = r, r
				found = true
				continue
			}
			if r < lo {
				lo = r
			}
			if r > hi {
				hi = r
			}
		}
	}
	return lo, hi, found
}

func midpoint(lo, hi int) float64 {
	return float64(lo+hi+1) / 2
}
