package calendar

import (
	"testing"
	"time"

	"github.com/thoellrich/july/pkg/errors"
)

// dateRange returns consecutive days from first to last inclusive.
func dateRange(first, last time.Time) []time.Time {
	var dates []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateGridShape(t *testing.T) {
	tests := []struct {
		name     string
		dates    []time.Time
		wantRows int
	}{
		{
			name:     "single ISO week",
			dates:    dateRange(day(2024, time.January, 1), day(2024, time.January, 7)),
			wantRows: 1,
		},
		{
			name:     "january 2024 spans five weeks",
			dates:    dateRange(day(2024, time.January, 1), day(2024, time.January, 31)),
			wantRows: 5,
		},
		{
			name: "year boundary shares one ISO week",
			dates: []time.Time{
				day(2021, time.December, 31), // Friday, ISO week 2021-W52
				day(2022, time.January, 1),   // Saturday, same ISO week
				day(2022, time.January, 3),   // Monday, ISO week 2022-W1
			},
			wantRows: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make([]float64, len(tt.dates))
			grid, err := DateGrid(tt.dates, values, false)
			if err != nil {
				t.Fatalf("DateGrid() error = %v", err)
			}
			if grid.Rows() != tt.wantRows {
				t.Errorf("Rows() = %d, want %d", grid.Rows(), tt.wantRows)
			}
			if grid.Cols() != 7 {
				t.Errorf("Cols() = %d, want 7", grid.Cols())
			}
			if got := WeekCount(tt.dates); got != tt.wantRows {
				t.Errorf("WeekCount() = %d, want %d", got, tt.wantRows)
			}
		})
	}
}

func TestDateGridPlacement(t *testing.T) {
	// 2024-01-01 is a Monday, so the first ISO week fills columns 0..6.
	dates := dateRange(day(2024, time.January, 1), day(2024, time.January, 7))
	values := []float64{1, 2, 3, 4, 5, 6, 7}

	grid, err := DateGrid(dates, values, false)
	if err != nil {
		t.Fatalf("DateGrid() error = %v", err)
	}
	if grid.Rows() != 1 || grid.Cols() != 7 {
		t.Fatalf("shape = (%d, %d), want (1, 7)", grid.Rows(), grid.Cols())
	}

	for col := 0; col < 7; col++ {
		v, ok := grid.At(0, col).Value()
		if !ok {
			t.Fatalf("cell (0, %d) is empty", col)
		}
		if v != values[col] {
			t.Errorf("cell (0, %d) = %v, want %v", col, v, values[col])
		}
	}
}

func TestDateGridEmptyCells(t *testing.T) {
	// Monday and Wednesday of the same week leave five cells empty.
	dates := []time.Time{day(2024, time.January, 1), day(2024, time.January, 3)}
	grid, err := DateGrid(dates, []float64{1, 3}, false)
	if err != nil {
		t.Fatalf("DateGrid() error = %v", err)
	}

	occupied := 0
	for c := 0; c < grid.Cols(); c++ {
		if !grid.At(0, c).Empty() {
			occupied++
		}
	}
	if occupied != 2 {
		t.Errorf("occupied cells = %d, want 2", occupied)
	}
	if grid.At(0, 1).Empty() != true {
		t.Error("cell (0, 1) should be empty")
	}
	if v, ok := grid.At(0, 2).Value(); !ok || v != 3 {
		t.Errorf("cell (0, 2) = (%v, %v), want (3, true)", v, ok)
	}
}

func TestDateGridFlip(t *testing.T) {
	dates := dateRange(day(2024, time.January, 1), day(2024, time.January, 31))
	values := make([]float64, len(dates))
	for i := range values {
		values[i] = float64(i)
	}

	plain, err := DateGrid(dates, values, false)
	if err != nil {
		t.Fatalf("DateGrid() error = %v", err)
	}
	flipped, err := DateGrid(dates, values, true)
	if err != nil {
		t.Fatalf("DateGrid(flip) error = %v", err)
	}

	if flipped.Rows() != plain.Cols() || flipped.Cols() != plain.Rows() {
		t.Fatalf("flipped shape = (%d, %d), want (%d, %d)",
			flipped.Rows(), flipped.Cols(), plain.Cols(), plain.Rows())
	}

	for r := 0; r < plain.Rows(); r++ {
		for c := 0; c < plain.Cols(); c++ {
			pv, pok := plain.At(r, c).Value()
			fv, fok := flipped.At(c, r).Value()
			if pok != fok || pv != fv {
				t.Fatalf("cell (%d, %d): plain = (%v, %v), transposed = (%v, %v)",
					r, c, pv, pok, fv, fok)
			}
		}
	}
}

func TestDateGridShapeMismatch(t *testing.T) {
	dates := dateRange(day(2024, time.January, 1), day(2024, time.January, 3))
	grid, err := DateGrid(dates, []float64{1, 2}, false)
	if grid != nil {
		t.Error("DateGrid() returned a grid despite mismatched input")
	}
	if !errors.Is(err, errors.ErrCodeShapeMismatch) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeShapeMismatch)
	}
}

func TestDateGridUnsortedInput(t *testing.T) {
	// Week rows are ordered by ISO week regardless of input order.
	dates := []time.Time{
		day(2024, time.January, 10), // week 2
		day(2024, time.January, 1),  // week 1
	}
	grid, err := DateGrid(dates, []float64{10, 1}, false)
	if err != nil {
		t.Fatalf("DateGrid() error = %v", err)
	}
	if v, ok := grid.At(0, 0).Value(); !ok || v != 1 {
		t.Errorf("cell (0, 0) = (%v, %v), want (1, true)", v, ok)
	}
	if v, ok := grid.At(1, 2).Value(); !ok || v != 10 {
		t.Errorf("cell (1, 2) = (%v, %v), want (10, true)", v, ok)
	}
}

func TestCellZeroValue(t *testing.T) {
	var c Cell[float64]
	if !c.Empty() {
		t.Error("zero cell should be empty")
	}
	if _, ok := c.Value(); ok {
		t.Error("zero cell should report no value")
	}

	f := Filled(2.5)
	if f.Empty() {
		t.Error("filled cell should not be empty")
	}
	if v, ok := f.Value(); !ok || v != 2.5 {
		t.Errorf("Value() = (%v, %v), want (2.5, true)", v, ok)
	}
}
