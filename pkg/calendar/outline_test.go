package calendar

import (
	"testing"
	"time"

	"github.com/thoellrich/july/pkg/errors"
)

func TestMonthOutlineFullMonth(t *testing.T) {
	// April 2024 starts on a Monday and spans week rows 0..4.
	dates := dateRange(day(2024, time.April, 1), day(2024, time.April, 30))

	outline, err := MonthOutline(dates, false, time.April)
	if err != nil {
		t.Fatalf("MonthOutline() error = %v", err)
	}

	if len(outline) != 9 {
		t.Fatalf("len(outline) = %d, want 9", len(outline))
	}
	if outline[0] != outline[len(outline)-1] {
		t.Errorf("outline is not closed: first = %+v, last = %+v",
			outline[0], outline[len(outline)-1])
	}

	minX, maxX := outline[0].X, outline[0].X
	minY, maxY := outline[0].Y, outline[0].Y
	for _, p := range outline {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	if minX != 0 || maxX != 7 {
		t.Errorf("x extent = [%d, %d], want [0, 7]", minX, maxX)
	}
	if minY != 0 || maxY != 5 {
		t.Errorf("y extent = [%d, %d], want [0, 5]", minY, maxY)
	}
}

func TestMonthOutlineCorners(t *testing.T) {
	// April 2024: first cell at (0, 0), last cell (Apr 30, a Tuesday) at
	// (1, 4), so the staircase steps in after column 1.
	dates := dateRange(day(2024, time.April, 1), day(2024, time.April, 30))

	outline, err := MonthOutline(dates, false, time.April)
	if err != nil {
		t.Fatalf("MonthOutline() error = %v", err)
	}

	want := []Point{
		{0, 0}, {7, 0}, {7, 4}, {2, 4}, {2, 5}, {0, 5}, {0, 1}, {0, 1}, {0, 0},
	}
	for i, p := range outline {
		if p != want[i] {
			t.Errorf("outline[%d] = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestMonthOutlineSharedWeeks(t *testing.T) {
	// April and May 2024 share the ISO week of Apr 29. The May outline
	// starts mid-row at Wednesday May 1.
	dates := dateRange(day(2024, time.April, 1), day(2024, time.May, 31))

	outline, err := MonthOutline(dates, false, time.May)
	if err != nil {
		t.Fatalf("MonthOutline() error = %v", err)
	}

	// May 1 is a Wednesday in week row 4 of the combined grid.
	if outline[0] != (Point{2, 4}) {
		t.Errorf("outline[0] = %+v, want {2, 4}", outline[0])
	}
	if outline[len(outline)-1] != outline[0] {
		t.Error("outline is not closed")
	}
}

func TestMonthOutlineFlip(t *testing.T) {
	dates := dateRange(day(2024, time.April, 1), day(2024, time.April, 30))

	plain, err := MonthOutline(dates, false, time.April)
	if err != nil {
		t.Fatalf("MonthOutline() error = %v", err)
	}
	flipped, err := MonthOutline(dates, true, time.April)
	if err != nil {
		t.Fatalf("MonthOutline(flip) error = %v", err)
	}

	if len(flipped) != len(plain) {
		t.Fatalf("len(flipped) = %d, want %d", len(flipped), len(plain))
	}
	for i := range plain {
		swapped := Point{X: plain[i].Y, Y: plain[i].X}
		if flipped[i] != swapped {
			t.Errorf("flipped[%d] = %+v, want %+v", i, flipped[i], swapped)
		}
	}
}

func TestMonthOutlineEmptyMonth(t *testing.T) {
	dates := dateRange(day(2024, time.April, 1), day(2024, time.April, 30))

	_, err := MonthOutline(dates, false, time.May)
	if !errors.Is(err, errors.ErrCodeEmptyMonth) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeEmptyMonth)
	}
}

func TestMonthOutlineNonContiguous(t *testing.T) {
	// Drop April 15 so the month's cells no longer form one block.
	var dates []time.Time
	for _, d := range dateRange(day(2024, time.April, 1), day(2024, time.April, 30)) {
		if d.Day() == 15 {
			continue
		}
		dates = append(dates, d)
	}

	_, err := MonthOutline(dates, false, time.April)
	if !errors.Is(err, errors.ErrCodeNonContiguousMonth) {
		t.Errorf("error code = %v, want %v",
			errors.GetCode(err), errors.ErrCodeNonContiguousMonth)
	}
}

func TestMonthOutlineMismatchPropagates(t *testing.T) {
	// MonthOutline builds its own equal-length grid, so only an empty
	// input can reach the empty-month error path first.
	_, err := MonthOutline(nil, false, time.April)
	if !errors.Is(err, errors.ErrCodeEmptyMonth) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeEmptyMonth)
	}
}
