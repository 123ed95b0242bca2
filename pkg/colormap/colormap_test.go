package colormap

import (
	"strings"
	"testing"

	"github.com/thoellrich/july/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantErr  bool
	}{
		{name: "canonical name", input: "Greens", wantName: "Greens"},
		{name: "case insensitive", input: "greens", wantName: "Greens"},
		{name: "reversed variant", input: "Blues_r", wantName: "Blues_r"},
		{name: "reversed case insensitive", input: "VIRIDIS_r", wantName: "Viridis_r"},
		{name: "unknown palette", input: "Sunset", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidPalette) {
					t.Fatalf("error code = %v, want %v",
						errors.GetCode(err), errors.ErrCodeInvalidPalette)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if m.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", m.Name(), tt.wantName)
			}
		})
	}
}

func TestAtEndpoints(t *testing.T) {
	m, err := Parse("Greens")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := m.Hex(0); got != "#f7fcf5" {
		t.Errorf("Hex(0) = %q, want %q", got, "#f7fcf5")
	}
	if got := m.Hex(1); got != "#00441b" {
		t.Errorf("Hex(1) = %q, want %q", got, "#00441b")
	}

	// Out-of-range positions clamp to the endpoints.
	if got := m.Hex(-0.5); got != m.Hex(0) {
		t.Errorf("Hex(-0.5) = %q, want %q", got, m.Hex(0))
	}
	if got := m.Hex(1.5); got != m.Hex(1) {
		t.Errorf("Hex(1.5) = %q, want %q", got, m.Hex(1))
	}
}

func TestAtInterpolates(t *testing.T) {
	m := Default()

	// Midway through a segment the color must differ from both stops.
	mid := m.Hex(0.125)
	if mid == m.Hex(0) || mid == m.Hex(0.25) {
		t.Errorf("Hex(0.125) = %q, expected a blend between the first two stops", mid)
	}
}

func TestReversed(t *testing.T) {
	m := Default()
	r := m.Reversed()

	if r.Name() != "Greens_r" {
		t.Errorf("Name() = %q, want %q", r.Name(), "Greens_r")
	}
	if r.Hex(0) != m.Hex(1) || r.Hex(1) != m.Hex(0) {
		t.Error("reversed palette endpoints should swap")
	}
	if rr := r.Reversed(); rr.Name() != "Greens" || rr.Hex(0) != m.Hex(0) {
		t.Errorf("double reversal = %q, want original palette", rr.Name())
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(palettes) {
		t.Fatalf("len(Names()) = %d, want %d", len(names), len(palettes))
	}
	for i := 1; i < len(names); i++ {
		if strings.Compare(names[i-1], names[i]) >= 0 {
			t.Errorf("Names() not sorted: %q before %q", names[i-1], names[i])
		}
	}
	m, err := Parse(names[0])
	if err != nil || m.Name() != names[0] {
		t.Errorf("Parse(%q) = (%q, %v)", names[0], m.Name(), err)
	}
}

func TestDefault(t *testing.T) {
	if got := Default().Name(); got != "Greens" {
		t.Errorf("Default().Name() = %q, want %q", got, "Greens")
	}
}
