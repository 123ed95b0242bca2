package cli

import (
	"os"
	"testing"

	"github.com/thoellrich/july/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	content := `
[render]
palette = "Blues"
flip = true
weekday_labels = false
legend = true
title = "Commits"
`
	path := writeFile(t, "july.toml", content)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	r := cfg.Render
	if r.Palette != "Blues" {
		t.Errorf("Palette = %q, want %q", r.Palette, "Blues")
	}
	if !r.Flip || !r.Legend {
		t.Errorf("Flip = %v, Legend = %v, want both true", r.Flip, r.Legend)
	}
	if r.WeekdayLabels == nil || *r.WeekdayLabels {
		t.Errorf("WeekdayLabels = %v, want explicit false", r.WeekdayLabels)
	}
	if r.Title != "Commits" {
		t.Errorf("Title = %q, want %q", r.Title, "Commits")
	}
}

func TestLoadConfigUnsetWeekdayLabels(t *testing.T) {
	path := writeFile(t, "july.toml", "[render]\npalette = \"Greens\"\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Render.WeekdayLabels != nil {
		t.Errorf("WeekdayLabels = %v, want nil for absent key", cfg.Render.WeekdayLabels)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := loadConfig("/nonexistent/july.toml")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoadConfigDefaultMissing(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("Chdir() error = %v", err)
		}
	})

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg != nil {
		t.Errorf("cfg = %+v, want nil when the default file is absent", cfg)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeFile(t, "july.toml", "[render\npalette = Blues")

	_, err := loadConfig(path)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}
