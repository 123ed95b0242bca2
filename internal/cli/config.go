package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/thoellrich/july/pkg/errors"
)

// defaultConfigFile is looked up in the working directory when --config is
// not given.
const defaultConfigFile = "july.toml"

// Config holds render defaults loaded from a TOML file. Flags given on the
// command line always win over config values.
type Config struct {
	Render RenderConfig `toml:"render"`
}

// RenderConfig mirrors the render command flags.
type RenderConfig struct {
	Palette       string `toml:"palette"`
	Flip          bool   `toml:"flip"`
	DayLabels     bool   `toml:"day_labels"`
	WeekdayLabels *bool  `toml:"weekday_labels"` // pointer: absent keeps the default
	MonthLabels   bool   `toml:"month_labels"`
	YearLabels    bool   `toml:"year_labels"`
	MonthOutline  bool   `toml:"month_outline"`
	Legend        bool   `toml:"legend"`
	Title         string `toml:"title"`
}

// loadConfig reads a config file. With an explicit path the file must
// exist; otherwise the default file is optional and a nil config is
// returned when it is absent.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if !explicit {
				return nil, nil
			}
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing %s", path)
	}
	return &cfg, nil
}
