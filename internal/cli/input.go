package cli

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thoellrich/july/pkg/errors"
)

// dateLayout is the expected date format in data files.
const dateLayout = "2006-01-02"

// loadData reads a data file of (date, value) pairs. The format is chosen
// by extension: .csv for comma-separated files, .yaml/.yml for YAML.
func loadData(path string) ([]time.Time, []float64, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".yaml", ".yml":
		return loadYAML(path)
	default:
		return nil, nil, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported data file %q (expected .csv, .yaml, or .yml)", path)
	}
}

// loadCSV reads date,value rows. A single header row is tolerated and
// skipped when its first column does not parse as a date.
func loadCSV(path string) ([]time.Time, []float64, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing %s", path)
	}

	var dates []time.Time
	var values []float64
	for i, row := range rows {
		if len(row) < 2 {
			return nil, nil, errors.New(errors.ErrCodeInvalidInput,
				"%s:%d: expected date,value but got %d columns", path, i+1, len(row))
		}
		d, err := time.Parse(dateLayout, strings.TrimSpace(row[0]))
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s:%d", path, i+1)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s:%d", path, i+1)
		}
		dates = append(dates, d)
		values = append(values, v)
	}
	return dates, values, nil
}

// loadYAML reads a YAML sequence of {date, value} mappings.
func loadYAML(path string) ([]time.Time, []float64, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}

	var entries []struct {
		Date  string  `yaml:"date"`
		Value float64 `yaml:"value"`
	}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing %s", path)
	}

	dates := make([]time.Time, len(entries))
	values := make([]float64, len(entries))
	for i, e := range entries {
		d, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeInvalidInput, err,
				"%s: entry %d", path, i+1)
		}
		dates[i] = d
		values[i] = e.Value
	}
	return dates, values, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "data file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading %s", path)
	}
	return data, nil
}
