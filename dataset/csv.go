// Package dataset provides CSV loading for datasets and paired datasets.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sartorproj/gostats/stats"
)

// Options holds options for CSV loading.
type Options struct {
	ValueColumn  string // Column name for values (default: "value")
	XColumn      string // Column name for x values in paired loading
	YColumn      string // Column name for y values in paired loading
	FilterColumn string // Column name to filter rows by (optional)
	FilterValue  string // Value the filter column must match
	HasHeader    bool   // Whether CSV has a header row (default: true)
	Delimiter    rune   // Field delimiter (default: ',')
	SkipRows     int    // Number of rows to skip at start
}

// DefaultOptions returns default options for CSV loading.
func DefaultOptions() *Options {
	return &Options{
		ValueColumn: "value",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// Load loads a single numeric column from a CSV file as a dataset.
func Load(filename string, opts *Options) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return FromReader(file, opts)
}

// LoadColumn loads the named column from a CSV file as a dataset.
func LoadColumn(filename, column string) ([]float64, error) {
	opts := DefaultOptions()
	opts.ValueColumn = column
	return Load(filename, opts)
}

// FromReader loads a single numeric column from an io.Reader as a dataset.
func FromReader(r io.Reader, opts *Options) ([]float64, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	reader, headers, err := openReader(r, opts)
	if err != nil {
		return nil, err
	}

	valueIdx, err := resolveColumn(headers, opts, opts.ValueColumn, []string{"value", "Value", "y"})
	if err != nil {
		return nil, err
	}
	filterIdx := -1
	if opts.FilterColumn != "" {
		filterIdx, err = resolveColumn(headers, opts, opts.FilterColumn, nil)
		if err != nil {
			return nil, err
		}
	}

	var values []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if skipRecord(record, filterIdx, opts.FilterValue) {
			continue
		}
		v, ok := parseCell(record, valueIdx)
		if !ok {
			continue
		}
		values = append(values, v)
	}

	return values, nil
}

// LoadPairs loads two numeric columns from a CSV file as a paired dataset.
// Options must name both XColumn and YColumn.
func LoadPairs(filename string, opts *Options) ([]stats.Pair, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return PairsFromReader(file, opts)
}

// PairsFromReader loads two numeric columns from an io.Reader as a paired
// dataset. Rows where either cell is missing or non-numeric are skipped so
// the pairing stays aligned.
func PairsFromReader(r io.Reader, opts *Options) ([]stats.Pair, error) {
	if opts == nil {
		return nil, errors.New("dataset: paired loading requires XColumn and YColumn options")
	}

	reader, headers, err := openReader(r, opts)
	if err != nil {
		return nil, err
	}

	xIdx, err := resolveColumn(headers, opts, opts.XColumn, []string{"x", "X"})
	if err != nil {
		return nil, err
	}
	yIdx, err := resolveColumn(headers, opts, opts.YColumn, []string{"y", "Y"})
	if err != nil {
		return nil, err
	}
	if xIdx == yIdx {
		return nil, errors.New("dataset: x and y resolve to the same column")
	}
	filterIdx := -1
	if opts.FilterColumn != "" {
		filterIdx, err = resolveColumn(headers, opts, opts.FilterColumn, nil)
		if err != nil {
			return nil, err
		}
	}

	var pairs []stats.Pair
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if skipRecord(record, filterIdx, opts.FilterValue) {
			continue
		}
		x, ok := parseCell(record, xIdx)
		if !ok {
			continue
		}
		y, ok := parseCell(record, yIdx)
		if !ok {
			continue
		}
		pairs = append(pairs, stats.Pair{X: x, Y: y})
	}

	return pairs, nil
}

// openReader builds the csv.Reader, skips leading rows, and consumes the
// header row when present.
func openReader(r io.Reader, opts *Options) (*csv.Reader, []string, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, nil, err
		}
	}

	var headers []string
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, nil, err
		}
		headers = make([]string, len(header))
		for i, h := range header {
			headers[i] = cleanCell(h)
		}
	}

	return reader, headers, nil
}

// resolveColumn maps a column name to its index. Without a header row the
// name is interpreted as a zero-based column index; an empty name falls back
// to the given aliases and finally to the last column.
func resolveColumn(headers []string, opts *Options, name string, aliases []string) (int, error) {
	if headers == nil {
		if name == "" {
			return 0, nil
		}
		idx, err := strconv.Atoi(name)
		if err != nil || idx < 0 {
			return -1, fmt.Errorf("dataset: column %q is not an index and the CSV has no header", name)
		}
		return idx, nil
	}

	if name != "" {
		for i, h := range headers {
			if h == name {
				return i, nil
			}
		}
		return -1, fmt.Errorf("dataset: column %q not found in header", name)
	}
	for _, alias := range aliases {
		for i, h := range headers {
			if h == alias {
				return i, nil
			}
		}
	}
	if aliases != nil {
		return len(headers) - 1, nil
	}
	return -1, errors.New("dataset: no column name given")
}

func skipRecord(record []string, filterIdx int, filterValue string) bool {
	if filterIdx < 0 {
		return false
	}
	if filterIdx >= len(record) {
		return true
	}
	return cleanCell(record[filterIdx]) != filterValue
}

func parseCell(record []string, idx int) (float64, bool) {
	if idx < 0 || idx >= len(record) {
		return 0, false
	}
	s := cleanCell(record[idx])
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func cleanCell(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}
