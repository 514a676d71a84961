// Package dataset loads the source, reference and threshold tables into typed records.
package dataset

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/quartiles/internal/issn"
	"github.com/lehigh-university-libraries/quartiles/internal/table"
)

// ErrMissingColumn is returned when a required column is not in the header.
var ErrMissingColumn = errors.New("missing required column")

// Loader reads one table file
type Loader struct {
	path string
}

// NewLoader creates a new loader for the table at path
func NewLoader(path string) *Loader {
	return &Loader{
		path: path,
	}
}

// LoadSources reads source records. Blank identifier cells become the absent
// marker; no deduplication or padding happens here.
func (l *Loader) LoadSources(cols SourceColumns) ([]SourceRecord, error) {
	tbl, err := l.read()
	if err != nil {
		return nil, err
	}

	idx, err := resolve(tbl, cols.ID, cols.Title, cols.Metric, cols.PrintISSN, cols.ElectronicISSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}

	records := make([]SourceRecord, 0, tbl.Len())
	for i, row := range tbl.Rows {
		metric, err := parseFloat(row[idx[2]])
		if err != nil {
			return nil, fmt.Errorf("%s: row %d column %q: %w", l.path, i+1, cols.Metric, err)
		}

		records = append(records, SourceRecord{
			SourceID:       strings.TrimSpace(row[idx[0]]),
			Title:          row[idx[1]],
			Metric:         metric,
			PrintISSN:      identifierOrAbsent(row[idx[3]]),
			ElectronicISSN: identifierOrAbsent(row[idx[4]]),
		})
	}

	if len(records) > 0 {
		slog.Debug("First source record sample",
			"id", records[0].SourceID,
			"title", records[0].Title,
			"print_issn", records[0].PrintISSN,
			"e_issn", records[0].ElectronicISSN)
	}

	return records, nil
}

// LoadReferences reads every reference record; eligibility filtering is left to the caller.
// A blank or unreadable year becomes 0 and unreadable metrics become NaN, so a
// malformed row only drops out of the eligible set instead of failing the load.
func (l *Loader) LoadReferences(cols ReferenceColumns) ([]ReferenceRecord, error) {
	tbl, err := l.read()
	if err != nil {
		return nil, err
	}

	idx, err := resolve(tbl, cols.Title, cols.PrintISSN, cols.ElectronicISSN, cols.Metric, cols.LowerBound, cols.Type, cols.Year)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}

	records := make([]ReferenceRecord, 0, tbl.Len())
	for i, row := range tbl.Rows {
		year, err := parseYear(row[idx[6]])
		if err != nil {
			slog.Warn("Unreadable reference year, row will not be eligible",
				"path", l.path, "row", i+1, "error", err)
			year = 0
		}

		records = append(records, ReferenceRecord{
			Title:          row[idx[0]],
			PrintISSN:      strings.TrimSpace(row[idx[1]]),
			ElectronicISSN: strings.TrimSpace(row[idx[2]]),
			Metric:         l.lenientFloat(row[idx[3]], i+1, cols.Metric),
			LowerBound:     l.lenientFloat(row[idx[4]], i+1, cols.LowerBound),
			Type:           strings.TrimSpace(row[idx[5]]),
			Year:           year,
		})
	}

	return records, nil
}

// lenientFloat reads a reference metric cell, keeping unreadable values as NaN.
func (l *Loader) lenientFloat(cell string, row int, column string) float64 {
	v, err := parseFloat(cell)
	if err != nil {
		slog.Warn("Unreadable reference metric", "path", l.path, "row", row, "column", column, "error", err)
		return math.NaN()
	}
	return v
}

// LoadThresholds reads the per-year boundaries. A repeated year keeps its first row.
func (l *Loader) LoadThresholds(cols ThresholdColumns) (Thresholds, error) {
	tbl, err := l.read()
	if err != nil {
		return nil, err
	}

	idx, err := resolve(tbl, cols.Year, cols.Q1, cols.Q2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}

	thresholds := make(Thresholds, tbl.Len())
	for i, row := range tbl.Rows {
		year, err := parseYear(row[idx[0]])
		if err != nil {
			return nil, fmt.Errorf("%s: row %d column %q: %w", l.path, i+1, cols.Year, err)
		}
		q1, err := parseFloat(row[idx[1]])
		if err != nil {
			return nil, fmt.Errorf("%s: row %d column %q: %w", l.path, i+1, cols.Q1, err)
		}
		q2, err := parseFloat(row[idx[2]])
		if err != nil {
			return nil, fmt.Errorf("%s: row %d column %q: %w", l.path, i+1, cols.Q2, err)
		}

		if _, exists := thresholds[year]; exists {
			continue
		}
		thresholds[year] = Threshold{Year: year, Q1: q1, Q2: q2}
	}

	return thresholds, nil
}

func (l *Loader) read() (*table.Table, error) {
	tbl, err := table.Read(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", l.path, err)
	}
	slog.Debug("Table loaded", "path", l.path, "rows", tbl.Len(), "columns", len(tbl.Header))
	return tbl, nil
}

// resolve maps column names to positions, reporting every missing name at once.
func resolve(tbl *table.Table, names ...string) ([]int, error) {
	idx := make([]int, len(names))
	var missing []string
	for i, name := range names {
		col, ok := tbl.Column(name)
		if !ok {
			missing = append(missing, strconv.Quote(name))
			continue
		}
		idx[i] = col
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

func identifierOrAbsent(cell string) string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return issn.Absent
	}
	return cell
}

func parseFloat(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", cell, err)
	}
	return v, nil
}

// parseYear accepts "2020" as well as float renderings such as "2020.0".
// A blank cell is year 0, which never matches a target year.
func parseYear(cell string) (int, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, nil
	}
	if year, err := strconv.Atoi(cell); err == nil {
		return year, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("invalid year %q", cell)
	}
	return int(v), nil
}
