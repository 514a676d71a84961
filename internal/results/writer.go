// Package results writes annotated source tables and run summaries.
package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/lehigh-university-libraries/quartiles/internal/dataset"
	"github.com/lehigh-university-libraries/quartiles/internal/quartile"
)

// Column names of the joined values appended to the source columns.
const (
	ColumnJoinedMetric     = "cwts_snip"
	ColumnJoinedLowerBound = "cwts_lower_bound"
	ColumnQuartile         = "quartile"
)

// OutputRow is the Parquet layout of an annotated record. Missing metrics are null.
type OutputRow struct {
	Index            int64    `parquet:"index"`
	SourceID         string   `parquet:"source_id"`
	Title            string   `parquet:"title"`
	SNIP             *float64 `parquet:"snip,optional"`
	PrintISSN        string   `parquet:"print_issn"`
	ElectronicISSN   string   `parquet:"e_issn"`
	JoinedSNIP       *float64 `parquet:"cwts_snip,optional"`
	JoinedLowerBound *float64 `parquet:"cwts_lower_bound,optional"`
	Quartile         string   `parquet:"quartile"`
}

// WriteCSV writes one row per record behind a leading unnamed row-index column.
// Source columns keep their input names.
func WriteCSV(w io.Writer, cols dataset.SourceColumns, records []quartile.AnnotatedRecord) error {
	writer := csv.NewWriter(w)

	header := []string{"", cols.ID, cols.Title, cols.Metric, cols.PrintISSN, cols.ElectronicISSN,
		ColumnJoinedMetric, ColumnJoinedLowerBound, ColumnQuartile}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, r := range records {
		joined := r.Joined()
		row := []string{
			strconv.Itoa(i),
			r.SourceID,
			r.Title,
			formatFloat(r.Metric),
			r.PrintISSN,
			r.ElectronicISSN,
			formatFloat(joined.Metric),
			formatFloat(joined.LowerBound),
			string(r.Label),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteParquet writes records using the OutputRow layout.
func WriteParquet(w io.Writer, records []quartile.AnnotatedRecord) error {
	rows := make([]OutputRow, len(records))
	for i, r := range records {
		joined := r.Joined()
		rows[i] = OutputRow{
			Index:            int64(i),
			SourceID:         r.SourceID,
			Title:            r.Title,
			SNIP:             optionalFloat(r.Metric),
			PrintISSN:        r.PrintISSN,
			ElectronicISSN:   r.ElectronicISSN,
			JoinedSNIP:       optionalFloat(joined.Metric),
			JoinedLowerBound: optionalFloat(joined.LowerBound),
			Quartile:         string(r.Label),
		}
	}

	writer := parquet.NewGenericWriter[OutputRow](w)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// Save writes records to path as CSV, or Parquet when path ends in .parquet.
// The file is written beside path and renamed into place, so a failed run
// leaves no partial output.
func Save(path string, cols dataset.SourceColumns, records []quartile.AnnotatedRecord) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".quartiles-*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		err = WriteParquet(tmp, records)
	} else {
		err = WriteCSV(tmp, cols, records)
	}
	if err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set output permissions: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optionalFloat(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
