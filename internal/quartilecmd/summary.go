package quartilecmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/quartiles/internal/quartile"
	"github.com/lehigh-university-libraries/quartiles/internal/results"
	"github.com/lehigh-university-libraries/quartiles/internal/table"
)

// NewSummaryCmd creates the summary command
func NewSummaryCmd() *cobra.Command {
	var input string
	var column string
	var format string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Count quartile labels in a classified table",
		Long: `Read a table written by "quartiles classify" and count the records per
quartile label, ordered by label.`,
		Example: `  # Print counts as a table
  quartiles summary --input data/result_scopus_sources_with_quartiles.csv

  # Emit JSON
  quartiles summary --input data/result.parquet --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)
			return executeSummary(input, column, format, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Classified table, .csv or .parquet (required)")
	cmd.Flags().StringVar(&column, "column", results.ColumnQuartile, "Name of the quartile column")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, csv)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func executeSummary(input, column, format string, out io.Writer) error {
	tbl, err := table.Read(input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", input, err)
	}

	col, ok := tbl.Column(column)
	if !ok {
		return fmt.Errorf("%s has no %q column", input, column)
	}

	labels := make([]quartile.Label, tbl.Len())
	for i, row := range tbl.Rows {
		labels[i] = quartile.Label(row[col])
	}
	counts := quartile.CountLabels(labels)

	switch format {
	case "text":
		fmt.Fprintln(out, renderCounts(counts))
		return nil
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(counts)
	case "csv":
		return writeCountsCSV(out, counts)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeCountsCSV(out io.Writer, counts []quartile.LabelCount) error {
	writer := csv.NewWriter(out)
	if err := writer.Write([]string{"quartile", "count"}); err != nil {
		return err
	}
	for _, c := range counts {
		if err := writer.Write([]string{string(c.Label), strconv.Itoa(c.Count)}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
