// Package quartilecmd implements the quartiles subcommands.
package quartilecmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/quartiles/internal/config"
	"github.com/lehigh-university-libraries/quartiles/internal/quartile"
)

// runFlags are the settings shared by commands that run the pipeline.
type runFlags struct {
	configPath         string
	year               int
	sources            string
	references         string
	thresholds         string
	output             string
	summary            string
	stripSourceHyphens bool
	verbose            bool
}

func (f *runFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to a YAML or TOML run configuration (or set "+config.EnvConfigPath+")")
	cmd.Flags().IntVar(&f.year, "year", 0, "Target year (default from config, 2020)")
	cmd.Flags().StringVar(&f.sources, "sources", "", "Source list (Scopus) table, .csv or .parquet")
	cmd.Flags().StringVar(&f.references, "references", "", "Reference indicator (CWTS) table, .csv or .parquet")
	cmd.Flags().StringVar(&f.thresholds, "thresholds", "", "SNIP threshold table, .csv or .parquet")
	cmd.Flags().BoolVar(&f.stripSourceHyphens, "strip-source-hyphens", false, "Strip hyphens from source identifiers before joining")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "Verbose logging")
}

// resolve loads the config file and applies the flags that were set.
func (f *runFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("year") {
		cfg.Year = f.year
	}
	if flags.Changed("sources") {
		cfg.Paths.Sources = f.sources
	}
	if flags.Changed("references") {
		cfg.Paths.References = f.references
	}
	if flags.Changed("thresholds") {
		cfg.Paths.Thresholds = f.thresholds
	}
	if flags.Changed("output") {
		cfg.Paths.Output = f.output
	}
	if flags.Changed("summary") {
		cfg.Paths.Summary = f.summary
	}
	if flags.Changed("strip-source-hyphens") {
		cfg.StripSourceHyphens = f.stripSourceHyphens
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func options(cfg *config.Config) quartile.Options {
	return quartile.Options{
		Year:               cfg.Year,
		RecordType:         cfg.RecordType,
		StripSourceHyphens: cfg.StripSourceHyphens,
	}
}

// setupLogging installs a text handler on terminals and a JSON handler otherwise.
func setupLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// renderTable renders rows under headers. rightAligned holds 1-based column numbers.
func renderTable(headers []string, rows [][]string, rightAligned ...int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(tableRow(headers))
	for _, row := range rows {
		tw.AppendRow(tableRow(row))
	}

	configs := make([]table.ColumnConfig, 0, len(rightAligned))
	for _, n := range rightAligned {
		configs = append(configs, table.ColumnConfig{Number: n, Align: text.AlignRight, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func tableRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, cell := range cells {
		row[i] = cell
	}
	return row
}

// renderCounts renders label counts with a total row.
func renderCounts(counts []quartile.LabelCount) string {
	rows := make([][]string, 0, len(counts)+1)
	total := 0
	for _, c := range counts {
		rows = append(rows, []string{string(c.Label), fmt.Sprintf("%d", c.Count)})
		total += c.Count
	}
	rows = append(rows, []string{"Total", fmt.Sprintf("%d", total)})
	return renderTable([]string{"Quartile", "Count"}, rows, 2)
}
