package quartilecmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/quartiles/internal/config"
	"github.com/lehigh-university-libraries/quartiles/internal/dataset"
	"github.com/lehigh-university-libraries/quartiles/internal/quartile"
	"github.com/lehigh-university-libraries/quartiles/internal/results"
)

// NewClassifyCmd creates the classify command
func NewClassifyCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Assign SNIP quartiles to a journal source list",
		Long: `Join a journal source list (Scopus) against journal indicators (CWTS) by
ISSN, falling back to E-ISSN, and label every source Q1, Q1*, Q2, Q2* or Other
using the SNIP thresholds of the target year.

The star marks a label earned by the SNIP point estimate rather than its lower bound.
The run aborts without writing anything when the year has no thresholds.`,
		Example: `  # Run with the default 2020 inputs under ./data
  quartiles classify

  # Classify against 2021 thresholds and write Parquet
  quartiles classify --year 2021 --output data/result-2021.parquet

  # Use a config file and keep a YAML run summary
  quartiles classify --config run.yaml --summary data/summary.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(flags.verbose)

			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			return executeClassify(cfg, cmd.OutOrStdout())
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&flags.output, "output", "", "Output path, .csv or .parquet")
	cmd.Flags().StringVar(&flags.summary, "summary", "", "Optional YAML run summary path")

	return cmd
}

// loadInputs reads the three tables, checking the threshold year before the
// larger tables are read.
func loadInputs(cfg *config.Config) ([]dataset.SourceRecord, []dataset.ReferenceRecord, dataset.Thresholds, error) {
	slog.Info("Loading thresholds", "path", cfg.Paths.Thresholds)
	thresholds, err := dataset.NewLoader(cfg.Paths.Thresholds).LoadThresholds(cfg.ThresholdColumns)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load thresholds: %w", err)
	}
	if _, err := quartile.ThresholdFor(thresholds, cfg.Year); err != nil {
		return nil, nil, nil, err
	}

	slog.Info("Loading sources", "path", cfg.Paths.Sources)
	sources, err := dataset.NewLoader(cfg.Paths.Sources).LoadSources(cfg.SourceColumns)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load sources: %w", err)
	}

	slog.Info("Loading references", "path", cfg.Paths.References)
	refs, err := dataset.NewLoader(cfg.Paths.References).LoadReferences(cfg.ReferenceColumns)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load references: %w", err)
	}

	slog.Info("Inputs loaded", "sources", len(sources), "references", len(refs), "threshold_years", len(thresholds))

	return sources, refs, thresholds, nil
}

func executeClassify(cfg *config.Config, out io.Writer) error {
	slog.Info("Starting classification",
		"year", cfg.Year,
		"sources", cfg.Paths.Sources,
		"references", cfg.Paths.References,
		"thresholds", cfg.Paths.Thresholds)

	sources, refs, thresholds, err := loadInputs(cfg)
	if err != nil {
		return err
	}

	res, err := quartile.Run(sources, refs, thresholds, options(cfg))
	if err != nil {
		return err
	}

	slog.Info("Saving results", "output", cfg.Paths.Output)
	if err := results.Save(cfg.Paths.Output, cfg.SourceColumns, res.Records); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	if cfg.Paths.Summary != "" {
		summary := results.NewRunSummary(runConfig(cfg), res)
		if err := results.SaveSummaryYAML(cfg.Paths.Summary, summary); err != nil {
			return fmt.Errorf("failed to save summary: %w", err)
		}
		slog.Info("Summary saved", "path", cfg.Paths.Summary, "run_id", summary.RunID)
	}

	fmt.Fprintf(out, "Quartiles for %d (Q1 >= %g, Q2 >= %g)\n", cfg.Year, res.Threshold.Q1, res.Threshold.Q2)
	fmt.Fprintln(out, renderCounts(res.Counts))
	fmt.Fprintf(out, "Matched by ISSN: %d, by E-ISSN: %d, unmatched: %d\n", res.MatchedPrint, res.MatchedElectronic, res.Unmatched)
	fmt.Fprintf(out, "\nResults saved to: %s\n", cfg.Paths.Output)

	return nil
}

func runConfig(cfg *config.Config) results.RunConfig {
	return results.RunConfig{
		Year:               cfg.Year,
		RecordType:         cfg.RecordType,
		StripSourceHyphens: cfg.StripSourceHyphens,
		Sources:            cfg.Paths.Sources,
		References:         cfg.Paths.References,
		Thresholds:         cfg.Paths.Thresholds,
		Output:             cfg.Paths.Output,
	}
}
