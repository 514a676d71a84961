package quartilecmd

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/quartiles/internal/config"
	"github.com/lehigh-university-libraries/quartiles/internal/dataset"
)

// NewThresholdsCmd creates the thresholds command
func NewThresholdsCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:     "thresholds",
		Short:   "List the SNIP quartile boundaries per year",
		Example: `  quartiles thresholds --thresholds data/snip-thresholds.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(flags.verbose)

			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			return executeThresholds(cfg, cmd.OutOrStdout())
		},
	}

	flags.bind(cmd)

	return cmd
}

func executeThresholds(cfg *config.Config, out io.Writer) error {
	thresholds, err := dataset.NewLoader(cfg.Paths.Thresholds).LoadThresholds(cfg.ThresholdColumns)
	if err != nil {
		return fmt.Errorf("failed to load thresholds: %w", err)
	}

	years := make([]int, 0, len(thresholds))
	for year := range thresholds {
		years = append(years, year)
	}
	sort.Ints(years)

	rows := make([][]string, 0, len(years))
	for _, year := range years {
		t := thresholds[year]
		marker := ""
		if year == cfg.Year {
			marker = "*"
		}
		rows = append(rows, []string{
			strconv.Itoa(year) + marker,
			strconv.FormatFloat(t.Q1, 'f', -1, 64),
			strconv.FormatFloat(t.Q2, 'f', -1, 64),
		})
	}

	fmt.Fprintln(out, renderTable([]string{"Year", "Q1 boundary", "Q2 boundary"}, rows, 2, 3))

	if _, ok := thresholds[cfg.Year]; !ok {
		fmt.Fprintf(out, "Target year %d has no thresholds\n", cfg.Year)
	}

	return nil
}
