package quartilecmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/quartiles/internal/config"
	"github.com/lehigh-university-libraries/quartiles/internal/quartile"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var flags runFlags
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect [source-id...]",
		Short: "Show how individual sources were matched and labelled",
		Long: `Run the classification in memory and print, for each requested source,
the normalized identifiers, which index matched (ISSN or E-ISSN) and on which key,
the joined SNIP values, and the resulting label. Nothing is written to disk.

Without source ids the first --limit sources are shown.`,
		Example: `  # Inspect two Scopus sources
  quartiles inspect 21100829147 12345

  # Inspect the first 5 sources with hyphen stripping enabled
  quartiles inspect --limit 5 --strip-source-hyphens`,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(flags.verbose)

			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			return executeInspect(cfg, args, limit, cmd.OutOrStdout())
		},
	}

	flags.bind(cmd)
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of sources to show when no ids are given (0 for all)")

	return cmd
}

func executeInspect(cfg *config.Config, ids []string, limit int, out io.Writer) error {
	sources, refs, thresholds, err := loadInputs(cfg)
	if err != nil {
		return err
	}

	res, err := quartile.Run(sources, refs, thresholds, options(cfg))
	if err != nil {
		return err
	}

	var records []quartile.AnnotatedRecord
	if len(ids) > 0 {
		for _, id := range ids {
			rec, ok := res.Find(id)
			if !ok {
				fmt.Fprintf(out, "Source %s: not found\n\n", id)
				continue
			}
			records = append(records, rec)
		}
	} else {
		records = res.Records
		if limit > 0 && len(records) > limit {
			records = records[:limit]
		}
	}

	fmt.Fprintf(out, "Thresholds %d: Q1 >= %g, Q2 >= %g\n", cfg.Year, res.Threshold.Q1, res.Threshold.Q2)
	fmt.Fprintln(out, strings.Repeat("=", 80))

	for i, rec := range records {
		fmt.Fprintf(out, "RECORD %d/%d\n", i+1, len(records))
		fmt.Fprintln(out, strings.Repeat("-", 80))
		fmt.Fprintf(out, "Source ID:      %s\n", rec.SourceID)
		fmt.Fprintf(out, "Title:          %s\n", rec.Title)
		fmt.Fprintf(out, "ISSN:           %s\n", rec.PrintISSN)
		fmt.Fprintf(out, "E-ISSN:         %s\n", rec.ElectronicISSN)

		switch rec.Match.Via {
		case quartile.ViaPrint:
			fmt.Fprintf(out, "Matched:        ISSN %s\n", rec.Match.Key)
		case quartile.ViaElectronic:
			fmt.Fprintf(out, "Matched:        E-ISSN %s\n", rec.Match.Key)
		default:
			fmt.Fprintln(out, "Matched:        no")
		}

		joined := rec.Joined()
		fmt.Fprintf(out, "SNIP:           %g\n", joined.Metric)
		fmt.Fprintf(out, "SNIP lower:     %g\n", joined.LowerBound)
		fmt.Fprintf(out, "Quartile:       %s\n", rec.Label)
		fmt.Fprintln(out)
	}

	return nil
}
