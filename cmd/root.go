package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/quartiles/internal/quartilecmd"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quartiles",
		Short: "Journal SNIP quartile classification",
		Long: `Quartiles labels journals from a source list (Scopus) with SNIP quartiles.

Sources are joined to CWTS Journal Indicators by ISSN, then E-ISSN, and compared
against the Q1/Q2 SNIP thresholds of a target year.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(quartilecmd.NewClassifyCmd())
	cmd.AddCommand(quartilecmd.NewSummaryCmd())
	cmd.AddCommand(quartilecmd.NewInspectCmd())
	cmd.AddCommand(quartilecmd.NewThresholdsCmd())

	return cmd
}
