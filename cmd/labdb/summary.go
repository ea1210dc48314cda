// Summary command aggregates run statistics per experiment.
package main

import (
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-experiment run statistics",
	Long: `Summary prints one row per experiment with its run count, completed
run count, and earliest/latest run timestamps. Experiments without runs
appear with zero counts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		result, err := db.ExperimentSummary()
		if err != nil {
			return err
		}
		return printResult(cmd, result)
	},
}
