// Data command reads measurement rows from result tables.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagDataLimit int64
	flagDataRun   int64
)

var dataCmd = &cobra.Command{
	Use:   "data [table]",
	Short: "Show measurement data from a result table",
	Long: `Data prints rows from a result table, ordered by the id column.
The table is named either directly or indirectly through --run, which
resolves the run's registered result table first.

Example:
  labdb data results-1-2
  labdb data --run 42 --limit 100`,
	Args: cobra.MaximumNArgs(1),
	RunE: runData,
}

func init() {
	dataCmd.Flags().Int64Var(&flagDataLimit, "limit", 100, "maximum number of rows")
	dataCmd.Flags().Int64Var(&flagDataRun, "run", 0, "resolve the result table of this run")
}

func runData(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !cmd.Flags().Changed("run") {
		return fmt.Errorf("either a table name or --run is required")
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if cmd.Flags().Changed("run") {
		result, err := db.ResultDataByRunID(flagDataRun, flagDataLimit)
		if err != nil {
			return err
		}
		return printResult(cmd, result)
	}

	result, err := db.ResultData(args[0], flagDataLimit)
	if err != nil {
		return err
	}

	count, err := db.CountResultRows(args[0])
	if err != nil {
		return err
	}
	if err := printResult(cmd, result); err != nil {
		return err
	}
	if !flagJSON && int64(result.Len()) < count {
		fmt.Fprintf(cmd.OutOrStdout(), "(%d of %d rows)\n", result.Len(), count)
	}
	return nil
}
