// Runs command lists, filters and searches runs.
package main

import (
	"github.com/spf13/cobra"
)

var (
	flagRunLimit      int64
	flagRunExperiment int64
	flagRunCompleted  bool
	flagRunRecent     int64
	flagRunGUID       string
)

var runsCmd = &cobra.Command{
	Use:   "runs [run_id]",
	Short: "List runs",
	Long: `Runs lists the most recent runs (newest first). With a run_id
argument it shows that single run. Flags narrow the listing:

  --experiment  runs of one experiment, oldest first
  --completed   completed runs only, most recently completed first
  --recent      runs started within the past N hours
  --guid        runs whose GUID contains the given fragment

Example:
  labdb runs --limit 10
  labdb runs 42
  labdb runs --experiment 3
  labdb runs --experiment 3 --completed
  labdb runs --recent 24
  labdb runs --guid 01890a5d`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().Int64Var(&flagRunLimit, "limit", 50, "maximum number of runs to list")
	runsCmd.Flags().Int64Var(&flagRunExperiment, "experiment", 0, "filter by experiment ID")
	runsCmd.Flags().BoolVar(&flagRunCompleted, "completed", false, "completed runs only")
	runsCmd.Flags().Int64Var(&flagRunRecent, "recent", 0, "runs started within the past N hours")
	runsCmd.Flags().StringVar(&flagRunGUID, "guid", "", "filter by GUID fragment")
}

func runRuns(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if len(args) == 1 {
		runID, err := parseID(args[0])
		if err != nil {
			return err
		}
		result, err := db.RunByID(runID)
		if err != nil {
			return err
		}
		return printResult(cmd, result)
	}

	switch {
	case flagRunGUID != "":
		result, err := db.SearchRunsByGUID(flagRunGUID)
		if err != nil {
			return err
		}
		return printResult(cmd, result)

	case flagRunRecent > 0:
		result, err := db.RecentRuns(flagRunRecent)
		if err != nil {
			return err
		}
		return printResult(cmd, result)

	case flagRunCompleted && cmd.Flags().Changed("experiment"):
		result, err := db.CompletedRunsForExperiment(flagRunExperiment)
		if err != nil {
			return err
		}
		return printResult(cmd, result)

	case flagRunCompleted:
		result, err := db.CompletedRuns()
		if err != nil {
			return err
		}
		return printResult(cmd, result)

	case cmd.Flags().Changed("experiment"):
		result, err := db.RunsByExperiment(flagRunExperiment)
		if err != nil {
			return err
		}
		return printResult(cmd, result)

	default:
		result, err := db.AllRuns(flagRunLimit)
		if err != nil {
			return err
		}
		return printResult(cmd, result)
	}
}
