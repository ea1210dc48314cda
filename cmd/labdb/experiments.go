// Experiments command lists and searches experiments.
package main

import (
	"github.com/spf13/cobra"
)

var flagExperimentName string

var experimentsCmd = &cobra.Command{
	Use:   "experiments [exp_id]",
	Short: "List experiments",
	Long: `Experiments lists all experiments ordered by exp_id. With an exp_id
argument it shows that single experiment; with --name it filters by
substring match on the experiment name.

Example:
  labdb experiments
  labdb experiments 3
  labdb experiments --name spectroscopy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExperiments,
}

func init() {
	experimentsCmd.Flags().StringVar(&flagExperimentName, "name", "", "filter by name substring")
}

func runExperiments(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if len(args) == 1 {
		expID, err := parseID(args[0])
		if err != nil {
			return err
		}
		result, err := db.ExperimentByID(expID)
		if err != nil {
			return err
		}
		return printResult(cmd, result)
	}

	if flagExperimentName != "" {
		result, err := db.ExperimentsByName(flagExperimentName)
		if err != nil {
			return err
		}
		return printResult(cmd, result)
	}

	result, err := db.AllExperiments()
	if err != nil {
		return err
	}
	return printResult(cmd, result)
}
