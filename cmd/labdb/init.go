// Init command creates an empty experiment database.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty experiment database",
	Long: `Init opens the configured database path, creating the file and the
fixed schema (experiments, runs, layouts, dependencies) if it does not
yet exist. Running init on an existing database is harmless.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "initialized %s\n", db.Path())
		return nil
	},
}
