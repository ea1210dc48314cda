// Seed command populates a database with demo data.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/labdb/internal/sqlite"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with a demo dataset",
	Long: `Seed inserts a small demo dataset: two experiments, three runs
with layouts and dependencies, and two result tables. Intended for trying
out the query commands against a fresh store.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := sqlite.Seed(db); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", db.Path())
		return nil
	},
}
