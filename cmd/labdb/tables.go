// Tables and info commands expose schema introspection.
package main

import (
	"github.com/spf13/cobra"
)

var flagTablesResults bool

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List tables in the database",
	Long: `Tables lists every table in the database catalog alphabetically.
With --results only the dynamic results-* tables are listed.

Example:
  labdb tables
  labdb tables --results`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		var names []string
		if flagTablesResults {
			names, err = db.ListResultTables()
		} else {
			names, err = db.ListTables()
		}
		if err != nil {
			return err
		}
		return printNames(cmd, names)
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <table>",
	Short: "Show column metadata for a table",
	Long: `Info prints the column metadata (name, declared type, nullability,
default, primary-key flag) of the named table. Result tables have
experiment-specific columns, so info is the way to discover them.

Example:
  labdb info runs
  labdb info results-1-2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		result, err := db.TableInfo(args[0])
		if err != nil {
			return err
		}
		return printResult(cmd, result)
	},
}

func init() {
	tablesCmd.Flags().BoolVar(&flagTablesResults, "results", false, "list only results-* tables")
}
