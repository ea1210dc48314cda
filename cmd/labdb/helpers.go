// Shared helpers for labdb CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/labdb/internal/sqlite"
	"github.com/mesh-intelligence/labdb/pkg/types"
)

// openDatabase resolves the database path and opens it. The caller must
// defer db.Close().
func openDatabase() (*sqlite.DB, error) {
	path, err := resolveDatabasePath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	db, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// printResult writes a tabular result to the command's stdout, either as
// aligned columns or, with --json, as an array of column-keyed objects.
func printResult(cmd *cobra.Command, result *types.Result) error {
	if flagJSON {
		return printJSON(cmd, result.Maps())
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for i, col := range result.Columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)
	for _, row := range result.Rows {
		for i, v := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			if v == nil {
				fmt.Fprint(w, "-")
			} else {
				fmt.Fprintf(w, "%v", v)
			}
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// printNames writes a list of table names, one per line, or as a JSON
// array with --json.
func printNames(cmd *cobra.Command, names []string) error {
	if flagJSON {
		return printJSON(cmd, names)
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

// parseID parses a decimal ID argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q", arg)
	}
	return id, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
