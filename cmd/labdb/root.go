// Root command for the labdb CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/labdb/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDatabase  string
	flagJSON      bool
)

// configDatabasePath holds the database path loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDatabasePath string

var rootCmd = &cobra.Command{
	Use:   "labdb",
	Short: "labdb browses a local experiment database",
	Long: `labdb is a convenience layer over a SQLite experiment database.
It tracks experiments, their runs, and per-run measurement tables, and
exposes a catalog of templated queries for browsing them.`,
	Version:      Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDatabasePath = cfg.GetString(cfgKeyDatabase)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "db", "", "database file (default: $(CWD)/experiments.db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(experimentsCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(dataCmd)
	rootCmd.AddCommand(summaryCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > LABDB_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDatabasePath returns the database file path following the
// precedence chain: --db flag > config.yaml db_path > LABDB_PATH env >
// $(CWD)/experiments.db.
func resolveDatabasePath() (string, error) {
	return paths.ResolveDatabasePath(flagDatabase, configDatabasePath)
}
