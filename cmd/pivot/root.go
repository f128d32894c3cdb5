// Root command: global flags and configuration preload.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pivot/internal/paths"
)

// Version is the CLI version reported by --version and the version command.
const Version = "0.2.0"

// Global flag values.
var (
	flagConfigDir string
	flagDBPath    string
	flagJSON      bool
)

// configDBPath holds the db_path value loaded from config.yaml. Set by
// PersistentPreRunE so all subcommands can use it.
var configDBPath string

var rootCmd = &cobra.Command{
	Use:   "pivot",
	Short: "Pivot tracks projects and views across window manager workspaces",
	Long: `Pivot keeps a persistent hierarchy of projects, each with an ordered
list of views, and maps it onto the window manager's flat workspace names.
Views cycle in order, and single-key pins recall any view instantly.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDBPath = cfg.GetString(cfgKeyDBPath)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "database file (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(pinCmd)
	rootCmd.AddCommand(focusCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(workspacesCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > PIVOT_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDBPath returns the database path following the precedence chain:
// --db flag > config.yaml db_path > PIVOT_DB_PATH env > default.
func resolveDBPath() (string, error) {
	return paths.ResolveDBPath(flagDBPath, configDBPath)
}
