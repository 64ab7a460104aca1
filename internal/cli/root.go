// Package cli wires the scrollfeed commands: the interactive browser,
// non-interactive listing and export, and configuration management.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/scrollfeed/scrollfeed/internal/config"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the scrollfeed CLI.
func NewRootCmd(ver string) *cobra.Command {
	var logCleanup func() error

	cmd := &cobra.Command{
		Use:     "scrollfeed",
		Short:   "ScrollFeed incremental feed browser",
		Long:    "ScrollFeed: browse a paginated feed with incremental, scroll-driven loading",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logCleanup = setupLogging(cmd, cfg)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logCleanup != nil {
				return logCleanup()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to config file (default ~/.scrollfeed/config.yaml)")
	cmd.PersistentFlags().Bool("plain", false, "force plain, unstyled output")
	cmd.PersistentFlags().Bool("no-color", false, "disable color output")

	cmd.AddCommand(newBrowseCmd(), newListCmd(), newExportCmd(), newConfigCmd())

	return cmd
}

// loadConfig resolves the config path from the --config flag, the
// environment, or the default location, and loads it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

const rootCmdExample = `  # Browse the demo feed interactively
  scrollfeed browse

  # Browse a larger feed with slower simulated fetches
  scrollfeed browse --total 500 --latency 1500

  # List the first 10 items as a table
  scrollfeed list --limit 10

  # Page through items sorted label-descending
  scrollfeed list --page 2 --page-size 25 --sort label:desc

  # Export the whole feed as NDJSON
  scrollfeed export --output ndjson --file feed.ndjson

  # Initialize configuration
  scrollfeed config init`
