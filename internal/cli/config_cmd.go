package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scrollfeed/scrollfeed/internal/config"
)

// newConfigCmd groups configuration management subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage scrollfeed configuration",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigValidateCmd())
	return cmd
}

// newConfigInitCmd creates the config init command.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create configuration at ~/.scrollfeed/config.yaml
  scrollfeed config init

  # Overwrite an existing configuration
  scrollfeed config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}

	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	cfg := config.Default()
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	cmd.Printf("Configuration written to %s\n", path)
	return nil
}

// newConfigValidateCmd creates the config validate command.
func newConfigValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Example: `  # Validate the current configuration
  scrollfeed config validate

  # Show the resolved values as well
  scrollfeed config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show resolved configuration values")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Println("Configuration is valid.")

	if verbose {
		cmd.Printf("  version:             %s\n", cfg.Version)
		cmd.Printf("  feed.total_items:    %d\n", cfg.Feed.TotalItems)
		cmd.Printf("  feed.page_size:      %d\n", cfg.Feed.PageSize)
		cmd.Printf("  feed.prefetch:       %d\n", cfg.Feed.PrefetchThreshold)
		cmd.Printf("  feed.latency:        %s\n", cfg.Feed.Latency())
		cmd.Printf("  cache.enabled:       %t\n", cfg.Cache.Enabled)
		cmd.Printf("  cache.ttl:           %s\n", cfg.Cache.TTL())
		cmd.Printf("  logging.level:       %s\n", cfg.Logging.Level)
	}

	return nil
}
