package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scrollfeed/scrollfeed/internal/config"
	"github.com/scrollfeed/scrollfeed/internal/logging"
)

// setupLogging configures logging based on config file, environment,
// and CLI flags, and returns a cleanup func closing any log file.
func setupLogging(cmd *cobra.Command, cfg *config.Config) func() error {
	loggingCfg := cfg.Logging.ToLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	if envLevel := os.Getenv(config.EnvLogLevel); envLevel != "" && !debug {
		loggingCfg.Level = envLevel
	}

	base, closer := logging.NewWithCloser(loggingCfg)
	logger = logging.ComponentLogger(base, "cli")
	cmd.SetContext(logging.WithContext(cmd.Context(), logger))

	logger.Debug().Str("command", cmd.Name()).Msg("command started")

	return func() error {
		if closer != nil {
			return closer.Close()
		}
		return nil
	}
}
