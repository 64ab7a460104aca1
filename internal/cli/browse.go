package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/scrollfeed/scrollfeed/internal/feed"
	"github.com/scrollfeed/scrollfeed/internal/logging"
	"github.com/scrollfeed/scrollfeed/internal/tui"
)

// ErrNotATerminal is returned when browse runs without a TTY.
var ErrNotATerminal = errors.New("browse requires an interactive terminal")

// newBrowseCmd creates the interactive feed browser command.
func newBrowseCmd() *cobra.Command {
	var (
		flags     feedFlags
		threshold int
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the feed interactively with incremental loading",
		Long: `Opens a full-screen browser over the demo feed. Pages load on demand:
scrolling within the prefetch threshold of the last loaded item requests
the next page, one fetch at a time, until the source is exhausted.`,
		Example: `  # Browse the default 100-item feed
  scrollfeed browse

  # A bigger feed with visible fetch latency
  scrollfeed browse --total 1000 --latency 2000

  # Exercise the failure path: page 2 fails once, press r to retry
  scrollfeed browse --fail-page 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, flags, threshold)
		},
	}

	cmd.Flags().IntVar(&flags.total, "total", 0, "total items in the demo feed (0 = config default)")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "items per fetched page (0 = config default)")
	cmd.Flags().IntVar(&flags.latencyMS, "latency", -1, "simulated fetch latency in milliseconds (-1 = config default)")
	cmd.Flags().IntVar(&flags.failPage, "fail-page", -1, "make the given page fail once, for exercising retry")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "prefetch threshold in items (0 = config default)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "bypass the page cache")

	return cmd
}

func runBrowse(cmd *cobra.Command, flags feedFlags, threshold int) error {
	plain, _ := cmd.Flags().GetBool("plain")
	noColor, _ := cmd.Flags().GetBool("no-color")
	if tui.DetectOutputMode(plain, noColor) != tui.OutputModeInteractive {
		return ErrNotATerminal
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags.applyTo(cfg)
	if threshold <= 0 {
		threshold = cfg.Feed.PrefetchThreshold
	}

	source, err := buildSource(cfg, flags)
	if err != nil {
		return err
	}

	loader := feed.NewLoader(source, feed.WithLogger(logging.ComponentLogger(logger, "loader")))
	model := tui.NewFeedModel(cmd.Context(), loader, threshold)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browser exited with error: %w", err)
	}
	return nil
}
