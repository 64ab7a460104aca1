package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/scrollfeed/scrollfeed/internal/feed"
	"github.com/scrollfeed/scrollfeed/internal/logging"
)

// maxConcurrentFetches bounds parallel page fetches during export.
const maxConcurrentFetches = 4

// newExportCmd creates the export command, dumping the entire feed as
// JSON or NDJSON. Pages are fetched concurrently but emitted in source
// order.
func newExportCmd() *cobra.Command {
	var (
		flags  feedFlags
		output string
		file   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the entire feed as JSON or NDJSON",
		Example: `  # Dump the feed to stdout
  scrollfeed export --output json

  # Write NDJSON to a file
  scrollfeed export --output ndjson --file feed.ndjson`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, flags, output, file)
		},
	}

	cmd.Flags().IntVar(&flags.total, "total", 0, "total items in the demo feed (0 = config default)")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "items per fetched page (0 = config default)")
	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "output format: json or ndjson")
	cmd.Flags().StringVarP(&file, "file", "f", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "bypass the page cache")

	return cmd
}

func runExport(cmd *cobra.Command, flags feedFlags, output, file string) error {
	if output != outputJSON && output != outputNDJSON {
		return fmt.Errorf("unsupported export format: %s (use json or ndjson)", output)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags.latencyMS = 0
	flags.failPage = -1
	flags.applyTo(cfg)

	source, err := buildSource(cfg, flags)
	if err != nil {
		return err
	}

	items, err := collectAllItems(cmd.Context(), source)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if file != "" {
		f, createErr := os.Create(file)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer f.Close()
		out = f
	}

	if err := renderItems(out, output, items); err != nil {
		return err
	}

	log := logging.FromContext(cmd.Context())
	log.Info().Int("items", len(items)).Str("format", output).Msg("export complete")
	return nil
}

// collectAllItems fetches every page of source, a few in flight at a
// time, and reassembles them in page order.
func collectAllItems(ctx context.Context, source feed.Source) ([]feed.Item, error) {
	total := source.Len()
	if total == 0 {
		return nil, nil
	}

	pageSize := source.PageSize()
	pages := (total + pageSize - 1) / pageSize
	results := make([][]feed.Item, pages)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for page := 0; page < pages; page++ {
		page := page
		g.Go(func() error {
			items, err := source.FetchPage(ctx, page)
			if err != nil {
				return fmt.Errorf("failed to fetch page %d: %w", page, err)
			}
			results[page] = items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]feed.Item, 0, total)
	for _, pageItems := range results {
		items = append(items, pageItems...)
	}
	return items, nil
}
