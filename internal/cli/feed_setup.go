package cli

import (
	"fmt"

	"github.com/scrollfeed/scrollfeed/internal/config"
	"github.com/scrollfeed/scrollfeed/internal/feed"
	"github.com/scrollfeed/scrollfeed/internal/feed/cache"
	"github.com/scrollfeed/scrollfeed/internal/logging"
)

// feedFlags are the per-command overrides for the demo feed shape.
// Zero values mean "use the config file".
type feedFlags struct {
	total    int
	pageSize int

	// latencyMS overrides the simulated fetch latency; negative means
	// use the config value.
	latencyMS int

	// failPage injects a single transient failure on the given page;
	// negative disables injection.
	failPage int

	noCache bool
}

// applyTo folds the flag overrides into the loaded config.
func (f feedFlags) applyTo(cfg *config.Config) {
	if f.total > 0 {
		cfg.Feed.TotalItems = f.total
	}
	if f.pageSize > 0 {
		cfg.Feed.PageSize = f.pageSize
	}
	if f.latencyMS >= 0 {
		cfg.Feed.LatencyMS = f.latencyMS
	}
}

// buildSource assembles the demo source from config, optionally
// wrapped by the file-backed page cache.
func buildSource(cfg *config.Config, flags feedFlags) (feed.Source, error) {
	opts := []feed.SliceSourceOption{
		feed.WithLatency(cfg.Feed.Latency()),
	}
	if flags.failPage >= 0 {
		opts = append(opts, feed.WithFailPageOnce(flags.failPage))
	}

	src, err := feed.NewDemoSource(cfg.Feed.TotalItems, cfg.Feed.PageSize, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed source: %w", err)
	}

	enabled := cache.EnabledFromEnv(cfg.Cache.Enabled)
	if !enabled || flags.noCache {
		return src, nil
	}

	ttl, err := cache.TTLFromEnv(cfg.Cache.TTL())
	if err != nil {
		return nil, err
	}

	store, err := cache.NewFileStore(cache.DirFromEnv(cfg.Cache.Directory), true, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to open page cache: %w", err)
	}

	return feed.NewCachedSource(src, store, logging.ComponentLogger(logger, "cache")), nil
}
