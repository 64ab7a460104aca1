package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/scrollfeed/scrollfeed/internal/feed/cache"
)

// CachedSource wraps a Source with a file-based page cache. Cache hits
// skip the inner fetch (and its latency) entirely; misses and cache
// errors fall through to the inner source, and failed cache writes are
// logged but never fail the fetch.
type CachedSource struct {
	inner Source
	store *cache.FileStore
	log   zerolog.Logger
}

// NewCachedSource wraps inner with the given store.
func NewCachedSource(inner Source, store *cache.FileStore, log zerolog.Logger) *CachedSource {
	return &CachedSource{
		inner: inner,
		store: store,
		log:   log,
	}
}

// FetchPage returns the cached page when present and fresh, fetching
// and caching it otherwise.
func (s *CachedSource) FetchPage(ctx context.Context, page int) ([]Item, error) {
	key := s.pageKey(page)

	entry, err := s.store.Get(key)
	if err == nil {
		var items []Item
		if unmarshalErr := json.Unmarshal(entry.Data, &items); unmarshalErr == nil {
			s.log.Debug().Int("page", page).Msg("page cache hit")
			return items, nil
		}
		// Corrupt entry: fall through and refetch.
		s.log.Warn().Int("page", page).Msg("discarding corrupt cache entry")
	} else if !errors.Is(err, cache.ErrNotFound) &&
		!errors.Is(err, cache.ErrExpired) &&
		!errors.Is(err, cache.ErrDisabled) {
		s.log.Warn().Int("page", page).Err(err).Msg("page cache read failed")
	}

	items, err := s.inner.FetchPage(ctx, page)
	if err != nil {
		return nil, err
	}

	if encoded, marshalErr := json.Marshal(items); marshalErr == nil {
		if setErr := s.store.Set(key, encoded); setErr != nil && !errors.Is(setErr, cache.ErrDisabled) {
			s.log.Warn().Int("page", page).Err(setErr).Msg("page cache write failed")
		}
	}

	return items, nil
}

// PageSize returns the inner source's page size.
func (s *CachedSource) PageSize() int {
	return s.inner.PageSize()
}

// Len returns the inner source's total item count.
func (s *CachedSource) Len() int {
	return s.inner.Len()
}

// pageKey fingerprints the source shape so differently sized feeds
// never share entries.
func (s *CachedSource) pageKey(page int) string {
	return fmt.Sprintf("feed-%d-%d-page-%d", s.inner.Len(), s.inner.PageSize(), page)
}
