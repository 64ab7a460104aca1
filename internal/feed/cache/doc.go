// Package cache provides a file-based page cache with TTL expiration.
//
// Fetched feed pages are stored as JSON files keyed by page index, so
// repeated non-interactive runs against a slow source can reuse pages
// instead of re-fetching them.
package cache
