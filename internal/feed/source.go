package feed

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// Default feed dimensions.
const (
	// DefaultPageSize is the number of items per fetched page.
	DefaultPageSize = 20

	// DefaultTotalItems is the size of the demo backing source.
	DefaultTotalItems = 100
)

// Common source errors.
var (
	ErrInvalidPageSize = errors.New("page size must be >= 1")
	ErrNegativePage    = errors.New("page index cannot be negative")
)

// Source is a pull interface over a paged item collection. In this
// repository the implementations are in-memory, standing in for the
// network or database call an integrator would substitute.
type Source interface {
	// FetchPage returns the fixed-size slice of items at page (0-based).
	// The final page may be shorter than PageSize. Pages past the end
	// resolve to an empty slice, not an error.
	FetchPage(ctx context.Context, page int) ([]Item, error)

	// PageSize returns the fixed page size partitioning the source.
	PageSize() int

	// Len returns the total number of items in the backing source.
	Len() int
}

// SliceSource serves pages from an in-memory item slice with an
// optional simulated latency per fetch. It is safe for concurrent use:
// the backing slice is never mutated after construction.
type SliceSource struct {
	items    []Item
	pageSize int
	latency  time.Duration

	// failPage is the 0-based page whose first fetch fails, for
	// exercising the error/retry path. Negative disables.
	failPage int
	failed   atomic.Bool
}

// SliceSourceOption configures a SliceSource.
type SliceSourceOption func(*SliceSource)

// WithLatency sets a simulated per-fetch latency.
func WithLatency(d time.Duration) SliceSourceOption {
	return func(s *SliceSource) {
		s.latency = d
	}
}

// WithFailPageOnce makes the first fetch of the given page fail.
// Subsequent fetches of the same page succeed, so the retry path can be
// demonstrated end to end.
func WithFailPageOnce(page int) SliceSourceOption {
	return func(s *SliceSource) {
		s.failPage = page
	}
}

// NewSliceSource creates a source over the given items.
func NewSliceSource(items []Item, pageSize int, opts ...SliceSourceOption) (*SliceSource, error) {
	if pageSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, pageSize)
	}

	s := &SliceSource{
		items:    items,
		pageSize: pageSize,
		failPage: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewDemoSource creates a source of total generated items labeled
// "Item #0" through "Item #<total-1>".
func NewDemoSource(total, pageSize int, opts ...SliceSourceOption) (*SliceSource, error) {
	if total < 0 {
		total = 0
	}

	items := make([]Item, total)
	for i := range items {
		items[i] = NewItem(i, fmt.Sprintf("Item #%d", i))
	}
	return NewSliceSource(items, pageSize, opts...)
}

// FetchPage returns the page-th slice of the backing items after the
// configured latency elapses. The latency wait respects ctx
// cancellation.
func (s *SliceSource) FetchPage(ctx context.Context, page int) ([]Item, error) {
	if page < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativePage, page)
	}

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if page == s.failPage && s.failed.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("fetch page %d: simulated source failure", page)
	}

	start := page * s.pageSize
	if start >= len(s.items) {
		return []Item{}, nil
	}

	end := start + s.pageSize
	if end > len(s.items) {
		end = len(s.items)
	}

	// Copy so callers can never alias the backing slice.
	out := make([]Item, end-start)
	copy(out, s.items[start:end])
	return out, nil
}

// PageSize returns the fixed page size.
func (s *SliceSource) PageSize() int {
	return s.pageSize
}

// Len returns the total number of backing items.
func (s *SliceSource) Len() int {
	return len(s.items)
}
