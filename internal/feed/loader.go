package feed

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// PageEvent is delivered on Loader.Events when an accepted fetch
// completes. Exactly one event is delivered per accepted request.
type PageEvent struct {
	// Page is the 0-based index of the fetched page.
	Page int

	// Items is the fetched slice. Empty when Err is set.
	Items []Item

	// Err is the fetch failure, if any. The loader's cursor is left
	// unchanged on failure so the same page is retried by the next
	// request.
	Err error
}

// Loader serves a display sequence that grows one page at a time. The
// visible sequence is always an in-order prefix of the backing source:
// pages are appended exactly once, never reordered or deduplicated.
//
// At most one fetch is in flight at a time, gated by the busy flag.
// RequestNextPage while busy (or after the final page) is a silent
// no-op, so the consumer may call it on every scroll tick.
type Loader struct {
	source     Source
	pageSize   int
	totalPages int
	events     chan PageEvent
	log        zerolog.Logger

	mu     sync.Mutex
	items  []Item
	cursor int
	busy   bool
	err    error
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger attaches a logger for fetch lifecycle events.
func WithLogger(log zerolog.Logger) LoaderOption {
	return func(l *Loader) {
		l.log = log
	}
}

// NewLoader creates a loader over the given source. The item sequence
// and cursor start empty; nothing is fetched until RequestNextPage.
func NewLoader(source Source, opts ...LoaderOption) *Loader {
	pageSize := source.PageSize()
	total := source.Len()

	totalPages := total / pageSize
	if total%pageSize > 0 {
		totalPages++
	}

	l := &Loader{
		source:     source,
		pageSize:   pageSize,
		totalPages: totalPages,
		// Capacity 1: the busy flag guarantees a single outstanding
		// fetch, so one buffered slot means the resolving goroutine
		// never outlives an unread completion by more than one event.
		events: make(chan PageEvent, 1),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RequestNextPage begins fetching the next page. It returns false and
// does nothing when a fetch is already outstanding or the final page
// has been appended; otherwise it sets the busy flag, resolves the
// fetch on a background goroutine, and returns true. The owner receives
// the completion on Events.
func (l *Loader) RequestNextPage(ctx context.Context) bool {
	l.mu.Lock()
	if l.busy || l.cursor >= l.totalPages {
		l.mu.Unlock()
		return false
	}
	l.busy = true
	page := l.cursor
	l.mu.Unlock()

	l.log.Debug().Int("page", page).Msg("fetching page")
	go l.resolve(ctx, page)
	return true
}

// resolve performs the blocking fetch for page and delivers the result.
func (l *Loader) resolve(ctx context.Context, page int) {
	items, err := l.source.FetchPage(ctx, page)

	l.mu.Lock()
	l.busy = false
	if err != nil {
		// Cursor unchanged: the next request retries this page.
		l.err = err
		l.mu.Unlock()

		l.log.Warn().Int("page", page).Err(err).Msg("page fetch failed")
		l.events <- PageEvent{Page: page, Err: err}
		return
	}
	l.items = append(l.items, items...)
	l.cursor++
	l.err = nil
	loaded := len(l.items)
	l.mu.Unlock()

	l.log.Debug().
		Int("page", page).
		Int("page_items", len(items)).
		Int("loaded", loaded).
		Msg("page fetched")
	l.events <- PageEvent{Page: page, Items: items}
}

// Events returns the completion channel. Each accepted request delivers
// exactly one event; the owner should consume it before issuing further
// requests that it also intends to wait on.
func (l *Loader) Events() <-chan PageEvent {
	return l.events
}

// Items returns a snapshot of the visible sequence. Growth between
// calls is monotonic: each snapshot is a prefix of every later one.
func (l *Loader) Items() []Item {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Count returns the number of items appended so far.
func (l *Loader) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Busy reports whether a fetch is outstanding. Consumers use it to gate
// prefetch requests and to render a busy indicator.
func (l *Loader) Busy() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.busy
}

// Cursor returns the count of pages already appended.
func (l *Loader) Cursor() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cursor
}

// Exhausted reports whether the final page has been appended. Once
// true, RequestNextPage is a permanent no-op; the loader has no reset.
func (l *Loader) Exhausted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cursor >= l.totalPages
}

// Err returns the most recent fetch failure, cleared by the next
// successful fetch.
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// TotalPages returns the number of pages in the backing source.
func (l *Loader) TotalPages() int {
	return l.totalPages
}

// TotalItems returns the size of the backing source.
func (l *Loader) TotalItems() int {
	return l.source.Len()
}

// PageSize returns the fixed page size.
func (l *Loader) PageSize() int {
	return l.pageSize
}
