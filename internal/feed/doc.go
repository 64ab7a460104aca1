// Package feed implements incremental page loading for large item feeds.
//
// The central type is Loader, which serves a display sequence that grows
// as the consumer scrolls: fixed-size pages are fetched on demand from a
// Source, appended in order, and never re-fetched or duplicated. A busy
// flag guarantees at most one fetch is in flight; completions are
// delivered back to the owner on a capacity-1 event channel so the
// rendering path stays responsive while a fetch resolves.
package feed
