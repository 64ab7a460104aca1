// Package listview implements a virtual-scrolling list for Bubble Tea
// models. Only the visible window plus a small buffer is rendered, so
// lists stay responsive at thousands of rows. The model reports its
// visible range and supports append-only growth, which the feed
// browser uses to trigger incremental page loads as the user scrolls
// toward the end.
package listview
