package tui

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/scrollfeed/scrollfeed/internal/feed"
)

var feedPrinter = message.NewPrinter(language.English)

// renderItemRow renders one feed item as a list row.
func renderItemRow(item feed.Item, selected bool) string {
	row := fmt.Sprintf("%5d  %s", item.Index, item.Label)
	if selected {
		return SelectedRowStyle.Render("> " + row)
	}
	return "  " + row
}

// RenderFeedHeader shows loading progress: how much of the source has
// been fetched so far.
func RenderFeedHeader(loader *feed.Loader) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("ScrollFeed"))
	sb.WriteString("\n")
	sb.WriteString(LabelStyle.Render("Loaded: "))
	sb.WriteString(ValueStyle.Render(feedPrinter.Sprintf("%d of %d items", loader.Count(), loader.TotalItems())))
	sb.WriteString(SubtleStyle.Render(fmt.Sprintf("  (page %d/%d)", loader.Cursor(), loader.TotalPages())))
	return sb.String()
}

// RenderItemDetail renders the full detail view for a single item.
func RenderItemDetail(item feed.Item, width int) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Item Details"))
	sb.WriteString("\n\n")

	var body strings.Builder
	body.WriteString(LabelStyle.Render("ID:    "))
	body.WriteString(ValueStyle.Render(item.ID))
	body.WriteString("\n")
	body.WriteString(LabelStyle.Render("Index: "))
	body.WriteString(ValueStyle.Render(fmt.Sprintf("%d", item.Index)))
	body.WriteString("\n")
	body.WriteString(LabelStyle.Render("Label: "))
	body.WriteString(ValueStyle.Render(item.Label))

	box := BoxStyle
	if width > 4 {
		box = box.Width(width - 4)
	}
	sb.WriteString(box.Render(body.String()))
	sb.WriteString("\n\n")
	sb.WriteString(SubtleStyle.Render("[Esc] Back  [q] Quit"))
	return sb.String()
}

// RenderFetchError renders a failed page fetch with the retry hint.
func RenderFetchError(err error) string {
	return ErrorStyle.Render(fmt.Sprintf("Fetch failed: %v", err)) +
		SubtleStyle.Render("  press r to retry")
}
