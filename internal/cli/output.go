package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/scrollfeed/scrollfeed/internal/feed"
)

// Supported output formats for non-interactive commands.
const (
	outputTable  = "table"
	outputJSON   = "json"
	outputNDJSON = "ndjson"
)

// englishPrinter renders counts with thousands separators.
var englishPrinter = message.NewPrinter(language.English) //nolint:gochecknoglobals // Shared printer, stateless

// renderItems writes items in the requested format.
func renderItems(w io.Writer, format string, items []feed.Item) error {
	switch format {
	case outputTable:
		return renderItemTable(w, items)
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case outputNDJSON:
		enc := json.NewEncoder(w)
		for _, item := range items {
			if err := enc.Encode(item); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s (use table, json, or ndjson)", format)
	}
}

func renderItemTable(w io.Writer, items []feed.Item) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tID\tLABEL")
	for _, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", item.Index, item.ID, item.Label)
	}
	return tw.Flush()
}
