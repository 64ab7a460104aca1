package feed

import (
	"github.com/oklog/ulid/v2"
)

// Item is a single display record in a feed. Items are immutable once
// produced by a Source.
type Item struct {
	// ID is a ULID assigned when the item is produced.
	ID string `json:"id" yaml:"id"`

	// Index is the item's ordinal position in the backing source.
	Index int `json:"index" yaml:"index"`

	// Label is the display text for the item.
	Label string `json:"label" yaml:"label"`
}

// NewItem creates an item with a freshly generated ULID.
func NewItem(index int, label string) Item {
	return Item{
		ID:    ulid.Make().String(),
		Index: index,
		Label: label,
	}
}
