package pagination

import (
	"sort"

	"github.com/scrollfeed/scrollfeed/internal/feed"
)

// ItemSorter sorts feed items by a validated field name.
type ItemSorter struct {
	validFields map[string]bool
}

// NewItemSorter creates a sorter over the feed item fields.
func NewItemSorter() *ItemSorter {
	return &ItemSorter{
		validFields: map[string]bool{
			"index": true,
			"label": true,
			"id":    true,
		},
	}
}

// IsValidField checks whether field can be sorted on.
func (s *ItemSorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// ValidFields returns the sortable field names in consistent order.
func (s *ItemSorter) ValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns a new slice sorted by field and order. The original
// slice is not modified. An invalid field returns the input unchanged.
func (s *ItemSorter) Sort(items []feed.Item, field, order string) []feed.Item {
	if !s.IsValidField(field) {
		return items
	}

	sorted := make([]feed.Item, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortOrderDesc {
			i, j = j, i
		}

		switch field {
		case "index":
			return sorted[i].Index < sorted[j].Index
		case "label":
			return sorted[i].Label < sorted[j].Label
		case "id":
			return sorted[i].ID < sorted[j].ID
		default:
			return false
		}
	})

	return sorted
}
