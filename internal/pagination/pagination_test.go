package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrollfeed/scrollfeed/internal/feed"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{name: "valid default", params: *NewParams()},
		{name: "valid offset mode", params: Params{Limit: 10, Offset: 20}},
		{name: "valid page mode", params: Params{Page: 2, PageSize: 10}},
		{name: "negative limit", params: Params{Limit: -1}, wantErr: ErrNegativeLimit},
		{name: "negative offset", params: Params{Offset: -1}, wantErr: ErrNegativeOffset},
		{name: "negative page", params: Params{Page: -1}, wantErr: ErrNegativePage},
		{name: "negative page-size", params: Params{PageSize: -1}, wantErr: ErrNegativePageSize},
		{name: "mixed modes", params: Params{Page: 1, Offset: 10}, wantErr: ErrMixedModes},
		{name: "page-size without page", params: Params{PageSize: 10}, wantErr: ErrPageRequired},
		{name: "page without page-size", params: Params{Page: 2}, wantErr: ErrPageSizeRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParams_EffectiveRange(t *testing.T) {
	offset, limit := Params{Limit: 25, Offset: 50}.EffectiveRange()
	assert.Equal(t, 50, offset)
	assert.Equal(t, 25, limit)

	offset, limit = Params{Page: 3, PageSize: 20}.EffectiveRange()
	assert.Equal(t, 40, offset)
	assert.Equal(t, 20, limit)
}

func TestParams_TotalPages(t *testing.T) {
	p := Params{Page: 1, PageSize: 20}
	assert.Equal(t, 5, p.TotalPages(100))
	assert.Equal(t, 6, p.TotalPages(101))
	assert.Equal(t, 0, p.TotalPages(0))
}

func TestApply(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name      string
		params    Params
		wantLen   int
		wantFirst int
	}{
		{name: "offset window", params: Params{Limit: 10, Offset: 20}, wantLen: 10, wantFirst: 20},
		{name: "first page", params: Params{Page: 1, PageSize: 20}, wantLen: 20, wantFirst: 0},
		{name: "last page", params: Params{Page: 5, PageSize: 20}, wantLen: 20, wantFirst: 80},
		{name: "page past end capped to last", params: Params{Page: 99, PageSize: 20}, wantLen: 20, wantFirst: 80},
		{name: "zero limit yields rest", params: Params{Offset: 90}, wantLen: 10, wantFirst: 90},
		{name: "window clipped at end", params: Params{Limit: 50, Offset: 80}, wantLen: 20, wantFirst: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.params, items)
			require.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantFirst, got[0])
		})
	}
}

func TestApply_OffsetPastEnd(t *testing.T) {
	items := []int{1, 2, 3}
	got := Apply(Params{Limit: 10, Offset: 10}, items)
	assert.Empty(t, got)
}

func TestApply_EmptyInput(t *testing.T) {
	assert.Empty(t, Apply(Params{Limit: 10}, []int{}))
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		expr      string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{name: "empty uses defaults", expr: "", wantField: "", wantOrder: SortOrderAsc},
		{name: "field only", expr: "label", wantField: "label", wantOrder: SortOrderAsc},
		{name: "field desc", expr: "index:desc", wantField: "index", wantOrder: SortOrderDesc},
		{name: "uppercase order", expr: "index:DESC", wantField: "index", wantOrder: SortOrderDesc},
		{name: "too many colons", expr: "a:b:c", wantErr: ErrInvalidSortExpr},
		{name: "empty field", expr: ":desc", wantErr: ErrEmptySortField},
		{name: "bad order", expr: "index:sideways", wantErr: ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order, err := ParseSort(tt.expr)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(Params{Page: 2, PageSize: 20}, 100)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 20, meta.PageSize)
	assert.Equal(t, 5, meta.TotalPages)
	assert.Equal(t, 100, meta.TotalItems)
	assert.True(t, meta.HasPrevious)
	assert.True(t, meta.HasNext)
}

func TestNewMeta_OffsetMode(t *testing.T) {
	meta := NewMeta(Params{Limit: 20, Offset: 80}, 100)
	assert.Equal(t, 5, meta.CurrentPage)
	assert.Equal(t, 5, meta.TotalPages)
	assert.True(t, meta.HasPrevious)
	assert.False(t, meta.HasNext)
}

func TestNewMeta_SinglePage(t *testing.T) {
	meta := NewMeta(Params{}, 42)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, 42, meta.PageSize)
	assert.Equal(t, 1, meta.TotalPages)
	assert.False(t, meta.HasPrevious)
	assert.False(t, meta.HasNext)
}

func TestItemSorter(t *testing.T) {
	items := []feed.Item{
		{ID: "c", Index: 2, Label: "charlie"},
		{ID: "a", Index: 0, Label: "alpha"},
		{ID: "b", Index: 1, Label: "bravo"},
	}

	sorter := NewItemSorter()

	byLabel := sorter.Sort(items, "label", SortOrderAsc)
	assert.Equal(t, "alpha", byLabel[0].Label)
	assert.Equal(t, "charlie", byLabel[2].Label)

	byIndexDesc := sorter.Sort(items, "index", SortOrderDesc)
	assert.Equal(t, 2, byIndexDesc[0].Index)
	assert.Equal(t, 0, byIndexDesc[2].Index)

	// Original order is untouched.
	assert.Equal(t, "c", items[0].ID)
}

func TestItemSorter_InvalidFieldIsNoop(t *testing.T) {
	items := []feed.Item{{Index: 1}, {Index: 0}}
	sorter := NewItemSorter()

	got := sorter.Sort(items, "savings", SortOrderAsc)
	assert.Equal(t, items, got)
	assert.False(t, sorter.IsValidField("savings"))
}

func TestItemSorter_ValidFields(t *testing.T) {
	assert.Equal(t, []string{"id", "index", "label"}, NewItemSorter().ValidFields())
}
