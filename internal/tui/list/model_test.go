package listview_test

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listview "github.com/scrollfeed/scrollfeed/internal/tui/list"
)

func renderPlain(item string, _ bool) string {
	return item
}

func makeItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("row %d", i)
	}
	return items
}

func TestModel_New(t *testing.T) {
	model := listview.New(makeItems(5), 20, 80, renderPlain)

	assert.Equal(t, 5, model.ItemCount())
	assert.Equal(t, 20, model.Height())
	assert.Equal(t, 80, model.Width())
	assert.Equal(t, 0, model.Selected())
	assert.Equal(t, 0, model.VisibleFrom())
}

func TestModel_VisibleRangeCalculation(t *testing.T) {
	tests := []struct {
		name           string
		totalItems     int
		viewportHeight int
		selectedIndex  int
		expectFrom     int
		expectTo       int
	}{
		{
			name:           "first page with 100 items",
			totalItems:     100,
			viewportHeight: 20,
			selectedIndex:  0,
			expectFrom:     0,
			expectTo:       20,
		},
		{
			name:           "middle page with 100 items",
			totalItems:     100,
			viewportHeight: 20,
			selectedIndex:  50,
			expectFrom:     40,
			expectTo:       60,
		},
		{
			name:           "last page with 100 items",
			totalItems:     100,
			viewportHeight: 20,
			selectedIndex:  99,
			expectFrom:     80,
			expectTo:       100,
		},
		{
			name:           "fewer items than viewport",
			totalItems:     10,
			viewportHeight: 20,
			selectedIndex:  5,
			expectFrom:     0,
			expectTo:       10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := listview.New(makeItems(tt.totalItems), tt.viewportHeight, 80, renderPlain)
			model.SetSelected(tt.selectedIndex)

			assert.Equal(t, tt.expectFrom, model.VisibleFrom())
			assert.Equal(t, tt.expectTo, model.VisibleTo())
		})
	}
}

func TestModel_SelectionClamping(t *testing.T) {
	model := listview.New(makeItems(10), 5, 80, renderPlain)

	model.SetSelected(-5)
	assert.Equal(t, 0, model.Selected())

	model.SetSelected(100)
	assert.Equal(t, 9, model.Selected())

	model.MoveSelection(-100)
	assert.Equal(t, 0, model.Selected())
}

func TestModel_KeyNavigation(t *testing.T) {
	model := listview.New(makeItems(100), 20, 80, renderPlain)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, ok := updated.(*listview.Model[string])
	require.True(t, ok)
	assert.Equal(t, 1, m.Selected())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = updated.(*listview.Model[string])
	assert.Equal(t, 2, m.Selected())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	m = updated.(*listview.Model[string])
	assert.Equal(t, 99, m.Selected())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = updated.(*listview.Model[string])
	assert.Equal(t, 0, m.Selected())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m = updated.(*listview.Model[string])
	assert.Equal(t, 20, m.Selected())
}

func TestModel_WindowResize(t *testing.T) {
	model := listview.New(makeItems(100), 20, 80, renderPlain)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := updated.(*listview.Model[string])

	assert.Equal(t, 40, m.Height())
	assert.Equal(t, 120, m.Width())
	assert.Equal(t, 40, m.VisibleTo())
}

func TestModel_Append(t *testing.T) {
	model := listview.New(makeItems(20), 10, 80, renderPlain)
	model.SetSelected(5)

	model.Append(makeItems(20)...)

	assert.Equal(t, 40, model.ItemCount())
	// Selection and scroll are undisturbed by growth.
	assert.Equal(t, 5, model.Selected())
	assert.Equal(t, 0, model.VisibleFrom())
}

func TestModel_NearEnd(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		height    int
		selected  int
		threshold int
		want      bool
	}{
		{name: "top of long list", total: 100, height: 20, selected: 0, threshold: 5, want: false},
		{name: "middle of long list", total: 100, height: 20, selected: 50, threshold: 5, want: false},
		{name: "approaching the end", total: 100, height: 20, selected: 90, threshold: 5, want: true},
		{name: "at the end", total: 100, height: 20, selected: 99, threshold: 5, want: true},
		{name: "viewport reaches threshold zone", total: 100, height: 20, selected: 84, threshold: 5, want: false},
		{name: "short list always near end", total: 10, height: 20, selected: 0, threshold: 5, want: true},
		{name: "empty list near end", total: 0, height: 20, selected: 0, threshold: 5, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := listview.New(makeItems(tt.total), tt.height, 80, renderPlain)
			model.SetSelected(tt.selected)
			assert.Equal(t, tt.want, model.NearEnd(tt.threshold))
		})
	}
}

func TestModel_SetItems(t *testing.T) {
	model := listview.New(makeItems(50), 10, 80, renderPlain)
	model.SetSelected(40)

	model.SetItems(makeItems(5))

	assert.Equal(t, 5, model.ItemCount())
	assert.Equal(t, 4, model.Selected())
}

func TestModel_View(t *testing.T) {
	model := listview.New([]string{"a", "b", "c"}, 10, 80, renderPlain)
	assert.Equal(t, "a\nb\nc", model.View())
}

func TestModel_ViewEmpty(t *testing.T) {
	model := listview.New([]string{}, 10, 80, renderPlain)
	assert.Empty(t, model.View())
}

func TestModel_ViewWindowsLargeList(t *testing.T) {
	model := listview.New(makeItems(10000), 20, 80, renderPlain)
	model.SetSelected(5000)

	view := model.View()
	assert.Contains(t, view, "row 5000")
	assert.NotContains(t, view, "row 0\n")
	assert.NotContains(t, view, "row 9999")
}

func TestModel_SelectedItem(t *testing.T) {
	model := listview.New([]string{"a", "b"}, 10, 80, renderPlain)
	model.SetSelected(1)

	item := model.SelectedItem()
	require.NotNil(t, item)
	assert.Equal(t, "b", *item)

	empty := listview.New([]string{}, 10, 80, renderPlain)
	assert.Nil(t, empty.SelectedItem())
}
