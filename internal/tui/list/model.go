package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultBufferSize is the number of extra rows rendered above/below
// the viewport for smooth scrolling.
const defaultBufferSize = 5

// RenderFunc renders one item; selected marks the current selection.
type RenderFunc[T any] func(item T, selected bool) string

// Model implements virtual scrolling over a growable item list. Only
// the visible window plus a small buffer is rendered each frame.
type Model[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	// selected is the currently selected item index (0-based).
	selected int

	// visibleFrom/visibleTo bound the viewport window; visibleTo is
	// exclusive.
	visibleFrom int
	visibleTo   int

	height     int
	width      int
	bufferSize int
}

// New creates a virtual list over items with the given viewport size.
func New[T any](items []T, height, width int, renderFunc RenderFunc[T]) *Model[T] {
	m := &Model[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     height,
		width:      width,
		bufferSize: defaultBufferSize,
	}
	m.updateVisibleRange()
	return m
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and window resizes.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg), nil
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		m.updateVisibleRange()
		return m, nil
	}
	return m, nil
}

// handleKeyMsg processes keyboard navigation.
//
//nolint:exhaustive // Only navigation keys are relevant here.
func (m *Model[T]) handleKeyMsg(msg tea.KeyMsg) tea.Model {
	if len(m.items) == 0 {
		return m
	}

	switch msg.Type {
	case tea.KeyUp:
		m.MoveSelection(-1)

	case tea.KeyDown:
		m.MoveSelection(1)

	case tea.KeyPgUp:
		m.MoveSelection(-m.height)

	case tea.KeyPgDown:
		m.MoveSelection(m.height)

	case tea.KeyHome:
		m.SetSelected(0)

	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)

	case tea.KeyRunes:
		// Vim-style navigation.
		if len(msg.Runes) > 0 {
			switch msg.Runes[0] {
			case 'j':
				m.MoveSelection(1)
			case 'k':
				m.MoveSelection(-1)
			case 'g':
				m.SetSelected(0)
			case 'G':
				m.SetSelected(len(m.items) - 1)
			}
		}

	default:
		// Other key types are the owner's concern.
	}

	return m
}

// MoveSelection moves the selection by delta rows, clamped to bounds.
func (m *Model[T]) MoveSelection(delta int) {
	m.SetSelected(m.selected + delta)
}

// SetSelected sets the selected index, clamped to valid bounds.
func (m *Model[T]) SetSelected(index int) {
	if len(m.items) == 0 {
		m.selected = 0
		return
	}

	switch {
	case index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}

	m.updateVisibleRange()
}

// Append adds items to the end of the list without disturbing the
// selection or scroll position. This is the growth path for
// incremental page loads.
func (m *Model[T]) Append(items ...T) {
	m.items = append(m.items, items...)
	m.updateVisibleRange()
}

// SetItems replaces the list contents, clamping the selection.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	if m.selected >= len(items) {
		m.selected = len(items) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.updateVisibleRange()
}

// NearEnd reports whether the last visible position is within
// threshold items of the end of the list. This is the prefetch
// trigger: far enough ahead that the user never hits a stall, close
// enough that scrolling the middle of a long list stays quiet.
func (m *Model[T]) NearEnd(threshold int) bool {
	if len(m.items) == 0 {
		return true
	}
	return m.visibleTo >= len(m.items)-threshold
}

// updateVisibleRange keeps the selected item inside the viewport,
// centering it when possible.
func (m *Model[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom = 0
		m.visibleTo = 0
		return
	}

	halfViewport := m.height / 2

	idealFrom := m.selected - halfViewport
	idealTo := m.selected + halfViewport

	if idealFrom < 0 {
		idealFrom = 0
		idealTo = m.height
	}

	if idealTo > len(m.items) {
		idealTo = len(m.items)
		idealFrom = idealTo - m.height
		if idealFrom < 0 {
			idealFrom = 0
		}
	}

	m.visibleFrom = idealFrom
	m.visibleTo = idealTo
}

// View renders the visible window plus buffer.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	renderFrom := m.visibleFrom - m.bufferSize
	if renderFrom < 0 {
		renderFrom = 0
	}

	renderTo := m.visibleTo + m.bufferSize
	if renderTo > len(m.items) {
		renderTo = len(m.items)
	}

	var sb strings.Builder
	for i := renderFrom; i < renderTo; i++ {
		if i > renderFrom {
			sb.WriteString("\n")
		}
		sb.WriteString(m.renderFunc(m.items[i], i == m.selected))
	}
	return sb.String()
}

// ItemCount returns the total number of items.
func (m *Model[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the selected item index.
func (m *Model[T]) Selected() int {
	return m.selected
}

// SelectedItem returns the selected item, or nil when the list is
// empty.
func (m *Model[T]) SelectedItem() *T {
	if len(m.items) == 0 || m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}

// VisibleFrom returns the first visible item index (inclusive).
func (m *Model[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible item index (exclusive).
func (m *Model[T]) VisibleTo() int {
	return m.visibleTo
}

// Height returns the viewport height.
func (m *Model[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *Model[T]) Width() int {
	return m.width
}
