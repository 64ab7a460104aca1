package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scrollfeed/scrollfeed/internal/feed"
	listview "github.com/scrollfeed/scrollfeed/internal/tui/list"
)

// ViewState tracks which view the feed browser is showing.
type ViewState int

const (
	// ViewStateList is the scrollable feed list.
	ViewStateList ViewState = iota
	// ViewStateDetail shows a single item.
	ViewStateDetail
	// ViewStateQuitting means the program is exiting.
	ViewStateQuitting
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24

	// chromeHeight is the rows reserved around the list (header,
	// status line, help).
	chromeHeight = 6

	// minListHeight is the smallest usable list viewport.
	minListHeight = 3

	filterInputCharLimit = 64
	filterInputWidth     = 30
)

// pageLoadedMsg carries a loader completion back onto the render path.
type pageLoadedMsg struct {
	event feed.PageEvent
}

// FeedModel is the Bubble Tea model for the incremental feed browser.
// It owns a feed.Loader and applies the trigger protocol: whenever the
// visible range comes within the prefetch threshold of the end of the
// loaded sequence, the next page is requested — unless a fetch is
// already in flight or the source is exhausted.
type FeedModel struct {
	ctx    context.Context
	loader *feed.Loader

	list      *listview.Model[feed.Item]
	loading   *LoadingState
	textInput textinput.Model

	state      ViewState
	width      int
	height     int
	threshold  int
	showFilter bool
	fetchErr   error
}

// NewFeedModel creates a browser over loader. threshold is the
// scroll-proximity-to-end distance, in items, that triggers the next
// page fetch.
func NewFeedModel(ctx context.Context, loader *feed.Loader, threshold int) *FeedModel {
	ti := textinput.New()
	ti.Placeholder = "Filter items..."
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth

	m := &FeedModel{
		ctx:       ctx,
		loader:    loader,
		loading:   NewLoadingState("Loading page..."),
		textInput: ti,
		state:     ViewStateList,
		width:     defaultWidth,
		height:    defaultHeight,
		threshold: threshold,
	}
	m.list = listview.New(loader.Items(), m.listHeight(), m.width, renderItemRow)
	return m
}

// Init requests the first page and starts the spinner.
func (m *FeedModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.requestNext())
}

// Update handles messages and applies the prefetch trigger after
// navigation.
func (m *FeedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.Update(tea.WindowSizeMsg{Width: msg.Width, Height: m.listHeight()})
		return m, nil

	case pageLoadedMsg:
		return m.handlePageLoaded(msg)

	case spinner.TickMsg:
		return m, m.loading.Update(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handlePageLoaded applies a completed fetch to the visible list.
func (m *FeedModel) handlePageLoaded(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.event.Err != nil {
		m.fetchErr = msg.event.Err
		return m, nil
	}

	m.fetchErr = nil
	if m.filterQuery() == "" {
		m.list.Append(msg.event.Items...)
	} else {
		m.applyFilter()
	}

	// A short viewport can still be hungry after one page.
	return m, m.maybePrefetch()
}

// handleKeyMsg routes keys by view state.
func (m *FeedModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showFilter {
		return m.handleFilterInput(msg)
	}

	switch m.state {
	case ViewStateList:
		return m.handleListKey(msg)
	case ViewStateDetail:
		return m.handleDetailKey(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m *FeedModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit

	case keySlash:
		m.showFilter = true
		m.textInput.Focus()
		return m, textinput.Blink

	case keyRetry:
		if m.fetchErr != nil {
			return m, m.requestNext()
		}
		return m, nil

	case keyEnter:
		if m.list.ItemCount() > 0 {
			m.state = ViewStateDetail
		}
		return m, nil

	case keyEsc:
		if m.textInput.Value() != "" {
			m.textInput.SetValue("")
			m.applyFilter()
		}
		return m, nil
	}

	m.list.Update(msg)
	return m, m.maybePrefetch()
}

func (m *FeedModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEsc:
		m.state = ViewStateList
	}
	return m, nil
}

func (m *FeedModel) handleFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEnter, keyEsc:
		m.showFilter = false
		m.textInput.Blur()
		m.applyFilter()
		// Leaving the filter may re-expose the end of the list.
		return m, m.maybePrefetch()
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// requestNext issues a page request and, when accepted, returns a
// command that blocks on the completion event off the render path.
func (m *FeedModel) requestNext() tea.Cmd {
	if !m.loader.RequestNextPage(m.ctx) {
		return nil
	}
	events := m.loader.Events()
	return func() tea.Msg {
		return pageLoadedMsg{event: <-events}
	}
}

// maybePrefetch applies the trigger protocol. Requests are suppressed
// while a filter narrows the list (positions no longer map to source
// order) and after a failure (retry is explicit).
func (m *FeedModel) maybePrefetch() tea.Cmd {
	if m.filterQuery() != "" || m.showFilter {
		return nil
	}
	if m.fetchErr != nil {
		return nil
	}
	if !m.list.NearEnd(m.threshold) {
		return nil
	}
	return m.requestNext()
}

// applyFilter rebuilds the list from loaded items matching the query.
func (m *FeedModel) applyFilter() {
	items := m.loader.Items()
	query := strings.ToLower(m.filterQuery())
	if query == "" {
		m.list.SetItems(items)
		return
	}

	var filtered []feed.Item
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), query) ||
			strings.Contains(strings.ToLower(item.ID), query) {
			filtered = append(filtered, item)
		}
	}
	m.list.SetItems(filtered)
}

func (m *FeedModel) filterQuery() string {
	return m.textInput.Value()
}

func (m *FeedModel) listHeight() int {
	h := m.height - chromeHeight
	if h < minListHeight {
		h = minListHeight
	}
	return h
}

// View renders the current view state.
func (m *FeedModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""

	case ViewStateDetail:
		if item := m.list.SelectedItem(); item != nil {
			return RenderItemDetail(*item, m.width)
		}
		m.state = ViewStateList
		fallthrough

	case ViewStateList:
		return m.renderListView()

	default:
		return ""
	}
}

func (m *FeedModel) renderListView() string {
	var sb strings.Builder
	sb.WriteString(RenderFeedHeader(m.loader))
	sb.WriteString("\n")
	sb.WriteString(m.list.View())
	sb.WriteString("\n")
	sb.WriteString(m.renderStatusLine())
	sb.WriteString("\n")

	if m.showFilter {
		sb.WriteString("Filter: " + m.textInput.View() + "\n")
	}

	sb.WriteString(SubtleStyle.Render(listHelpText))
	return sb.String()
}

// renderStatusLine shows exactly one of: busy spinner, fetch error
// with retry hint, end-of-feed notice, or a quiet blank.
func (m *FeedModel) renderStatusLine() string {
	switch {
	case m.loader.Busy():
		return m.loading.View()
	case m.fetchErr != nil:
		return RenderFetchError(m.fetchErr)
	case m.loader.Exhausted():
		return SubtleStyle.Render("All items loaded.")
	default:
		return ""
	}
}

const listHelpText = "[↑↓/jk] Navigate  [/] Filter  [Enter] Details  [q] Quit"
