package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"

	"github.com/migliorelli/uconv/pkg/units"
)

// UnitItem is one entry in the unit dropdown
type UnitItem struct {
	Unit   units.Unit
	Title  string // display label
	Detail string // symbol shown next to the label
	search string // everything the filter matches against
}

func newUnitItem(u units.Unit) UnitItem {
	terms := append([]string{u.Label(), u.Key(), u.Symbol()}, u.Aliases()...)
	return UnitItem{
		Unit:   u,
		Title:  u.Label(),
		Detail: u.Symbol(),
		search: strings.Join(terms, " "),
	}
}

// UnitSelectorModel is the dropdown overlay used to pick a unit
type UnitSelectorModel struct {
	title string

	// Data
	allItems      []UnitItem
	filteredItems []UnitItem
	current       units.Unit

	// UI State
	searchInput   textinput.Model
	selectedIndex int

	// Dimensions
	width  int
	height int
	theme  Theme

	// Selection result
	confirmed    bool
	cancelled    bool
	selectedItem *UnitItem
}

// NewUnitSelectorModel creates a selector titled title with the cursor on current
func NewUnitSelectorModel(title string, current units.Unit, theme Theme) UnitSelectorModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter units..."
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 30

	var items []UnitItem
	for _, u := range units.All() {
		items = append(items, newUnitItem(u))
	}

	m := UnitSelectorModel{
		title:         title,
		allItems:      items,
		filteredItems: items,
		current:       current,
		searchInput:   ti,
		theme:         theme,
		width:         60,
		height:        20,
	}
	m.selectedIndex = m.indexOf(current)
	return m
}

func (m *UnitSelectorModel) indexOf(u units.Unit) int {
	for i, item := range m.filteredItems {
		if item.Unit == u {
			return i
		}
	}
	return 0
}

// SetSize updates the selector dimensions
func (m *UnitSelectorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	inputWidth := width - 20
	if inputWidth < 20 {
		inputWidth = 20
	}
	if inputWidth > 40 {
		inputWidth = 40
	}
	m.searchInput.Width = inputWidth
}

// Update handles a key and reports whether it was consumed
func (m *UnitSelectorModel) Update(key string) (handled bool) {
	switch key {
	case keyUp, "k", "ctrl+p":
		m.moveUp()
		return true
	case keyDown, "j", "ctrl+n":
		m.moveDown()
		return true
	case keyEnter:
		if len(m.filteredItems) > 0 && m.selectedIndex < len(m.filteredItems) {
			item := m.filteredItems[m.selectedIndex]
			m.selectedItem = &item
			m.confirmed = true
		}
		return true
	case keyEscape:
		m.confirmed = false
		m.cancelled = true
		m.selectedItem = nil
		return true
	case keyBackspace:
		if v := m.searchInput.Value(); len(v) > 0 {
			m.searchInput.SetValue(v[:len(v)-1])
			m.filterItems()
		}
		return true
	default:
		if IsPrintableKey(key) {
			m.searchInput.SetValue(m.searchInput.Value() + key)
			m.filterItems()
			return true
		}
	}
	return false
}

func (m *UnitSelectorModel) moveUp() {
	if m.selectedIndex > 0 {
		m.selectedIndex--
	}
}

func (m *UnitSelectorModel) moveDown() {
	if m.selectedIndex < len(m.filteredItems)-1 {
		m.selectedIndex++
	}
}

func (m *UnitSelectorModel) filterItems() {
	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		m.filteredItems = m.allItems
		m.selectedIndex = m.indexOf(m.current)
		return
	}

	searchStrings := make([]string, len(m.allItems))
	for i, item := range m.allItems {
		searchStrings[i] = item.search
	}

	matches := fuzzy.Find(query, searchStrings)

	m.filteredItems = make([]UnitItem, 0, len(matches))
	for _, match := range matches {
		m.filteredItems = append(m.filteredItems, m.allItems[match.Index])
	}
	m.selectedIndex = 0
}

// IsConfirmed returns true if user confirmed a selection
func (m *UnitSelectorModel) IsConfirmed() bool {
	return m.confirmed
}

// IsCancelled returns true if user closed the selector without choosing
func (m *UnitSelectorModel) IsCancelled() bool {
	return m.cancelled
}

// SelectedItem returns the chosen item, or nil if none
func (m *UnitSelectorModel) SelectedItem() *UnitItem {
	return m.selectedItem
}

// SearchValue returns the current filter text
func (m *UnitSelectorModel) SearchValue() string {
	return m.searchInput.Value()
}

// ItemCount returns the number of items left after filtering
func (m *UnitSelectorModel) ItemCount() int {
	return len(m.filteredItems)
}

// Highlighted returns the unit under the cursor
func (m *UnitSelectorModel) Highlighted() (units.Unit, bool) {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.filteredItems) {
		return 0, false
	}
	return m.filteredItems[m.selectedIndex].Unit, true
}

// View renders the selector overlay centered in its area
func (m *UnitSelectorModel) View() string {
	t := m.theme

	boxWidth := 40
	if m.width > 0 && m.width < 50 {
		boxWidth = m.width - 10
	}
	if boxWidth < 28 {
		boxWidth = 28
	}
	contentWidth := boxWidth - 4

	var lines []string

	titleStyle := t.Renderer.NewStyle().
		Foreground(t.Primary).
		Bold(true)
	lines = append(lines, titleStyle.Render(m.title))
	lines = append(lines, "")

	inputStyle := t.Renderer.NewStyle().
		Foreground(t.Base.GetForeground()).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Secondary).
		Padding(0, 1).
		Width(contentWidth - 2)

	searchValue := m.searchInput.Value()
	if searchValue == "" {
		searchValue = t.Renderer.NewStyle().Foreground(t.Subtext).Render(m.searchInput.Placeholder)
	}
	lines = append(lines, inputStyle.Render(searchValue))
	lines = append(lines, "")

	if len(m.filteredItems) == 0 {
		emptyStyle := t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true)
		lines = append(lines, emptyStyle.Render("  No matching units"))
	} else {
		for i, item := range m.filteredItems {
			lines = append(lines, m.renderItem(item, i == m.selectedIndex, contentWidth))
		}
	}

	lines = append(lines, "")
	footerStyle := t.Renderer.NewStyle().
		Foreground(t.Subtext).
		Italic(true)
	lines = append(lines, footerStyle.Render("j/k: navigate • enter: select • esc: cancel"))

	boxStyle := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Width(boxWidth)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		boxStyle.Render(strings.Join(lines, "\n")),
	)
}

func (m *UnitSelectorModel) renderItem(item UnitItem, isSelected bool, maxWidth int) string {
	t := m.theme

	prefix := "  "
	if isSelected {
		prefix = "▸ "
	}

	nameStyle := t.Renderer.NewStyle()
	if isSelected {
		nameStyle = nameStyle.Foreground(t.Primary).Bold(true)
	} else {
		nameStyle = nameStyle.Foreground(t.Base.GetForeground())
	}

	detail := item.Detail
	if item.Unit == m.current {
		detail += " ✓"
	}

	name := runewidth.Truncate(prefix+item.Title, maxWidth-runewidth.StringWidth(detail)-1, "…")

	padding := maxWidth - runewidth.StringWidth(name) - runewidth.StringWidth(detail)
	if padding < 1 {
		padding = 1
	}

	detailStyle := t.Renderer.NewStyle().Foreground(t.Subtext)
	return nameStyle.Render(name) + strings.Repeat(" ", padding) + detailStyle.Render(detail)
}
