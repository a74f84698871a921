// Package ui implements the interactive converter screen: a value field,
// source and target unit selectors and the live result line.
package ui

import (
	"io"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/migliorelli/uconv/pkg/converter"
	"github.com/migliorelli/uconv/pkg/units"
)

const defaultDividerWidth = 40

type focusArea int

const (
	focusInput focusArea = iota
	focusFrom
	focusTo
	focusCount
)

// Options configures a new Model.
type Options struct {
	From   units.Unit
	To     units.Unit
	Theme  Theme
	Logger *slog.Logger
}

// Model is the bubbletea model for the converter screen.
type Model struct {
	state *converter.State
	input textinput.Model
	focus focusArea

	selector       UnitSelectorModel
	selectorOpen   bool
	selectorTarget focusArea

	help HelpOverlayModel

	status      string
	statusError bool

	width  int
	height int
	theme  Theme
	logger *slog.Logger

	copyFn func(string) error
}

// NewModel creates the converter screen with the value field focused.
func NewModel(opts Options) Model {
	theme := opts.Theme
	if theme.Renderer == nil {
		theme = DefaultTheme(nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ti := textinput.New()
	ti.Placeholder = "Enter value"
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = 24
	ti.Focus()

	return Model{
		state:  converter.New(opts.From, opts.To),
		input:  ti,
		focus:  focusInput,
		help:   NewHelpOverlayModel(theme),
		theme:  theme,
		logger: logger,
		copyFn: clipboard.WriteAll,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State exposes the conversion state behind the screen.
func (m Model) State() *converter.State {
	return m.state
}

// Status returns the current status line message.
func (m Model) Status() string {
	return m.status
}

// SelectorOpen reports whether a unit dropdown is showing.
func (m Model) SelectorOpen() bool {
	return m.selectorOpen
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.selector.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == keyQuit {
		return m, tea.Quit
	}

	if m.help.IsVisible() {
		m.help.Toggle()
		return m, nil
	}

	if m.selectorOpen {
		m.handleSelectorKey(key)
		return m, nil
	}

	switch key {
	case keyNext:
		return m, m.cycleFocus(1)
	case keyPrev:
		return m, m.cycleFocus(-1)
	case keySwap:
		m.swapUnits()
		return m, nil
	case keyCopy:
		m.copyResult()
		return m, nil
	case keyHelp:
		m.help.Toggle()
		return m, nil
	case keyEscape:
		return m, tea.Quit
	}

	if m.focus == focusInput {
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if after := m.input.Value(); after != before {
			m.state.SetInput(after)
			m.status = ""
			m.logResult("input changed")
		}
		return m, cmd
	}

	switch key {
	case keyEnter, keySpace, keyDown, "j":
		m.openSelector()
	case "?":
		m.help.Toggle()
	case "x":
		m.swapUnits()
	case "y":
		m.copyResult()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) cycleFocus(step int) tea.Cmd {
	m.focus = (m.focus + focusArea(step) + focusCount) % focusCount
	if m.focus == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *Model) openSelector() {
	title, current := "Convert from", m.state.InputUnit()
	if m.focus == focusTo {
		title, current = "Convert to", m.state.OutputUnit()
	}
	m.selector = NewUnitSelectorModel(title, current, m.theme)
	m.selector.SetSize(m.width, m.height)
	m.selectorTarget = m.focus
	m.selectorOpen = true
}

func (m *Model) handleSelectorKey(key string) {
	m.selector.Update(key)
	switch {
	case m.selector.IsConfirmed():
		u := m.selector.SelectedItem().Unit
		if m.selectorTarget == focusFrom {
			m.state.SetInputUnit(u)
		} else {
			m.state.SetOutputUnit(u)
		}
		m.selectorOpen = false
		m.status = ""
		m.logResult("unit selected")
	case m.selector.IsCancelled():
		m.selectorOpen = false
	}
}

func (m *Model) swapUnits() {
	m.state.Swap()
	m.status = "Swapped units"
	m.statusError = false
	m.logResult("units swapped")
}

func (m *Model) copyResult() {
	value := converter.FormatValue(m.state.Output())
	if err := m.copyFn(value); err != nil {
		m.status = "Copy failed: " + err.Error()
		m.statusError = true
		m.logger.Warn("clipboard write failed", "error", err)
		return
	}
	m.status = "Copied " + value
	m.statusError = false
}

func (m *Model) logResult(reason string) {
	m.logger.Debug(reason,
		"input", m.state.Input(),
		"from", m.state.InputUnit().Key(),
		"to", m.state.OutputUnit().Key(),
		"output", m.state.Output(),
		"fallback", m.state.UsedFallback(),
	)
}

// View implements tea.Model
func (m Model) View() string {
	if m.help.IsVisible() {
		return m.help.View(m.width, m.height)
	}
	if m.selectorOpen {
		return m.selector.View()
	}

	t := m.theme
	var b strings.Builder

	titleStyle := t.Renderer.NewStyle().Bold(true).Foreground(t.Primary)
	b.WriteString(titleStyle.Render("Unit Converter"))
	b.WriteString("\n\n")

	inputStyle := t.PanelStyle()
	if m.focus == focusInput {
		inputStyle = t.FocusedPanelStyle()
	}
	labelStyle := t.Renderer.NewStyle().Foreground(t.Subtext)
	b.WriteString(labelStyle.Render("Enter value"))
	b.WriteString("\n")
	b.WriteString(inputStyle.Width(m.input.Width + 2).Render(m.input.View()))
	b.WriteString("\n\n")

	row := lipgloss.JoinHorizontal(lipgloss.Center,
		m.renderUnitButton(m.state.InputUnit(), m.focus == focusFrom),
		t.Renderer.NewStyle().Padding(0, SpaceSM).Render("to"),
		m.renderUnitButton(m.state.OutputUnit(), m.focus == focusTo),
	)
	b.WriteString(row)
	b.WriteString("\n\n")

	resultStyle := t.Renderer.NewStyle().Bold(true).Foreground(t.Highlight)
	b.WriteString(resultStyle.Render(m.state.ResultLabel()))
	b.WriteString("\n")

	if m.status != "" {
		statusColor := t.Success
		if m.statusError {
			statusColor = t.Danger
		}
		b.WriteString(t.Renderer.NewStyle().Foreground(statusColor).Render(m.status))
	}
	b.WriteString("\n\n")

	b.WriteString(t.RenderDivider(m.dividerWidth()))
	b.WriteString("\n")
	b.WriteString(t.RenderKeyHints(
		[2]string{"tab", "focus"},
		[2]string{"enter", "units"},
		[2]string{"ctrl+x", "swap"},
		[2]string{"ctrl+y", "copy"},
		[2]string{"f1", "help"},
		[2]string{"esc", "quit"},
	))

	content := b.String()
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// dividerWidth is the rule above the key hints, narrowed for small terminals.
func (m Model) dividerWidth() int {
	if m.width > 0 && m.width-4 < defaultDividerWidth {
		return m.width - 4
	}
	return defaultDividerWidth
}

func (m Model) renderUnitButton(u units.Unit, focused bool) string {
	style := m.theme.PanelStyle()
	if focused {
		style = m.theme.FocusedPanelStyle().Bold(true)
	}
	return style.Render(u.Label() + " ▾")
}
