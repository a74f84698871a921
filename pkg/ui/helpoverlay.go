package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpOverlayModel is the keyboard help shown over the converter screen.
// While visible it swallows every key; the first one closes it.
type HelpOverlayModel struct {
	visible bool
	theme   Theme
}

// NewHelpOverlayModel creates a hidden help overlay
func NewHelpOverlayModel(theme Theme) HelpOverlayModel {
	return HelpOverlayModel{theme: theme}
}

// Toggle opens or closes the overlay
func (m *HelpOverlayModel) Toggle() {
	m.visible = !m.visible
}

// IsVisible returns true if overlay is showing
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

type shortcut struct{ key, desc string }

var helpSections = []struct {
	title string
	keys  []shortcut
}{
	{"NAVIGATION", []shortcut{
		{"Tab", "Next control"},
		{"Shift+Tab", "Previous control"},
		{"Enter/↓", "Open unit list"},
		{"j/k", "Move in unit list"},
		{"Esc", "Close list"},
	}},
	{"ACTIONS", []shortcut{
		{"Ctrl+X", "Swap units"},
		{"Ctrl+Y", "Copy result"},
	}},
	{"VIEW", []shortcut{
		{"F1 / ?", "Toggle this help"},
		{"q/Esc", "Quit"},
		{"Ctrl+C", "Quit"},
	}},
}

// View renders the overlay centered in a width x height area
func (m HelpOverlayModel) View(width, height int) string {
	if !m.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := m.theme.Renderer.NewStyle().
		Bold(true).
		Foreground(m.theme.Primary).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("Unit Converter Help"))
	b.WriteString("\n\n")

	sectionStyle := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Secondary)
	keyStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary).Width(12)
	descStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)

	for i, section := range helpSections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(section.title) + "\n")
		for _, s := range section.keys {
			b.WriteString("  " + keyStyle.Render(s.key) + descStyle.Render(s.desc) + "\n")
		}
	}

	b.WriteString("\n")
	hintStyle := m.theme.Renderer.NewStyle().Faint(true).Italic(true)
	b.WriteString(hintStyle.Render("[Press any key to close]"))

	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, boxStyle.Render(b.String()))
}
