package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing, colors, and visual language
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")

	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorDanger  = lipgloss.Color("#FF5555")
)

// Theme bundles the renderer with the adaptive colors every view uses.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor

	Base lipgloss.Style
}

// DefaultTheme returns the Dracula palette bound to r. A nil renderer uses
// lipgloss.DefaultRenderer.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Renderer:  r,
		Primary:   lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: string(ColorPrimary)},
		Secondary: lipgloss.AdaptiveColor{Light: "#4A5A8A", Dark: string(ColorMuted)},
		Subtext:   lipgloss.AdaptiveColor{Light: "#666666", Dark: string(ColorSubtext)},
		Border:    lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: string(ColorBgHighlight)},
		Highlight: lipgloss.AdaptiveColor{Light: "#0087AF", Dark: string(ColorInfo)},
		Success:   lipgloss.AdaptiveColor{Light: "#008700", Dark: string(ColorSuccess)},
		Danger:    lipgloss.AdaptiveColor{Light: "#D70000", Dark: string(ColorDanger)},
		Base: r.NewStyle().Foreground(lipgloss.AdaptiveColor{
			Light: "#1A1A1A",
			Dark:  string(ColorText),
		}),
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// PANEL STYLES
// ══════════════════════════════════════════════════════════════════════════════

// PanelStyle is the style for unfocused controls
func (t Theme) PanelStyle() lipgloss.Style {
	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, SpaceXS)
}

// FocusedPanelStyle is the style for the control that has focus
func (t Theme) FocusedPanelStyle() lipgloss.Style {
	return t.PanelStyle().BorderForeground(t.Primary)
}

// ══════════════════════════════════════════════════════════════════════════════
// DIVIDERS AND HINTS
// ══════════════════════════════════════════════════════════════════════════════

// RenderDivider renders a horizontal divider line
func (t Theme) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", width))
}

// RenderKeyHints renders "key: action" pairs separated by bullets.
func (t Theme) RenderKeyHints(pairs ...[2]string) string {
	keyStyle := t.Renderer.NewStyle().Foreground(t.Primary)
	descStyle := t.Renderer.NewStyle().Foreground(t.Subtext)
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, keyStyle.Render(p[0])+descStyle.Render(" "+p[1]))
	}
	return strings.Join(parts, descStyle.Render(" • "))
}
