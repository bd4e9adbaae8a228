package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/glazier-ui/glazier/internal/core"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const footerText = "↑/↓ move  enter select  esc close  q quit"

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model: the widget grid on top, status and footer at
// the bottom.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	g := newGrid(m.width, int(m.screen.height))
	clip := g.bounds()
	m.dropdown.Draw(g, clip, core.DrawModeMain)
	if popup := m.dropdown.Popup(); popup != nil {
		popup.Draw(g, clip, core.DrawModeMain)
		if labelClip, ok := core.Intersect(clip, popup.Coords()); ok {
			popup.Label().Draw(g, labelClip, core.DrawModeMain)
		}
		popup.Draw(g, clip, core.DrawModePost)
	}

	lines := make([]styledLine, 0, m.height)
	for _, row := range g.render() {
		lines = append(lines, styledLine{text: row, raw: true})
	}
	lines = append(lines, styledLine{text: m.status, style: &statusStyle})
	if m.showFooter {
		lines = append(lines, styledLine{text: footerText, style: &footerStyle})
	}
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if !line.raw && line.style != nil {
			out[i] = line.style.Render(line.text)
			continue
		}
		out[i] = line.text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
