package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glazier-ui/glazier/internal/core"
)

// Styles is the style set a dropdown resolves per (part, state).
type Styles struct {
	Main            *core.Style
	List            *core.Style
	Selected        *core.Style
	SelectedPressed *core.Style
}

// Style implements core.StyleSet.
func (s *Styles) Style(part core.Part, state core.State) *core.Style {
	switch part {
	case core.PartMain:
		return s.Main
	case core.PartList:
		return s.List
	case core.PartSelected:
		if state == core.StatePressed {
			return s.SelectedPressed
		}
		return s.Selected
	}
	return s.Main
}

// Default builds the standard look on top of the host's font metrics.
func Default(font core.Font) *Styles {
	return &Styles{
		Main: &core.Style{
			PadLeft:  1,
			PadRight: 1,
			Font:     font,
			Text:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")),
			Body:     lipgloss.NewStyle().Background(lipgloss.Color("238")),
		},
		List: &core.Style{
			PadLeft:  1,
			PadRight: 1,
			Font:     font,
			Text:     lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")),
			Body:     lipgloss.NewStyle().Background(lipgloss.Color("236")),
		},
		Selected: &core.Style{
			Font: font,
			Text: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
			Body: lipgloss.NewStyle().Background(lipgloss.Color("33")),
		},
		SelectedPressed: &core.Style{
			Font: font,
			Text: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")),
			Body: lipgloss.NewStyle().Background(lipgloss.Color("24")),
		},
	}
}
