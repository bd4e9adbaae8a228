package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glazier-ui/glazier/internal/core"
	"github.com/glazier-ui/glazier/internal/ui"
)

// Config holds the runtime settings of the demo application.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Options    string
	Direction  string
}

// ParseDirection maps a direction flag value onto the widget enum. Empty
// means the default downward expansion.
func ParseDirection(s string) (core.Direction, error) {
	switch s {
	case "", "bottom":
		return core.DirBottom, nil
	case "top":
		return core.DirTop, nil
	case "left":
		return core.DirLeft, nil
	case "right":
		return core.DirRight, nil
	}
	return core.DirBottom, fmt.Errorf("unknown direction %q", s)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(cfg Config) error {
	dir, err := ParseDirection(cfg.Direction)
	if err != nil {
		return err
	}
	model := ui.NewModel(cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Options, dir)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
