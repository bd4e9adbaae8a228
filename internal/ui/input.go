package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/glazier-ui/glazier/internal/core"
	"github.com/glazier-ui/glazier/internal/logging/events"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Left:   key.NewBinding(key.WithKeys("left", "h")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Cancel: key.NewBinding(key.WithKeys("esc")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q")),
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return tea.Quit

	case key.Matches(keyMsg, m.keys.Down):
		m.control(core.KeyDown)
	case key.Matches(keyMsg, m.keys.Up):
		m.control(core.KeyUp)
	case key.Matches(keyMsg, m.keys.Right):
		m.control(core.KeyRight)
	case key.Matches(keyMsg, m.keys.Left):
		m.control(core.KeyLeft)

	case key.Matches(keyMsg, m.keys.Select):
		m.dispatch(m.keypad, m.dropdown, core.SignalReleased, nil)

	case key.Matches(keyMsg, m.keys.Cancel):
		if !m.dropdown.IsOpen() {
			m.quitting = true
			return tea.Quit
		}
		m.control(core.KeyEsc)

	default:
		if keyMsg.Type == tea.KeyRunes && !keyMsg.Alt {
			m.jumpToOption(string(keyMsg.Runes))
		}
	}
	return nil
}

func (m *Model) control(k core.Key) {
	m.dispatch(m.keypad, m.dropdown, core.SignalControl, k)
}

// jumpToOption moves the selection to the option fuzzy-matching the typed
// text best. Only acts while closed: open popups are keyboard navigated.
func (m *Model) jumpToOption(text string) {
	if m.dropdown.IsOpen() || m.dropdown.OptionCount() == 0 {
		return
	}
	options := strings.Split(m.dropdown.Options(), "\n")
	ranks := fuzzy.RankFindFold(text, options)
	if len(ranks) == 0 {
		return
	}
	sort.Sort(ranks)
	m.dropdown.SetSelected(ranks[0].OriginalIndex)
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	point := core.Point{X: core.Coord(ev.X), Y: core.Coord(ev.Y)}
	m.pointer.point = point
	popup := m.dropdown.Popup()

	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.scrollPopup(-1)
		return nil
	case tea.MouseButtonWheelDown:
		m.scrollPopup(1)
		return nil
	}
	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft {
			return nil
		}
		events.Input.Pointer(point.X, point.Y, "press")
		if popup != nil && popup.Coords().Contains(point) {
			m.dispatch(m.pointer, popup, core.SignalPressed, nil)
		}

	case tea.MouseActionRelease:
		events.Input.Pointer(point.X, point.Y, "release")
		switch {
		case popup != nil && popup.Coords().Contains(point):
			m.dispatch(m.pointer, popup, core.SignalReleased, nil)
		case popup != nil:
			// Releasing outside the popup abandons it.
			m.control(core.KeyEsc)
		case m.dropdown.Coords().Contains(point):
			m.dispatch(m.pointer, m.dropdown, core.SignalReleased, nil)
		}
		m.pointer.scroll = nil
	}
	return nil
}

// scrollPopup turns a wheel tick into a scroll gesture on the popup: the
// press highlight is dropped and the content shifts one row.
func (m *Model) scrollPopup(delta core.Coord) {
	popup := m.dropdown.Popup()
	if popup == nil {
		return
	}
	m.pointer.scroll = popup.Object()
	m.dispatch(m.pointer, popup, core.SignalScrollBegin, nil)
	popup.ScrollBy(delta)
	m.pointer.scroll = nil
}
