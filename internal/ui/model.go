package ui

import (
	"fmt"
	"reflect"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glazier-ui/glazier/internal/core"
	"github.com/glazier-ui/glazier/internal/dropdown"
	"github.com/glazier-ui/glazier/internal/theme"
)

var styles = theme.Default(CellFont{})

type msgHandler func(tea.Msg) tea.Cmd

// Model hosts a dropdown on a cell-grid screen and adapts Bubble Tea
// messages into widget signals.
type Model struct {
	screen   *hostScreen
	pointer  *pointerDevice
	keypad   keypadDevice
	group    *focusGroup
	dropdown *dropdown.Dropdown

	keys        keyMap
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	status      string
	quitting    bool

	handlers map[reflect.Type]msgHandler
}

// NewModel mounts a dropdown at the top-left of the viewport. options is a
// newline separated list; empty keeps the widget defaults.
func NewModel(width, height int, showFooter bool, options string, dir core.Direction) *Model {
	m := &Model{
		screen:     &hostScreen{},
		pointer:    &pointerDevice{},
		group:      &focusGroup{},
		keys:       defaultKeyMap(),
		showFooter: showFooter,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.screen.height = contentHeight(m.height)

	d := dropdown.New(m.screen, styles, m.group)
	d.Object().SetCoords(core.Area{X1: 2, Y1: 1, X2: 25, Y2: 1})
	d.HandleSignal(core.SignalStyleChanged, nil)
	if options != "" {
		d.SetOptions(options)
	}
	d.SetDir(dir)
	d.SetOnValueChanged(func(index uint32) core.Result {
		m.status = fmt.Sprintf("selected %s (#%d)", d.SelectedText(), index)
		return core.ResultOK
	})
	m.dropdown = d

	m.registerHandlers()
	return m
}

// Dropdown exposes the hosted widget.
func (m *Model) Dropdown() *dropdown.Dropdown { return m.dropdown }

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.dropdown.HandleSignal(core.SignalFocus, nil)
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		cmd := handler(msg)
		m.screen.drainDirty()
		return m, cmd
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if m.handlers == nil {
		return nil
	}
	return m.handlers[reflect.TypeOf(msg)]
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.screen.height = contentHeight(m.height)
	m.dropdown.SetMaxHeight((3 * m.screen.height) / 4)
	// The anchor geometry feeds placement, so a resize closes the popup.
	m.dropdown.HandleSignal(core.SignalCoordChanged, nil)
	return nil
}

// contentHeight is the widget viewport: the frame keeps two rows at the
// bottom for status and footer.
func contentHeight(total int) core.Coord {
	h := total - 2
	if h < 1 {
		h = 1
	}
	return core.Coord(h)
}

// dispatch routes a signal to the widget with the given device active for
// the duration.
func (m *Model) dispatch(dev core.Device, w core.Widget, sig core.Signal, payload any) core.Result {
	m.screen.device = dev
	defer func() { m.screen.device = nil }()
	return w.HandleSignal(sig, payload)
}
