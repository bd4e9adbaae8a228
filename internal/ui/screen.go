package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/glazier-ui/glazier/internal/core"
)

// CellFont measures text in terminal cells: every line is one cell tall and
// wide glyphs count double.
type CellFont struct{}

func (CellFont) LineHeight() core.Coord { return 1 }

func (CellFont) TextWidth(s string) core.Coord {
	return core.Coord(runewidth.StringWidth(s))
}

type gridCell struct {
	r     rune
	style *lipgloss.Style
}

// Grid is a cell-matrix core.Renderer. Widgets draw into it with inclusive
// areas; render flattens it to styled terminal rows.
type Grid struct {
	width  int
	height int
	cells  [][]gridCell
}

func newGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]gridCell, height)
	for y := range cells {
		cells[y] = make([]gridCell, width)
		for x := range cells[y] {
			cells[y][x] = gridCell{r: ' '}
		}
	}
	return &Grid{width: width, height: height, cells: cells}
}

func (g *Grid) bounds() core.Area {
	return core.Area{X1: 0, Y1: 0, X2: g.width - 1, Y2: g.height - 1}
}

func (g *Grid) set(x, y core.Coord, r rune, style *lipgloss.Style) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.cells[y][x] = gridCell{r: r, style: style}
}

// DrawRect implements core.Renderer: fills the clipped area with the body
// style.
func (g *Grid) DrawRect(area, clip core.Area, style *core.Style) {
	m, ok := core.Intersect(area, clip)
	if !ok {
		return
	}
	m, ok = core.Intersect(m, g.bounds())
	if !ok {
		return
	}
	for y := m.Y1; y <= m.Y2; y++ {
		for x := m.X1; x <= m.X2; x++ {
			g.set(x, y, ' ', &style.Body)
		}
	}
}

// DrawLabel implements core.Renderer: writes the text line by line starting
// at the area's top-left corner, skipping cells outside the clip. Wide
// runes occupy two cells.
func (g *Grid) DrawLabel(area, clip core.Area, style *core.Style, text string) {
	m, ok := core.Intersect(clip, g.bounds())
	if !ok {
		return
	}
	y := area.Y1
	pitch := style.Font.LineHeight() + style.LineSpace
	for _, line := range strings.Split(text, "\n") {
		if y > m.Y2 {
			return
		}
		if y >= m.Y1 {
			x := area.X1
			for _, r := range line {
				w := runewidth.RuneWidth(r)
				if x >= m.X1 && x+w-1 <= m.X2 {
					g.set(x, y, r, &style.Text)
					if w == 2 {
						g.set(x+1, y, 0, &style.Text)
					}
				}
				x += w
			}
		}
		y += pitch
	}
}

// render flattens the grid into one string per row, batching runs of cells
// that share a style into single lipgloss renders.
func (g *Grid) render() []string {
	rows := make([]string, g.height)
	var run strings.Builder
	for y := 0; y < g.height; y++ {
		var out strings.Builder
		run.Reset()
		var runStyle *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle != nil {
				out.WriteString(runStyle.Render(run.String()))
			} else {
				out.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < g.width; x++ {
			c := g.cells[y][x]
			if c.r == 0 {
				// Continuation cell of a wide rune.
				continue
			}
			if c.style != runStyle {
				flush()
				runStyle = c.style
			}
			run.WriteRune(c.r)
		}
		flush()
		rows[y] = out.String()
	}
	return rows
}

// hostScreen is the core.Screen the demo mounts widgets on. It tracks the
// device that produced the message being dispatched and accumulates dirty
// regions.
type hostScreen struct {
	height core.Coord
	device core.Device
	dirty  []core.Area
}

func (s *hostScreen) ViewportHeight() core.Coord { return s.height }

func (s *hostScreen) ActiveDevice() core.Device { return s.device }

func (s *hostScreen) Invalidate(area core.Area) {
	s.dirty = append(s.dirty, area)
}

// drainDirty returns and clears the accumulated dirty regions.
func (s *hostScreen) drainDirty() []core.Area {
	d := s.dirty
	s.dirty = nil
	return d
}

// pointerDevice is the mouse. scroll is set for the duration of a wheel
// gesture so releases during it read as drags.
type pointerDevice struct {
	point  core.Point
	scroll *core.Object
}

func (d *pointerDevice) Kind() core.DeviceKind      { return core.DevicePointer }
func (d *pointerDevice) Point() core.Point          { return d.point }
func (d *pointerDevice) ScrollTarget() *core.Object { return d.scroll }

// keypadDevice is the keyboard.
type keypadDevice struct{}

func (keypadDevice) Kind() core.DeviceKind      { return core.DeviceKeypad }
func (keypadDevice) Point() core.Point          { return core.Point{} }
func (keypadDevice) ScrollTarget() *core.Object { return nil }

// focusGroup is a single-widget focus group.
type focusGroup struct {
	editing bool
}

func (g *focusGroup) Editing() bool { return g.editing }

func (g *focusGroup) SetEditing(editing bool) { g.editing = editing }
