package widget

import (
	"strings"

	"github.com/glazier-ui/glazier/internal/core"
)

// Label renders a static block of text. Multi-line text keeps one
// LineSpace gap between consecutive lines.
type Label struct {
	obj   *core.Object
	style *core.Style
	text  string
	lines []string
}

// NewLabel creates a label sized to its natural dimensions at (0,0).
func NewLabel(screen core.Screen, style *core.Style, text string) *Label {
	l := &Label{
		obj:   core.NewObject(screen),
		style: style,
	}
	l.SetText(text)
	return l
}

func (l *Label) Object() *core.Object { return l.obj }

func (l *Label) Coords() core.Area { return l.obj.Coords() }

func (l *Label) Text() string { return l.text }

// SetText replaces the text and resizes the label to its natural size,
// keeping the top-left corner fixed.
func (l *Label) SetText(text string) {
	l.text = text
	l.lines = strings.Split(text, "\n")
	c := l.obj.Coords()
	l.obj.SetCoords(core.Area{
		X1: c.X1,
		Y1: c.Y1,
		X2: c.X1 + l.NaturalWidth() - 1,
		Y2: c.Y1 + l.NaturalHeight() - 1,
	})
}

// NaturalWidth is the width of the widest line.
func (l *Label) NaturalWidth() core.Coord {
	w := core.Coord(0)
	for _, line := range l.lines {
		if lw := l.style.Font.TextWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

// NaturalHeight is lines times the line height plus the inter-line spacing.
func (l *Label) NaturalHeight() core.Coord {
	n := len(l.lines)
	if n == 0 {
		return 0
	}
	return core.Coord(n)*l.style.Font.LineHeight() + core.Coord(n-1)*l.style.LineSpace
}

// LineCount returns the number of text lines.
func (l *Label) LineCount() int { return len(l.lines) }

// Draw implements core.Widget.
func (l *Label) Draw(r core.Renderer, clip core.Area, mode core.DrawMode) {
	if mode != core.DrawModeMain {
		return
	}
	r.DrawLabel(l.obj.Coords(), clip, l.style, l.text)
}

// HandleSignal implements core.Widget. Labels are inert.
func (l *Label) HandleSignal(sig core.Signal, payload any) core.Result {
	if sig == core.SignalGetType {
		if name, ok := payload.(*string); ok {
			*name = "label"
		}
	}
	return core.ResultOK
}
