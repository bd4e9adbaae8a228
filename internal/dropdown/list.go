package dropdown

import (
	"github.com/glazier-ui/glazier/internal/core"
	"github.com/glazier-ui/glazier/internal/widget"
)

// List is the popup child of an open dropdown. It exists only between Open
// and Close, holds the options label, and points back at its owner so input
// signals can reach the dropdown's state machine.
type List struct {
	obj   *core.Object
	owner *Dropdown
	label *widget.Label
}

func newList(d *Dropdown) *List {
	st := d.styles.Style(core.PartList, core.StateDefault)
	return &List{
		obj:   core.NewObject(d.obj.Screen()),
		owner: d,
		label: widget.NewLabel(d.obj.Screen(), st, d.opts.text()),
	}
}

func (l *List) Object() *core.Object { return l.obj }

func (l *List) Coords() core.Area { return l.obj.Coords() }

func (l *List) Label() *widget.Label { return l.label }

// refreshLayout places the label inside the list's padded area, offset by
// the current scroll position.
func (l *List) refreshLayout() {
	st := l.owner.styles.Style(core.PartList, core.StateDefault)
	c := l.obj.Coords()
	w := l.label.NaturalWidth()
	h := l.label.NaturalHeight()
	x := c.X1 + st.PadLeft
	y := c.Y1 + st.PadTop - l.obj.ScrollY()
	l.label.Object().SetCoords(core.Area{
		X1: x,
		Y1: y,
		X2: x + w - 1,
		Y2: y + h - 1,
	})
}

// ScrollBy shifts the popup content by delta, clamped to the scrollable
// range.
func (l *List) ScrollBy(delta core.Coord) {
	if l.owner == nil {
		return
	}
	st := l.owner.styles.Style(core.PartList, core.StateDefault)
	inner := l.obj.Height() - st.PadTop - st.PadBottom
	maxScroll := l.label.NaturalHeight() - inner
	if maxScroll < 0 {
		maxScroll = 0
	}
	y := l.obj.ScrollY() + delta
	if y > maxScroll {
		y = maxScroll
	}
	if y < 0 {
		y = 0
	}
	if y == l.obj.ScrollY() {
		return
	}
	l.obj.ScrollToY(y)
	l.refreshLayout()
}

// destroy detaches the list from its owner and invalidates its region. The
// owner clears its own pointer before calling this.
func (l *List) destroy() {
	l.obj.Invalidate()
	l.HandleSignal(core.SignalCleanup, nil)
}
