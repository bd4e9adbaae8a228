package dropdown

import (
	"github.com/glazier-ui/glazier/internal/core"
	"github.com/glazier-ui/glazier/internal/logging/events"
)

const (
	// DefaultOptions seeds a freshly constructed dropdown.
	DefaultOptions = "Option 1\nOption 2\nOption 3"
	// DefaultSymbol is the glyph on the closed button.
	DefaultSymbol = "▾"
	// DefaultWidth is the initial button width; hosts usually resize.
	DefaultWidth = 20
)

// prNone marks "no row pressed".
const prNone = -1

// ValueChangedHandler receives the committed option index. Returning
// core.ResultInvalid tells the widget its owner destroyed it during the
// callback; the dispatch in progress stops touching the widget.
type ValueChangedHandler func(index uint32) core.Result

// Dropdown is a combo box: a closed button showing the current selection
// that expands into a scrollable popup list of options.
type Dropdown struct {
	obj    *core.Object
	styles core.StyleSet
	group  core.Group

	opts      optionStore
	text      string
	symbol    string
	dir       core.Direction
	maxHeight core.Coord

	selOptID     int
	selOptIDOrig int
	prOptID      int

	list *List

	onValueChanged ValueChangedHandler
}

// New constructs a closed dropdown with the default options, symbol, and a
// popup height cap of three quarters of the viewport.
func New(screen core.Screen, styles core.StyleSet, group core.Group) *Dropdown {
	d := &Dropdown{
		obj:     core.NewObject(screen),
		styles:  styles,
		group:   group,
		symbol:  DefaultSymbol,
		dir:     core.DirBottom,
		prOptID: prNone,
	}
	if screen != nil {
		d.maxHeight = (3 * screen.ViewportHeight()) / 4
	}
	d.opts.setStatic(DefaultOptions)
	d.obj.SetWidth(DefaultWidth)
	d.refreshHeight()
	return d
}

// Object exposes the base behavior for placement by the host.
func (d *Dropdown) Object() *core.Object { return d.obj }

func (d *Dropdown) Coords() core.Area { return d.obj.Coords() }

// Popup returns the open popup list, or nil while closed.
func (d *Dropdown) Popup() *List { return d.list }

// IsOpen reports whether the popup list exists.
func (d *Dropdown) IsOpen() bool { return d.list != nil }

// SetText sets the override string shown on the closed button instead of
// the selected option. Empty restores the selected-option display.
func (d *Dropdown) SetText(text string) {
	if d.text == text {
		return
	}
	d.text = text
	d.obj.Invalidate()
}

func (d *Dropdown) Text() string { return d.text }

// ClearOptions removes every option. Static or dynamic.
func (d *Dropdown) ClearOptions() {
	if !d.opts.present {
		return
	}
	d.opts.clear()
	d.obj.Invalidate()
}

// SetOptions replaces all options with a private copy of the '\n'
// separated string and resets the selection to the first option.
func (d *Dropdown) SetOptions(options string) {
	d.opts.set(options)
	d.selOptID = 0
	d.selOptIDOrig = 0
	events.Widget.OptionsChanged(d.opts.count)
	d.obj.Invalidate()
}

// SetOptionsStatic is SetOptions without copying: the caller keeps
// ownership of the string and must not mutate it while adopted.
func (d *Dropdown) SetOptionsStatic(options string) {
	d.opts.setStatic(options)
	d.selOptID = 0
	d.selOptIDOrig = 0
	events.Widget.OptionsChanged(d.opts.count)
	d.obj.Invalidate()
}

// AddOption inserts one option (no '\n' inside) at pos, or at the end for
// PosLast. A static store converts to a dynamic one first.
func (d *Dropdown) AddOption(option string, pos int) {
	d.opts.insert(option, pos)
	events.Widget.OptionsChanged(d.opts.count)
	d.obj.Invalidate()
}

// SetSelected commits the selection, clamping to the last option.
func (d *Dropdown) SetSelected(idx int) {
	if d.selOptID == idx {
		return
	}
	if d.opts.count == 0 {
		d.selOptID = 0
		d.selOptIDOrig = 0
		return
	}
	if idx >= d.opts.count {
		idx = d.opts.count - 1
	}
	if idx < 0 {
		idx = 0
	}
	d.selOptID = idx
	d.selOptIDOrig = idx
	d.obj.Invalidate()
}

// Selected returns the highlighted option index. Outside an in-progress
// navigation this equals the committed index.
func (d *Dropdown) Selected() int { return d.selOptID }

func (d *Dropdown) OptionCount() int { return d.opts.count }

// Options returns the full '\n' separated options string.
func (d *Dropdown) Options() string { return d.opts.text() }

// SelectedText returns the committed option's label.
func (d *Dropdown) SelectedText() string {
	return d.opts.segment(d.selOptIDOrig)
}

// CopySelectedText copies the committed option's label into dst, truncating
// with a logged warning when dst is too small. Returns the bytes written.
func (d *Dropdown) CopySelectedText(dst []byte) int {
	return d.opts.copySegment(dst, d.selOptIDOrig)
}

// SetDir sets the preferred popup expansion direction.
func (d *Dropdown) SetDir(dir core.Direction) {
	if d.dir == dir {
		return
	}
	d.dir = dir
	d.obj.Invalidate()
}

func (d *Dropdown) Dir() core.Direction { return d.dir }

// SetMaxHeight caps the popup height.
func (d *Dropdown) SetMaxHeight(h core.Coord) {
	d.maxHeight = h
}

func (d *Dropdown) MaxHeight() core.Coord { return d.maxHeight }

// SetSymbol sets the glyph on the closed button. Empty removes it and
// centers the display text.
func (d *Dropdown) SetSymbol(symbol string) {
	d.symbol = symbol
	d.obj.Invalidate()
}

func (d *Dropdown) Symbol() string { return d.symbol }

// SetOnValueChanged installs the value-changed listener.
func (d *Dropdown) SetOnValueChanged(h ValueChangedHandler) {
	d.onValueChanged = h
}

// Open expands the popup list. No-op while already open.
func (d *Dropdown) Open() {
	if d.list != nil {
		return
	}
	l := newList(d)
	d.list = l

	st := d.styles.Style(core.PartList, core.StateDefault)
	w := l.label.NaturalWidth() + st.PadLeft + st.PadRight
	if (d.dir == core.DirBottom || d.dir == core.DirTop) && w < d.obj.Width() {
		w = d.obj.Width()
	}
	l.obj.SetWidth(w)

	pl := computePlacement(placementInput{
		Anchor:         d.obj.Coords(),
		Preferred:      d.dir,
		LabelHeight:    l.label.NaturalHeight(),
		PadTop:         st.PadTop,
		PadBottom:      st.PadBottom,
		MaxHeight:      d.maxHeight,
		ViewportHeight: d.obj.Screen().ViewportHeight(),
	})
	l.obj.SetHeight(pl.Height)
	l.obj.AlignTo(d.obj.Coords(), alignForDir(pl.Dir))

	// Side placements can hang below the viewport; shift them back up.
	if d.dir == core.DirLeft || d.dir == core.DirRight {
		vres := d.obj.Screen().ViewportHeight()
		if c := l.obj.Coords(); c.Y2 > vres-1 {
			l.obj.SetY(c.Y1 - (c.Y2 - (vres - 1)))
		}
	}

	l.refreshLayout()
	d.positionToSelected()
	events.Widget.Open(pl.Dir.String(), pl.Height)
}

// Close collapses the popup list. No-op while already closed.
func (d *Dropdown) Close() {
	if d.list == nil {
		return
	}
	d.prOptID = prNone
	l := d.list
	d.list = nil
	l.destroy()
	events.Widget.Close()
}

// positionToSelected scrolls the open popup so the highlighted row is
// visible.
func (d *Dropdown) positionToSelected() {
	if d.list == nil {
		return
	}
	st := d.styles.Style(core.PartList, core.StateDefault)
	inner := d.list.obj.Height() - st.PadTop - st.PadBottom
	labelH := d.list.label.NaturalHeight()
	if labelH <= inner {
		return
	}
	y := scrollOffsetForSelected(d.selOptID, st.Font.LineHeight(), st.LineSpace, labelH, inner)
	d.list.obj.ScrollToY(y)
	d.list.refreshLayout()
	d.list.obj.Invalidate()
}

// idOnPoint maps a screen Y coordinate inside the open popup to a row
// index: (y - labelTop + lineSpace/2) / (lineHeight + lineSpace), clamped
// to the valid range.
func (d *Dropdown) idOnPoint(y core.Coord) int {
	if d.list == nil {
		return 0
	}
	st := d.styles.Style(core.PartList, core.StateDefault)
	y -= d.list.label.Coords().Y1
	y += st.LineSpace / 2
	pitch := st.Font.LineHeight() + st.LineSpace
	if pitch <= 0 {
		return 0
	}
	opt := y / pitch
	if opt < 0 {
		opt = 0
	}
	if d.opts.count > 0 && opt >= d.opts.count {
		opt = d.opts.count - 1
	}
	return opt
}

// refreshHeight recomputes the closed button height from the main part's
// font metrics and paddings.
func (d *Dropdown) refreshHeight() {
	st := d.styles.Style(core.PartMain, core.StateDefault)
	d.obj.SetHeight(st.PadTop + st.PadBottom + st.Font.LineHeight())
}

// sendValueChanged notifies the listener of a committed change. Returns the
// listener's result so callers can stop when the widget was destroyed.
func (d *Dropdown) sendValueChanged() core.Result {
	events.Widget.Commit(d.selOptID)
	if d.onValueChanged == nil {
		return core.ResultOK
	}
	return d.onValueChanged(uint32(d.selOptID))
}
