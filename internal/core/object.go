package core

// BaseDir is the base text direction of a widget.
type BaseDir int

const (
	BaseDirLTR BaseDir = iota
	BaseDirRTL
)

// Object carries the base behavior every widget delegates to explicitly:
// geometry, vertical content scroll, text direction, and invalidation
// against the owning screen. Widgets embed a pointer to it instead of
// inheriting from an ancestor class.
type Object struct {
	screen  Screen
	coords  Area
	scrollY Coord
	baseDir BaseDir
}

// NewObject creates base behavior bound to the given screen.
func NewObject(screen Screen) *Object {
	return &Object{screen: screen}
}

func (o *Object) Screen() Screen { return o.screen }

func (o *Object) Coords() Area { return o.coords }

// SetCoords moves the object and invalidates both the old and new regions.
func (o *Object) SetCoords(a Area) {
	if a == o.coords {
		return
	}
	o.Invalidate()
	o.coords = a
	o.Invalidate()
}

func (o *Object) Width() Coord { return o.coords.Width() }

func (o *Object) Height() Coord { return o.coords.Height() }

// SetWidth resizes the object keeping its top-left corner fixed.
func (o *Object) SetWidth(w Coord) {
	a := o.coords
	a.X2 = a.X1 + w - 1
	o.SetCoords(a)
}

// SetHeight resizes the object keeping its top-left corner fixed.
func (o *Object) SetHeight(h Coord) {
	a := o.coords
	a.Y2 = a.Y1 + h - 1
	o.SetCoords(a)
}

// SetY moves the object vertically without resizing it.
func (o *Object) SetY(y Coord) {
	a := o.coords
	h := a.Height()
	a.Y1 = y
	a.Y2 = y + h - 1
	o.SetCoords(a)
}

// AlignTo places the object flush against the given anchor edge, keeping
// the object's current size.
func (o *Object) AlignTo(anchor Area, align Align) {
	w := o.coords.Width()
	h := o.coords.Height()
	var a Area
	switch align {
	case AlignOutBottomLeft:
		a.X1 = anchor.X1
		a.Y1 = anchor.Y2 + 1
	case AlignOutTopLeft:
		a.X1 = anchor.X1
		a.Y1 = anchor.Y1 - h
	case AlignOutLeftTop:
		a.X1 = anchor.X1 - w
		a.Y1 = anchor.Y1
	case AlignOutRightTop:
		a.X1 = anchor.X2 + 1
		a.Y1 = anchor.Y1
	}
	a.X2 = a.X1 + w - 1
	a.Y2 = a.Y1 + h - 1
	o.SetCoords(a)
}

// ScrollY is the current vertical content scroll offset.
func (o *Object) ScrollY() Coord { return o.scrollY }

// ScrollToY sets the vertical content scroll offset and invalidates.
func (o *Object) ScrollToY(y Coord) {
	if y == o.scrollY {
		return
	}
	o.scrollY = y
	o.Invalidate()
}

func (o *Object) SetBaseDir(dir BaseDir) { o.baseDir = dir }

func (o *Object) BaseDir() BaseDir { return o.baseDir }

// Invalidate marks the object's current region dirty for the next
// compositor pass.
func (o *Object) Invalidate() {
	if o.screen == nil {
		return
	}
	o.screen.Invalidate(o.coords)
}
